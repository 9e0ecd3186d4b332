package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventInstance is one scheduled performance (a showing) of an event.
//
// AvailableSeats is derived: the count of unsold slots under the showing's
// default-type restriction. TotalSeats - soldDefaultSlots == AvailableSeats
// must hold after every inventory mutation.
type EventInstance struct {
	ID                  int64      `json:"id"`
	EventID             int64      `json:"event_id"`
	EventDate           time.Time  `json:"event_date"`
	Detail              string     `json:"detail"`
	TotalSeats          int        `json:"total_seats"`
	AvailableSeats      int        `json:"available_seats"`
	DefaultTicketTypeID int64      `json:"default_ticket_type_id"`
	SalesStatus         bool       `json:"sales_status"`
	Preview             bool       `json:"preview"`
	PurchaseURI         string     `json:"purchase_uri"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TicketRestriction pairs a ticket type with a showing and carries the price
// and capacity for that combination. The restriction for the showing's
// default ticket type must keep TicketLimit equal to the showing's
// TotalSeats.
type TicketRestriction struct {
	ID                   int64           `json:"id"`
	EventInstanceID      int64           `json:"event_instance_id"`
	TicketTypeID         int64           `json:"ticket_type_id"`
	Price                decimal.Decimal `json:"price"`
	ConcessionPrice      decimal.Decimal `json:"concession_price"`
	TicketLimit          int             `json:"ticket_limit"`
	SeasonPriceDefaultID *int64          `json:"season_price_default_id,omitempty"`
}

// EventTicket is one unit of sellable capacity within a restriction. A slot
// is sold once SingleTicketID is set; unsold slots carry no link.
type EventTicket struct {
	ID                  int64  `json:"id"`
	EventInstanceID     int64  `json:"event_instance_id"`
	TicketRestrictionID int64  `json:"ticket_restriction_id"`
	SingleTicketID      *int64 `json:"single_ticket_id,omitempty"`
	Redeemed            bool   `json:"redeemed"`
}

func (t EventTicket) Sold() bool {
	return t.SingleTicketID != nil
}

// LoadedRestriction is a restriction snapshot with its unsold slot ids
// (ascending) and the count of sold slots.
type LoadedRestriction struct {
	TicketRestriction
	UnsoldSlots []int64
	SoldCount   int
}

func (r *LoadedRestriction) SlotCount() int {
	return len(r.UnsoldSlots) + r.SoldCount
}

// LoadedInstance is a showing snapshot with all of its restrictions, used by
// the reconciler and the order builder. SeasonPriceDefaults maps ticket type
// id to the season-level price default id, when the event belongs to a
// season.
type LoadedInstance struct {
	EventInstance
	EventName           string
	Restrictions        []*LoadedRestriction
	SeasonPriceDefaults map[int64]int64
}

func (li *LoadedInstance) Restriction(ticketTypeID int64) *LoadedRestriction {
	for _, r := range li.Restrictions {
		if r.TicketTypeID == ticketTypeID {
			return r
		}
	}
	return nil
}

// RestrictionInput is the desired configuration of one ticket type on a
// showing, as submitted by an administrator.
type RestrictionInput struct {
	Description     string
	Price           decimal.Decimal
	ConcessionPrice decimal.Decimal
	TicketLimit     int
}

// ShowingInput carries a showing update request: the showing's own fields
// plus the full desired ticket type configuration keyed by ticket type id.
type ShowingInput struct {
	EventDate    time.Time
	Detail       string
	TotalSeats   int
	SalesStatus  bool
	Preview      bool
	PurchaseURI  string
	Restrictions map[int64]RestrictionInput
}

// RestrictionPlan is the batch of persistence operations that transforms a
// showing's current restriction state into the desired one. It is applied
// as a single transaction; partial application must never be observable.
type RestrictionPlan struct {
	Deletes []int64
	Updates []RestrictionUpdate
	Creates []RestrictionCreate
}

func (p *RestrictionPlan) Empty() bool {
	return len(p.Deletes) == 0 && len(p.Updates) == 0 && len(p.Creates) == 0
}

type RestrictionUpdate struct {
	RestrictionID        int64
	TicketLimit          int
	Price                decimal.Decimal
	ConcessionPrice      decimal.Decimal
	SeasonPriceDefaultID *int64
	AddSlots             int
	RemoveSlotIDs        []int64
}

type RestrictionCreate struct {
	TicketTypeID         int64
	TicketLimit          int
	Price                decimal.Decimal
	ConcessionPrice      decimal.Decimal
	SeasonPriceDefaultID *int64
	Slots                int
}

// ShowingUpdate is the computed write-set for a showing update: the new
// showing fields plus the restriction plan, applied together in one
// transaction.
type ShowingUpdate struct {
	EventDate      time.Time
	Detail         string
	TotalSeats     int
	AvailableSeats int
	SalesStatus    bool
	Preview        bool
	PurchaseURI    string
	Plan           *RestrictionPlan
}

// RestrictionSummary is the read shape for restriction listings.
type RestrictionSummary struct {
	ID              int64           `json:"id"`
	EventInstanceID int64           `json:"eventinstanceid"`
	TicketTypeID    int64           `json:"tickettypeid"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ConcessionPrice decimal.Decimal `json:"concessionprice"`
	TicketLimit     int             `json:"ticketlimit"`
	TicketsSold     int             `json:"ticketssold"`
}

// RestrictionFilter narrows restriction listings; nil fields match all.
type RestrictionFilter struct {
	EventInstanceID *int64
	TicketTypeID    *int64
}

// CoercePrice clamps a currency amount to non-negative and rounds it to two
// decimal places.
func CoercePrice(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}
