package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID                   int64      `json:"id"`
	SeasonID             *int64     `json:"season_id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Active               bool       `json:"active"`
	SeasonTicketEligible bool       `json:"season_ticket_eligible"`
	ImageURL             string     `json:"image_url"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type CreateEventInput struct {
	SeasonID             *int64
	Name                 string
	Description          string
	Active               bool
	SeasonTicketEligible bool
	ImageURL             string
}

// TicketType is a global catalog entry. Price and ConcessionPrice are the
// catalog defaults; a restriction may override both per showing.
type TicketType struct {
	ID              int64           `json:"id"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ConcessionPrice decimal.Decimal `json:"concessions"`
}

// EventWithShowings is an event with its non-deleted showings and their
// restrictions, as returned by the showings read endpoints.
type EventWithShowings struct {
	Event    Event           `json:"event"`
	Showings []EventInstance `json:"showings"`
}
