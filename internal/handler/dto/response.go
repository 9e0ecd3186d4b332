package dto

import (
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
)

type CheckoutResponse struct {
	ID string `json:"id"`
}

type EventResponse struct {
	ID                   int64  `json:"id"`
	SeasonID             *int64 `json:"seasonid,omitempty"`
	Name                 string `json:"eventname"`
	Description          string `json:"eventdescription"`
	Active               bool   `json:"active"`
	SeasonTicketEligible bool   `json:"seasonticketeligible"`
	ImageURL             string `json:"imageurl"`
	CreatedAt            string `json:"created_at"`
}

type ShowingResponse struct {
	ID                  int64  `json:"id"`
	EventID             int64  `json:"eventid"`
	EventDate           string `json:"eventdate"`
	Detail              string `json:"detail"`
	TotalSeats          int    `json:"totalseats"`
	AvailableSeats      int    `json:"availableseats"`
	DefaultTicketTypeID int64  `json:"defaulttickettype"`
	SalesStatus         bool   `json:"salesstatus"`
	Preview             bool   `json:"ispreview"`
	PurchaseURI         string `json:"purchaseuri"`
}

type EventWithShowingsResponse struct {
	Event    EventResponse     `json:"event"`
	Showings []ShowingResponse `json:"showings"`
}

type TicketTypeResponse struct {
	ID              int64  `json:"id"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	ConcessionPrice string `json:"concessions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCheckoutResponse(sessionID string) CheckoutResponse {
	return CheckoutResponse{ID: sessionID}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		SeasonID:             e.SeasonID,
		Name:                 e.Name,
		Description:          e.Description,
		Active:               e.Active,
		SeasonTicketEligible: e.SeasonTicketEligible,
		ImageURL:             e.ImageURL,
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

func ToShowingResponse(i *domain.EventInstance) ShowingResponse {
	return ShowingResponse{
		ID:                  i.ID,
		EventID:             i.EventID,
		EventDate:           i.EventDate.Format(time.RFC3339),
		Detail:              i.Detail,
		TotalSeats:          i.TotalSeats,
		AvailableSeats:      i.AvailableSeats,
		DefaultTicketTypeID: i.DefaultTicketTypeID,
		SalesStatus:         i.SalesStatus,
		Preview:             i.Preview,
		PurchaseURI:         i.PurchaseURI,
	}
}

func ToEventWithShowingsResponse(d *domain.EventWithShowings) EventWithShowingsResponse {
	showings := make([]ShowingResponse, 0, len(d.Showings))
	for i := range d.Showings {
		showings = append(showings, ToShowingResponse(&d.Showings[i]))
	}

	return EventWithShowingsResponse{
		Event:    ToEventResponse(&d.Event),
		Showings: showings,
	}
}

func ToTicketTypeResponse(t *domain.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:              t.ID,
		Description:     t.Description,
		Price:           t.Price.StringFixed(2),
		ConcessionPrice: t.ConcessionPrice.StringFixed(2),
	}
}
