package dto

import (
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/shopspring/decimal"
)

// CartItemRequest mirrors the cart rows sent by the storefront. Field names
// follow the storefront payload and are intentionally inconsistent.
type CartItemRequest struct {
	ProductID    int64           `json:"product_id" binding:"required"`
	TicketTypeID int64           `json:"typeID"`
	Quantity     int             `json:"qty" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	PayWhatCan   bool            `json:"payWhatCan"`
	PayWhatPrice decimal.Decimal `json:"payWhatPrice"`
	Description  string          `json:"desc"`
	EventID      int64           `json:"eventId"`
	EventName    string          `json:"name"`
}

type CheckoutFormRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	SeatingAcc    string `json:"seatingAcc"`
	Comments      string `json:"comments"`
	OptIn         bool   `json:"optIn"`
}

type DiscountRequest struct {
	Code string `json:"code"`
}

type CheckoutRequest struct {
	CartItems []CartItemRequest   `json:"cartItems"`
	FormData  CheckoutFormRequest `json:"formData" binding:"required"`
	Donation  decimal.Decimal     `json:"donation"`
	Discount  *DiscountRequest    `json:"discount"`
}

type RestrictionRequest struct {
	TicketTypeID    int64           `json:"tickettypeid" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ConcessionPrice decimal.Decimal `json:"concessionprice"`
	TicketLimit     int             `json:"ticketlimit"`
}

type UpdateShowingRequest struct {
	EventDate    string               `json:"eventdate" binding:"required"`
	Detail       string               `json:"detail"`
	TotalSeats   int                  `json:"totalseats" binding:"required,gt=0"`
	SalesStatus  *bool                `json:"salesstatus"`
	Preview      bool                 `json:"ispreview"`
	PurchaseURI  string               `json:"purchaseuri"`
	Restrictions []RestrictionRequest `json:"instanceTicketTypes"`
}

type CreateEventRequest struct {
	SeasonID             *int64 `json:"seasonid"`
	Name                 string `json:"eventname" binding:"required"`
	Description          string `json:"eventdescription"`
	Active               *bool  `json:"active"`
	SeasonTicketEligible bool   `json:"seasonticketeligible"`
	ImageURL             string `json:"imageurl"`
}

type CreateTicketTypeRequest struct {
	Description     string          `json:"description" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	ConcessionPrice decimal.Decimal `json:"concessions"`
}

type CheckInRequest struct {
	TicketID int64 `json:"ticketID" binding:"required"`
	Redeemed *bool `json:"isCheckedIn" binding:"required"`
}

func (r CheckoutRequest) ToDomain() domain.CheckoutRequest {
	cart := make([]domain.CartItem, 0, len(r.CartItems))
	for _, item := range r.CartItems {
		cart = append(cart, domain.CartItem{
			ProductID:    item.ProductID,
			TicketTypeID: item.TicketTypeID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			PayWhatCan:   item.PayWhatCan,
			PayWhatPrice: item.PayWhatPrice,
			Description:  item.Description,
			EventID:      item.EventID,
			EventName:    item.EventName,
		})
	}

	req := domain.CheckoutRequest{
		CartItems: cart,
		Donation:  r.Donation,
		Form: domain.CheckoutForm{
			FirstName:     r.FormData.FirstName,
			LastName:      r.FormData.LastName,
			Email:         r.FormData.Email,
			Phone:         r.FormData.Phone,
			StreetAddress: r.FormData.StreetAddress,
			City:          r.FormData.City,
			State:         r.FormData.State,
			PostalCode:    r.FormData.PostalCode,
			Country:       r.FormData.Country,
			SeatingAcc:    r.FormData.SeatingAcc,
			Comments:      r.FormData.Comments,
			OptIn:         r.FormData.OptIn,
		},
	}
	if r.Discount != nil {
		req.Discount = domain.DiscountRequest{Code: r.Discount.Code}
	}

	return req
}

func (r UpdateShowingRequest) ToDomain() (domain.ShowingInput, error) {
	eventDate, err := time.Parse(time.RFC3339, r.EventDate)
	if err != nil {
		return domain.ShowingInput{}, err
	}

	restrictions := make(map[int64]domain.RestrictionInput, len(r.Restrictions))
	for _, res := range r.Restrictions {
		restrictions[res.TicketTypeID] = domain.RestrictionInput{
			Description:     res.Description,
			Price:           res.Price,
			ConcessionPrice: res.ConcessionPrice,
			TicketLimit:     res.TicketLimit,
		}
	}

	salesStatus := true
	if r.SalesStatus != nil {
		salesStatus = *r.SalesStatus
	}

	return domain.ShowingInput{
		EventDate:    eventDate,
		Detail:       r.Detail,
		TotalSeats:   r.TotalSeats,
		SalesStatus:  salesStatus,
		Preview:      r.Preview,
		PurchaseURI:  r.PurchaseURI,
		Restrictions: restrictions,
	}, nil
}

func (r CreateEventRequest) ToDomain() domain.CreateEventInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return domain.CreateEventInput{
		SeasonID:             r.SeasonID,
		Name:                 r.Name,
		Description:          r.Description,
		Active:               active,
		SeasonTicketEligible: r.SeasonTicketEligible,
		ImageURL:             r.ImageURL,
	}
}
