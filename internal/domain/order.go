package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              int64           `json:"id"`
	Reference       string          `json:"reference"`
	ContactID       int64           `json:"contact_id"`
	Total           decimal.Decimal `json:"total"`
	DiscountID      *int64          `json:"discount_id,omitempty"`
	CheckoutSession string          `json:"checkout_session"`
	PaymentIntent   string          `json:"payment_intent"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CartItem is one client-supplied cart entry for a showing and ticket type.
type CartItem struct {
	ProductID    int64
	TicketTypeID int64
	Quantity     int
	Price        decimal.Decimal
	PayWhatCan   bool
	PayWhatPrice decimal.Decimal
	Description  string
	EventID      int64
	EventName    string
}

// LineItem is one priced row of the payment session, in minor currency
// units.
type LineItem struct {
	Currency    string
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
}

// OrderItemDraft is one sold unit: its price and the slot ids it claims.
// SlotIDs holds the ticket-type slot plus, when the type differs from the
// showing's default, the companion default-type slot.
type OrderItemDraft struct {
	Price   decimal.Decimal
	SlotIDs []int64
}

// OrderDraft is the order builder's output: payment line items, per-unit
// slot allocations, the order subtotal, and the showings whose availability
// counts must be refreshed at commit.
type OrderDraft struct {
	Items            []OrderItemDraft
	LineItems        []LineItem
	Total            decimal.Decimal
	TouchedInstances []int64
}

// OrderIntake is everything the persistence layer needs to fulfill an order
// in a single transaction. When Comp is set the order is complimentary and
// its session markers are synthesized as "comp-<orderID>".
type OrderIntake struct {
	Reference        string
	ContactID        int64
	Total            decimal.Decimal
	DiscountID       *int64
	CheckoutSession  string
	Comp             bool
	Items            []OrderItemDraft
	TouchedInstances []int64
}

// CheckoutForm is the customer-supplied contact block of a checkout request.
type CheckoutForm struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	StreetAddress string
	City          string
	State         string
	PostalCode    string
	Country       string
	SeatingAcc    string
	Comments      string
	OptIn         bool
}

// CheckoutRequest is the full checkout payload after boundary validation.
type CheckoutRequest struct {
	CartItems []CartItem
	Form      CheckoutForm
	Donation  decimal.Decimal
	Discount  DiscountRequest
}

// DiscountRequest is the client's view of an applied discount; Code empty
// means no discount.
type DiscountRequest struct {
	Code string
}

// PaymentSessionParams is the request to the external payment collaborator.
type PaymentSessionParams struct {
	ContactID  int64
	Email      string
	LineItems  []LineItem
	OrderTotal decimal.Decimal
	Donation   decimal.Decimal
	Discount   *Discount
}
