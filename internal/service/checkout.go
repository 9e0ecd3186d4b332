package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// CompSessionID is returned in place of a payment session id when the net
// amount due is zero or negative.
const CompSessionID = "comp"

var (
	emailPattern = regexp.MustCompile(`.+@.+\..+`)
	phonePattern = regexp.MustCompile(`^(\+?\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
)

var minorUnits = decimal.NewFromInt(100)

type CheckoutService struct {
	instances ports.InstanceRepo
	orders    ports.OrderRepo
	contacts  ports.ContactRepo
	discounts ports.DiscountRepo
	payment   ports.PaymentProvider
	notifier  ports.OrderNotifier
	logger    logger.Logger
}

func NewCheckoutService(
	instances ports.InstanceRepo,
	orders ports.OrderRepo,
	contacts ports.ContactRepo,
	discounts ports.DiscountRepo,
	payment ports.PaymentProvider,
	notifier ports.OrderNotifier,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		instances: instances,
		orders:    orders,
		contacts:  contacts,
		discounts: discounts,
		payment:   payment,
		notifier:  notifier,
		logger:    logger,
	}
}

// Checkout runs the full purchase sequence: discount validation, contact
// upsert, order build, payment session creation, and a single-transaction
// fulfillment that claims the allocated slots. It returns the payment
// session id, or CompSessionID for complimentary orders.
//
// Slots are only ever claimed inside the fulfillment transaction, so a
// failure at any earlier step leaves no inventory side effects; a failure
// after session creation expires the session best-effort.
func (s *CheckoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	if len(req.CartItems) == 0 && req.Donation.IsZero() {
		return "", domain.NewBadRequest("cart is empty")
	}
	if req.Donation.IsNegative() {
		return "", domain.NewInvalidInput("amount of donation can not be negative")
	}

	var discount *domain.Discount
	if req.Discount.Code != "" {
		var err error
		if discount, err = s.validateDiscount(ctx, req.Discount.Code, req.CartItems); err != nil {
			return "", err
		}
	}

	contact, err := validateContact(req.Form)
	if err != nil {
		return "", err
	}
	contactID, err := s.contacts.Upsert(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("upsert contact: %w", err)
	}
	contact.ID = contactID

	draft, err := s.buildOrder(ctx, req.CartItems)
	if err != nil {
		return "", err
	}

	amountOff := decimal.Zero
	var discountID *int64
	if discount != nil {
		amountOff = discount.AmountOff(draft.Total)
		discountID = &discount.ID
	}

	net := req.Donation.Add(draft.Total).Sub(amountOff)
	sessionID := ""
	if net.IsPositive() {
		lineItems := draft.LineItems
		if req.Donation.IsPositive() {
			lineItems = append(lineItems, donationLineItem(req.Donation))
		}
		sessionID, err = s.payment.CreateCheckoutSession(ctx, domain.PaymentSessionParams{
			ContactID:  contactID,
			Email:      contact.Email,
			LineItems:  lineItems,
			OrderTotal: draft.Total,
			Donation:   req.Donation,
			Discount:   discount,
		})
		if err != nil {
			return "", fmt.Errorf("create payment session: %w", err)
		}
	}

	order, err := s.orders.Fulfill(ctx, &domain.OrderIntake{
		Reference:        uuid.New().String(),
		ContactID:        contactID,
		Total:            draft.Total,
		DiscountID:       discountID,
		CheckoutSession:  sessionID,
		Comp:             sessionID == "",
		Items:            draft.Items,
		TouchedInstances: draft.TouchedInstances,
	})
	if err != nil {
		if sessionID != "" {
			if expireErr := s.payment.ExpireSession(ctx, sessionID); expireErr != nil {
				s.logger.Error("failed to expire payment session after rollback",
					logger.String("session_id", sessionID),
					logger.String("error", expireErr.Error()),
				)
			}
		}
		return "", err
	}

	s.logger.Info("order fulfilled",
		logger.Int64("order_id", order.ID),
		logger.Int64("contact_id", contactID),
		logger.String("order_total", draft.Total.StringFixed(2)),
		logger.Bool("comp", sessionID == ""),
	)

	go s.notifier.NotifyOrderCreated(context.WithoutCancel(ctx), order, contact)

	if sessionID == "" {
		return CompSessionID, nil
	}
	return sessionID, nil
}

// CancelOrder is the compensating rollback: it releases every slot the
// order claimed, marks the order cancelled, and expires the payment
// session when one exists.
func (s *CheckoutService) CancelOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orders.Cancel(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("cancel order %d: %w", orderID, err)
	}

	if order.CheckoutSession != "" && !strings.HasPrefix(order.CheckoutSession, "comp-") {
		if err := s.payment.ExpireSession(ctx, order.CheckoutSession); err != nil {
			s.logger.Error("failed to expire payment session for cancelled order",
				logger.Int64("order_id", orderID),
				logger.String("error", err.Error()),
			)
		}
	}

	go s.notifier.NotifyOrderCancelled(context.WithoutCancel(ctx), order)

	return order, nil
}

// CancelStale cancels pending orders whose payment session has passed its
// expiry window, releasing their slots back to inventory.
func (s *CheckoutService) CancelStale(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	stale, err := s.orders.ListStale(ctx, olderThan)
	if err != nil {
		return nil, fmt.Errorf("list stale orders: %w", err)
	}

	cancelled := make([]*domain.Order, 0, len(stale))
	for _, order := range stale {
		if _, err := s.CancelOrder(ctx, order.ID); err != nil {
			s.logger.Error("failed to cancel stale order",
				logger.Int64("order_id", order.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		cancelled = append(cancelled, order)
	}

	return cancelled, nil
}

func (s *CheckoutService) buildOrder(ctx context.Context, cart []domain.CartItem) (*domain.OrderDraft, error) {
	ids := make([]int64, 0, len(cart))
	seen := make(map[int64]bool, len(cart))
	for _, item := range cart {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	instances, err := s.instances.GetLoadedMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load showings: %w", err)
	}

	return BuildOrderDraft(cart, instances)
}

// BuildOrderDraft converts cart items into priced line items and per-unit
// slot allocations against a consistent inventory snapshot. Every unit
// consumes one slot of its ticket type and, when that type is not the
// showing's default, one companion default-type slot; both are claimed at
// fulfillment. Allocation works on a plan of slot ids, so the snapshot
// itself is never mutated.
func BuildOrderDraft(cart []domain.CartItem, instances map[int64]*domain.LoadedInstance) (*domain.OrderDraft, error) {
	draft := &domain.OrderDraft{Total: decimal.Zero}
	// Allocation cursor per restriction; the snapshot slices stay intact.
	taken := make(map[int64]int)

	for _, item := range cart {
		inst, ok := instances[item.ProductID]
		if !ok {
			return nil, domain.NewInvalidInput("showing %d for %s does not exist", item.ProductID, item.EventName)
		}
		if item.Quantity <= 0 {
			return nil, domain.NewInvalidInput("ticket quantity %d for showing %d of %s is invalid", item.Quantity, item.ProductID, item.EventName)
		}
		if (item.PayWhatCan && item.PayWhatPrice.IsNegative()) || item.Price.IsNegative() {
			price := item.Price
			if item.PayWhatCan {
				price = item.PayWhatPrice
			}
			return nil, domain.NewInvalidInput("ticket price %s for showing %d of %s is invalid", price.StringFixed(2), item.ProductID, item.EventName)
		}

		unitPrice := item.Price
		if item.PayWhatCan {
			unitPrice = item.PayWhatPrice.Div(decimal.NewFromInt(int64(item.Quantity)))
		}

		typeSlots, err := allocateSlots(inst.Restriction(item.TicketTypeID), item.Quantity, taken)
		if err != nil {
			return nil, err
		}
		var defaultSlots []int64
		if item.TicketTypeID != inst.DefaultTicketTypeID {
			if defaultSlots, err = allocateSlots(inst.Restriction(inst.DefaultTicketTypeID), item.Quantity, taken); err != nil {
				return nil, err
			}
		}

		for i, slotID := range typeSlots {
			unit := domain.OrderItemDraft{Price: unitPrice, SlotIDs: []int64{slotID}}
			if defaultSlots != nil {
				unit.SlotIDs = append(unit.SlotIDs, defaultSlots[i])
			}
			draft.Items = append(draft.Items, unit)
		}

		draft.LineItems = append(draft.LineItems, cartLineItem(item, inst.EventName))
		if item.PayWhatCan {
			draft.Total = draft.Total.Add(item.PayWhatPrice)
		} else {
			draft.Total = draft.Total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	for id := range instances {
		draft.TouchedInstances = append(draft.TouchedInstances, id)
	}

	return draft, nil
}

func allocateSlots(r *domain.LoadedRestriction, quantity int, taken map[int64]int) ([]int64, error) {
	if r == nil {
		return nil, domain.NewInvalidInput("requested tickets no longer available")
	}
	offset := taken[r.ID]
	if len(r.UnsoldSlots)-offset < quantity {
		return nil, domain.NewInvalidInput("requested tickets no longer available")
	}
	taken[r.ID] = offset + quantity
	return r.UnsoldSlots[offset : offset+quantity], nil
}

func cartLineItem(item domain.CartItem, eventName string) domain.LineItem {
	desc := item.Description
	unitAmount := item.Price
	quantity := int64(item.Quantity)
	if item.PayWhatCan {
		// Pay-what-you-can rows carry the whole amount as one unit.
		if item.Quantity != 1 {
			desc = fmt.Sprintf("%s, Qty %d", item.Description, item.Quantity)
		}
		unitAmount = item.PayWhatPrice
		quantity = 1
	}
	return domain.LineItem{
		Currency:    "usd",
		Name:        eventName,
		Description: desc,
		UnitAmount:  unitAmount.Mul(minorUnits).Round(0).IntPart(),
		Quantity:    quantity,
	}
}

func donationLineItem(donation decimal.Decimal) domain.LineItem {
	return domain.LineItem{
		Currency:    "usd",
		Name:        "Donation",
		Description: "A generous donation",
		UnitAmount:  donation.Mul(minorUnits).Round(0).IntPart(),
		Quantity:    1,
	}
}

func (s *CheckoutService) validateDiscount(ctx context.Context, code string, cart []domain.CartItem) (*domain.Discount, error) {
	discount, err := s.discounts.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDiscountNotFound) {
			return nil, domain.NewInvalidInput("invalid discount code")
		}
		return nil, fmt.Errorf("look up discount: %w", err)
	}

	eventIDs := make(map[int64]bool)
	totalTickets := 0
	for _, item := range cart {
		eventIDs[item.EventID] = true
		totalTickets += item.Quantity
	}

	if discount.MinEvents > len(eventIDs) {
		return nil, domain.NewInvalidInput("not enough events in cart for discount code %s", code)
	}
	if discount.MinTickets > totalTickets {
		return nil, domain.NewInvalidInput("not enough tickets in cart for discount code %s", code)
	}

	return discount, nil
}

func validateContact(form domain.CheckoutForm) (*domain.Contact, error) {
	if form.FirstName == "" {
		return nil, domain.NewInvalidInput("a valid first name must be provided")
	}
	if form.LastName == "" {
		return nil, domain.NewInvalidInput("a valid last name must be provided")
	}
	if !emailPattern.MatchString(form.Email) {
		return nil, domain.NewInvalidInput("email %s is invalid", form.Email)
	}
	if form.Phone != "" && !phonePattern.MatchString(form.Phone) {
		return nil, domain.NewInvalidInput("phone number %s is invalid", form.Phone)
	}

	return &domain.Contact{
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		Phone:         form.Phone,
		StreetAddress: form.StreetAddress,
		City:          form.City,
		State:         form.State,
		PostalCode:    form.PostalCode,
		Country:       form.Country,
		SeatingAcc:    form.SeatingAcc,
		Comments:      form.Comments,
		Newsletter:    form.OptIn,
	}, nil
}
