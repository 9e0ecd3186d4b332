package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutMocks struct {
	instances *mocks.MockInstanceRepo
	orders    *mocks.MockOrderRepo
	contacts  *mocks.MockContactRepo
	discounts *mocks.MockDiscountRepo
	payment   *mocks.MockPaymentProvider
	notifier  *mocks.MockOrderNotifier
}

func newCheckoutService(t *testing.T) (*CheckoutService, *checkoutMocks) {
	t.Helper()
	m := &checkoutMocks{
		instances: mocks.NewMockInstanceRepo(t),
		orders:    mocks.NewMockOrderRepo(t),
		contacts:  mocks.NewMockContactRepo(t),
		discounts: mocks.NewMockDiscountRepo(t),
		payment:   mocks.NewMockPaymentProvider(t),
		notifier:  mocks.NewMockOrderNotifier(t),
	}
	svc := NewCheckoutService(m.instances, m.orders, m.contacts, m.discounts, m.payment, m.notifier, newTestLogger(t))
	return svc, m
}

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func gaCartItem(qty int) domain.CartItem {
	return domain.CartItem{
		ProductID:    1,
		TicketTypeID: 1,
		Quantity:     qty,
		Price:        decimal.NewFromInt(20),
		Description:  "General Admission",
		EventID:      7,
		EventName:    "Hamlet",
	}
}

func loadedShowings(restrictions ...*domain.LoadedRestriction) map[int64]*domain.LoadedInstance {
	return map[int64]*domain.LoadedInstance{
		1: showing(10, restrictions...),
	}
}

func TestCheckout_PaidOrder(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, []int64{1}).
		Return(loadedShowings(restriction(11, 1, 20, 10, 0)), nil)
	m.payment.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(p domain.PaymentSessionParams) bool {
		return p.ContactID == 9 &&
			p.Email == "ada@example.com" &&
			p.OrderTotal.Equal(decimal.NewFromInt(40)) &&
			len(p.LineItems) == 1 &&
			p.LineItems[0].UnitAmount == 2000 &&
			p.LineItems[0].Quantity == 2
	})).Return("cs_123", nil)
	m.orders.EXPECT().Fulfill(mock.Anything, mock.MatchedBy(func(intake *domain.OrderIntake) bool {
		return !intake.Comp &&
			intake.CheckoutSession == "cs_123" &&
			intake.ContactID == 9 &&
			intake.Total.Equal(decimal.NewFromInt(40)) &&
			len(intake.Items) == 2 &&
			len(intake.Items[0].SlotIDs) == 1
	})).Return(&domain.Order{ID: 42, ContactID: 9, CheckoutSession: "cs_123"}, nil)
	m.notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	sessionID, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_123", sessionID)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckout_CompOrderSkipsPayment(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, []int64{1}).
		Return(loadedShowings(
			restriction(11, 1, 20, 10, 0),
			restriction(13, 0, 0, 5, 0),
		), nil)
	m.orders.EXPECT().Fulfill(mock.Anything, mock.MatchedBy(func(intake *domain.OrderIntake) bool {
		// Each comp unit claims its own slot plus a companion default slot.
		return intake.Comp &&
			intake.CheckoutSession == "" &&
			len(intake.Items) == 2 &&
			len(intake.Items[0].SlotIDs) == 2 &&
			len(intake.Items[1].SlotIDs) == 2
	})).Return(&domain.Order{ID: 43, CheckoutSession: "comp-43"}, nil)
	m.notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	comp := gaCartItem(2)
	comp.TicketTypeID = 0
	comp.Price = decimal.Zero
	comp.Description = "Comp"

	sessionID, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{comp},
		Form:      validForm(),
	})

	require.NoError(t, err)
	assert.Equal(t, CompSessionID, sessionID)
	m.payment.AssertNotCalled(t, "CreateCheckoutSession")
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newCheckoutService(t)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{Form: validForm()})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, 400, invalid.Code)
	assert.Contains(t, invalid.Message, "cart is empty")
}

func TestCheckout_NegativeDonation(t *testing.T) {
	svc, _ := newCheckoutService(t)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Form:     validForm(),
		Donation: decimal.NewFromInt(-5),
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, 422, invalid.Code)
}

func TestCheckout_DonationOnly(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, mock.Anything).
		Return(map[int64]*domain.LoadedInstance{}, nil)
	m.payment.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(p domain.PaymentSessionParams) bool {
		return len(p.LineItems) == 1 &&
			p.LineItems[0].Name == "Donation" &&
			p.LineItems[0].UnitAmount == 2500
	})).Return("cs_don", nil)
	m.orders.EXPECT().Fulfill(mock.Anything, mock.Anything).
		Return(&domain.Order{ID: 44, CheckoutSession: "cs_don"}, nil)
	m.notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	sessionID, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Form:     validForm(),
		Donation: decimal.NewFromInt(25),
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_don", sessionID)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckout_DiscountBelowMinTickets(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.discounts.EXPECT().GetActiveByCode(mock.Anything, "GROUP5").
		Return(&domain.Discount{ID: 3, Code: "GROUP5", MinTickets: 5}, nil)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
		Discount:  domain.DiscountRequest{Code: "GROUP5"},
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, 422, invalid.Code)
	assert.Contains(t, invalid.Message, "not enough tickets")
	m.contacts.AssertNotCalled(t, "Upsert")
}

func TestCheckout_UnknownDiscountCode(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.discounts.EXPECT().GetActiveByCode(mock.Anything, "NOPE").
		Return(nil, domain.ErrDiscountNotFound)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
		Discount:  domain.DiscountRequest{Code: "NOPE"},
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "invalid discount code")
}

func TestCheckout_DiscountReducesNet(t *testing.T) {
	svc, m := newCheckoutService(t)

	amount := decimal.NewFromInt(10)
	m.discounts.EXPECT().GetActiveByCode(mock.Anything, "SAVE10").
		Return(&domain.Discount{ID: 3, Code: "SAVE10", Amount: &amount}, nil)
	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, []int64{1}).
		Return(loadedShowings(restriction(11, 1, 20, 10, 0)), nil)
	m.payment.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(p domain.PaymentSessionParams) bool {
		// The session is built from the undiscounted total; the discount
		// rides along for the provider to apply.
		return p.OrderTotal.Equal(decimal.NewFromInt(40)) &&
			p.Discount != nil && p.Discount.Code == "SAVE10"
	})).Return("cs_d", nil)
	m.orders.EXPECT().Fulfill(mock.Anything, mock.MatchedBy(func(intake *domain.OrderIntake) bool {
		return intake.DiscountID != nil && *intake.DiscountID == 3
	})).Return(&domain.Order{ID: 45, CheckoutSession: "cs_d"}, nil)
	m.notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	sessionID, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
		Discount:  domain.DiscountRequest{Code: "SAVE10"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_d", sessionID)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckout_InvalidEmail(t *testing.T) {
	svc, m := newCheckoutService(t)

	form := validForm()
	form.Email = "not-an-email"

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(1)},
		Form:      form,
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, 422, invalid.Code)
	m.contacts.AssertNotCalled(t, "Upsert")
}

func TestCheckout_InvalidPhone(t *testing.T) {
	svc, _ := newCheckoutService(t)

	form := validForm()
	form.Phone = "12"

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(1)},
		Form:      form,
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "phone number")
}

func TestCheckout_NotEnoughSlots(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, []int64{1}).
		Return(loadedShowings(restriction(11, 1, 20, 10, 9)), nil)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "no longer available")
	m.orders.AssertNotCalled(t, "Fulfill")
}

func TestCheckout_FulfillFailureExpiresSession(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, []int64{1}).
		Return(loadedShowings(restriction(11, 1, 20, 10, 0)), nil)
	m.payment.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).Return("cs_fail", nil)
	m.orders.EXPECT().Fulfill(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	m.payment.EXPECT().ExpireSession(mock.Anything, "cs_fail").Return(nil)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "db down")
}

func TestCheckout_SlotClaimConflict(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.contacts.EXPECT().Upsert(mock.Anything, mock.Anything).Return(int64(9), nil)
	m.instances.EXPECT().GetLoadedMany(mock.Anything, []int64{1}).
		Return(loadedShowings(restriction(11, 1, 20, 10, 0)), nil)
	m.payment.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).Return("cs_race", nil)
	// A concurrent order claimed the slots between snapshot and write.
	m.orders.EXPECT().Fulfill(mock.Anything, mock.Anything).
		Return(nil, domain.NewInvalidInput("requested tickets no longer available"))
	m.payment.EXPECT().ExpireSession(mock.Anything, "cs_race").Return(nil)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		CartItems: []domain.CartItem{gaCartItem(2)},
		Form:      validForm(),
	})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, 422, invalid.Code)
	assert.Contains(t, invalid.Message, "no longer available")
}

func TestBuildOrderDraft_PayWhatCan(t *testing.T) {
	instances := loadedShowings(restriction(11, 1, 20, 10, 0))

	item := gaCartItem(3)
	item.PayWhatCan = true
	item.PayWhatPrice = decimal.NewFromInt(25)
	item.Description = "Pay What You Can"

	draft, err := BuildOrderDraft([]domain.CartItem{item}, instances)

	require.NoError(t, err)
	assert.True(t, draft.Total.Equal(decimal.NewFromInt(25)))
	require.Len(t, draft.LineItems, 1)
	li := draft.LineItems[0]
	assert.Equal(t, "Pay What You Can, Qty 3", li.Description)
	assert.Equal(t, int64(2500), li.UnitAmount)
	assert.Equal(t, int64(1), li.Quantity)
	require.Len(t, draft.Items, 3)
	// Unit price is the named amount spread across the quantity.
	sum := decimal.Zero
	for _, unit := range draft.Items {
		sum = sum.Add(unit.Price)
	}
	assert.True(t, sum.Round(2).Equal(decimal.NewFromInt(25)))
}

func TestBuildOrderDraft_UnknownShowing(t *testing.T) {
	item := gaCartItem(1)
	item.ProductID = 99

	_, err := BuildOrderDraft([]domain.CartItem{item}, loadedShowings(restriction(11, 1, 20, 10, 0)))

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "does not exist")
}

func TestBuildOrderDraft_SequentialAllocation(t *testing.T) {
	instances := loadedShowings(restriction(11, 1, 20, 10, 0))

	draft, err := BuildOrderDraft([]domain.CartItem{gaCartItem(2), gaCartItem(2)}, instances)

	require.NoError(t, err)
	require.Len(t, draft.Items, 4)
	seen := make(map[int64]bool)
	for _, unit := range draft.Items {
		require.Len(t, unit.SlotIDs, 1)
		assert.False(t, seen[unit.SlotIDs[0]], "slot %d allocated twice", unit.SlotIDs[0])
		seen[unit.SlotIDs[0]] = true
	}
}

func TestCancelOrder_ExpiresSession(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.orders.EXPECT().Cancel(mock.Anything, int64(5)).
		Return(&domain.Order{ID: 5, CheckoutSession: "cs_old"}, nil)
	m.payment.EXPECT().ExpireSession(mock.Anything, "cs_old").Return(nil)
	m.notifier.EXPECT().NotifyOrderCancelled(mock.Anything, mock.Anything).Return()

	order, err := svc.CancelOrder(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), order.ID)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCancelOrder_CompSessionSkipsExpiry(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.orders.EXPECT().Cancel(mock.Anything, int64(6)).
		Return(&domain.Order{ID: 6, CheckoutSession: "comp-6"}, nil)
	m.notifier.EXPECT().NotifyOrderCancelled(mock.Anything, mock.Anything).Return()

	_, err := svc.CancelOrder(context.Background(), 6)

	require.NoError(t, err)
	m.payment.AssertNotCalled(t, "ExpireSession")
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCancelStale_SkipsFailures(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.orders.EXPECT().ListStale(mock.Anything, 30*time.Minute).Return([]*domain.Order{
		{ID: 1, CheckoutSession: "cs_1"},
		{ID: 2, CheckoutSession: "cs_2"},
	}, nil)
	m.orders.EXPECT().Cancel(mock.Anything, int64(1)).
		Return(&domain.Order{ID: 1, CheckoutSession: "cs_1"}, nil)
	m.orders.EXPECT().Cancel(mock.Anything, int64(2)).
		Return(nil, errors.New("already completed"))
	m.payment.EXPECT().ExpireSession(mock.Anything, "cs_1").Return(nil)
	m.notifier.EXPECT().NotifyOrderCancelled(mock.Anything, mock.Anything).Return()

	cancelled, err := svc.CancelStale(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, int64(1), cancelled[0].ID)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}
