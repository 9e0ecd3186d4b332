package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/wb-go/wbf/logger"
)

// SessionTTL is how long a checkout session stays payable. Stale pending
// orders are swept on the same window.
const SessionTTL = 30 * time.Minute

type Config struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Currency   string
}

// StripeProvider creates checkout sessions and one-off coupons against the
// Stripe API. Without a secret key it runs disabled: comp checkouts still
// work, paid ones fail with ErrPaymentUnavailable.
type StripeProvider struct {
	api    *client.API
	cfg    Config
	logger logger.Logger
}

func NewStripeProvider(cfg Config, logger logger.Logger) *StripeProvider {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.SecretKey == "" {
		logger.Warn("stripe secret key is empty, payment sessions disabled")
		return &StripeProvider{cfg: cfg, logger: logger}
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeProvider{api: api, cfg: cfg, logger: logger}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params domain.PaymentSessionParams) (string, error) {
	if p.api == nil {
		return "", domain.ErrPaymentUnavailable
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		ExpiresAt:          stripe.Int64(time.Now().Add(SessionTTL).Unix()),
		SuccessURL:         stripe.String(p.cfg.SuccessURL),
		CancelURL:          stripe.String(p.cfg.CancelURL),
		CustomerCreation:   stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways)),
		CustomerEmail:      stripe.String(params.Email),
		LineItems:          toStripeLineItems(params.LineItems),
	}
	sessionParams.Context = ctx
	sessionParams.AddMetadata("sessionType", "__ticketing")
	sessionParams.AddMetadata("contactID", strconv.FormatInt(params.ContactID, 10))
	sessionParams.AddMetadata("donation", params.Donation.StringFixed(2))

	if params.Discount != nil {
		couponID, err := p.createCoupon(ctx, params.Discount, params.OrderTotal)
		if err != nil {
			return "", err
		}
		sessionParams.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(couponID)},
		}
	}

	session, err := p.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return "", fmt.Errorf("create stripe checkout session: %w", err)
	}

	return session.ID, nil
}

func (p *StripeProvider) ExpireSession(ctx context.Context, sessionID string) error {
	if p.api == nil {
		return domain.ErrPaymentUnavailable
	}

	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx
	if _, err := p.api.CheckoutSessions.Expire(sessionID, params); err != nil {
		return fmt.Errorf("expire stripe checkout session: %w", err)
	}

	return nil
}

// createCoupon mints a single-use coupon for the discount: a flat amount
// off when one is configured, else the configured percent.
func (p *StripeProvider) createCoupon(ctx context.Context, discount *domain.Discount, orderTotal decimal.Decimal) (string, error) {
	params := &stripe.CouponParams{
		Duration: stripe.String(string(stripe.CouponDurationOnce)),
		Name:     stripe.String(discount.Code),
	}
	params.Context = ctx

	if discount.Amount != nil {
		amountOff := discount.AmountOff(orderTotal)
		params.AmountOff = stripe.Int64(amountOff.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		params.Currency = stripe.String(p.cfg.Currency)
	} else if discount.Percent != nil {
		params.PercentOff = stripe.Float64(float64(*discount.Percent))
	}

	coupon, err := p.api.Coupons.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe coupon: %w", err)
	}

	return coupon.ID, nil
}

func toStripeLineItems(items []domain.LineItem) []*stripe.CheckoutSessionLineItemParams {
	res := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		res = append(res, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(item.Currency),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(item.Description),
				},
			},
		})
	}
	return res
}
