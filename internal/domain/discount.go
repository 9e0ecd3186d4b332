package domain

import "github.com/shopspring/decimal"

// Discount is a promo code. Amount and Percent are both optional; when both
// are present the amount off is the lesser of the two bounds.
type Discount struct {
	ID         int64            `json:"id"`
	Code       string           `json:"code"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Percent    *int             `json:"percent,omitempty"`
	MinTickets int              `json:"min_tickets"`
	MinEvents  int              `json:"min_events"`
	UsageLimit *int             `json:"usage_limit,omitempty"`
	Active     bool             `json:"active"`
}

// AmountOff computes the discount against an order total:
// min(percent*total/100, amount) when both bounds are set, else whichever
// is set, always capped at the order total.
func (d *Discount) AmountOff(total decimal.Decimal) decimal.Decimal {
	var off decimal.Decimal
	switch {
	case d.Amount != nil && d.Percent != nil:
		pct := total.Mul(decimal.NewFromInt(int64(*d.Percent))).Div(decimal.NewFromInt(100))
		off = decimal.Min(pct, *d.Amount)
	case d.Amount != nil:
		off = *d.Amount
	case d.Percent != nil:
		off = total.Mul(decimal.NewFromInt(int64(*d.Percent))).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
	return decimal.Min(off, total).Round(2)
}
