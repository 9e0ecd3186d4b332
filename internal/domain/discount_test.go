package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscount_AmountOff(t *testing.T) {
	amount := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	percent := func(v int) *int { return &v }

	tests := []struct {
		name     string
		discount Discount
		total    int64
		want     string
	}{
		{"no bounds", Discount{}, 100, "0"},
		{"amount only", Discount{Amount: amount(10)}, 100, "10"},
		{"percent only", Discount{Percent: percent(25)}, 100, "25"},
		{"both bounds takes lesser, percent wins", Discount{Amount: amount(50), Percent: percent(10)}, 100, "10"},
		{"both bounds takes lesser, amount wins", Discount{Amount: amount(5), Percent: percent(50)}, 100, "5"},
		{"capped at total", Discount{Amount: amount(500)}, 100, "100"},
		{"rounded to cents", Discount{Percent: percent(33)}, 10, "3.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.discount.AmountOff(decimal.NewFromInt(tt.total))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}
