package ports

import (
	"context"

	"github.com/HaliTran/wondertix/internal/domain"
)

type DiscountRepo interface {
	// GetActiveByCode looks a discount up case-insensitively; inactive
	// codes are not returned.
	GetActiveByCode(ctx context.Context, code string) (*domain.Discount, error)
}
