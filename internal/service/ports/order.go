package ports

import (
	"context"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
)

type OrderRepo interface {
	// Fulfill persists the order, its items, and the slot claims as one
	// transaction. A slot already claimed by a concurrent checkout fails
	// the whole transaction.
	Fulfill(ctx context.Context, intake *domain.OrderIntake) (*domain.Order, error)
	// Cancel releases the order's claimed slots and marks it cancelled.
	Cancel(ctx context.Context, orderID int64) (*domain.Order, error)
	ListStale(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error)
}
