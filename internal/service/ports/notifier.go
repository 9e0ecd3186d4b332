package ports

import (
	"context"

	"github.com/HaliTran/wondertix/internal/domain"
)

type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order *domain.Order, contact *domain.Contact)
	NotifyOrderCancelled(ctx context.Context, order *domain.Order)
}
