package ports

import (
	"context"

	"github.com/HaliTran/wondertix/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, active *bool) ([]*domain.Event, error)
	GetWithShowings(ctx context.Context, id int64) (*domain.EventWithShowings, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Event, error)
	SoftDelete(ctx context.Context, id int64) error
}

type TicketTypeRepo interface {
	List(ctx context.Context) ([]*domain.TicketType, error)
	Create(ctx context.Context, t *domain.TicketType) error
	Remove(ctx context.Context, id int64) error
}
