package ports

import (
	"context"

	"github.com/HaliTran/wondertix/internal/domain"
)

type InstanceRepo interface {
	GetLoaded(ctx context.Context, id int64) (*domain.LoadedInstance, error)
	GetLoadedMany(ctx context.Context, ids []int64) (map[int64]*domain.LoadedInstance, error)
	UpdateShowing(ctx context.Context, id int64, upd domain.ShowingUpdate) error
	ListRestrictions(ctx context.Context, filter domain.RestrictionFilter) ([]*domain.RestrictionSummary, error)
	SetRedeemed(ctx context.Context, ticketID int64, redeemed bool) error
}
