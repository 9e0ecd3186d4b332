package scheduler

import (
	"context"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type orderSweeper interface {
	CancelStale(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error)
}

// Scheduler periodically cancels pending orders whose checkout session has
// expired, releasing their seats back to inventory.
type Scheduler struct {
	checkoutService orderSweeper
	interval        time.Duration
	orderTTL        time.Duration
	logger          logger.Logger
}

func New(
	checkoutService orderSweeper,
	interval time.Duration,
	orderTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checkoutService: checkoutService,
		interval:        interval,
		orderTTL:        orderTTL,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("order_ttl", s.orderTTL),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.checkoutService.CancelStale(ctx, s.orderTTL)
	if err != nil {
		s.logger.Error("failed to cancel stale orders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, o := range cancelled {
		s.logger.Info("stale order cancelled",
			logger.Int64("order_id", o.ID),
			logger.Int64("contact_id", o.ContactID),
			logger.String("total", o.Total.StringFixed(2)),
		)
	}
}
