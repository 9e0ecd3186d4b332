package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type DiscountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDiscountRepo(db *dbpg.DB) *DiscountRepository {
	return &DiscountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *DiscountRepository) GetActiveByCode(ctx context.Context, code string) (*domain.Discount, error) {
	query := `SELECT id, code, amount, percent, min_tickets, min_events, usage_limit, active
	          FROM discounts
	          WHERE lower(code) = lower($1) AND active`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get discount: %w", err)
	}

	var d domain.Discount
	var amount decimal.NullDecimal
	var percent, usageLimit sql.NullInt64
	if err = row.Scan(&d.ID, &d.Code, &amount, &percent, &d.MinTickets, &d.MinEvents, &usageLimit, &d.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDiscountNotFound
		}
		return nil, fmt.Errorf("scan discount: %w", err)
	}
	if amount.Valid {
		d.Amount = &amount.Decimal
	}
	if percent.Valid {
		p := int(percent.Int64)
		d.Percent = &p
	}
	if usageLimit.Valid {
		u := int(usageLimit.Int64)
		d.UsageLimit = &u
	}

	return &d, nil
}
