package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketTypeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketTypeRepo(db *dbpg.DB) *TicketTypeRepository {
	return &TicketTypeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketTypeRepository) List(ctx context.Context) ([]*domain.TicketType, error) {
	query := `SELECT id, description, price, concession_price FROM ticket_types ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketType
	for rows.Next() {
		var t domain.TicketType
		if err = rows.Scan(&t.ID, &t.Description, &t.Price, &t.ConcessionPrice); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TicketTypeRepository) Create(ctx context.Context, t *domain.TicketType) error {
	query := `INSERT INTO ticket_types (description, price, concession_price)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, t.Description, t.Price, t.ConcessionPrice)
	if err != nil {
		return fmt.Errorf("insert ticket type: %w", err)
	}
	if err = row.Scan(&t.ID); err != nil {
		return fmt.Errorf("scan ticket type id: %w", err)
	}

	return nil
}

// Remove deletes a catalog entry. The FK from ticket_restrictions blocks
// removal of a type still referenced by a showing; the driver error
// surfaces as a constraint violation.
func (r *TicketTypeRepository) Remove(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM ticket_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket type: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ticket type rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTicketTypeNotFound
	}

	return nil
}
