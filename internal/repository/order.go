package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Fulfill persists the order, its items, and the slot claims atomically.
// Each claim is conditional on the slot being unclaimed, so two concurrent
// checkouts racing on the same slot surface as a conflict here rather than
// as an oversell: the loser's transaction rolls back whole.
func (r *OrderRepository) Fulfill(ctx context.Context, intake *domain.OrderIntake) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	order := &domain.Order{
		Reference:       intake.Reference,
		ContactID:       intake.ContactID,
		Total:           intake.Total,
		DiscountID:      intake.DiscountID,
		CheckoutSession: intake.CheckoutSession,
		PaymentIntent:   intake.CheckoutSession,
		Status:          domain.OrderStatusPending,
	}
	if intake.Comp {
		order.Status = domain.OrderStatusCompleted
	}

	query := `INSERT INTO orders (reference, contact_id, order_total, discount_id, checkout_session, payment_intent, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	          RETURNING id, created_at, updated_at`
	if err = tx.QueryRowContext(ctx, query,
		order.Reference, order.ContactID, order.Total, order.DiscountID,
		order.CheckoutSession, order.PaymentIntent, order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if intake.Comp {
		marker := fmt.Sprintf("comp-%d", order.ID)
		if _, err = tx.ExecContext(ctx,
			`UPDATE orders SET checkout_session = $2, payment_intent = $2 WHERE id = $1`,
			order.ID, marker,
		); err != nil {
			return nil, fmt.Errorf("mark comp order: %w", err)
		}
		order.CheckoutSession = marker
		order.PaymentIntent = marker
	}

	for _, item := range intake.Items {
		var orderItemID, singleTicketID int64
		if err = tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, price) VALUES ($1, $2) RETURNING id`,
			order.ID, item.Price,
		).Scan(&orderItemID); err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
		if err = tx.QueryRowContext(ctx,
			`INSERT INTO single_tickets (order_item_id) VALUES ($1) RETURNING id`,
			orderItemID,
		).Scan(&singleTicketID); err != nil {
			return nil, fmt.Errorf("insert single ticket: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE event_tickets SET single_ticket_id = $1 WHERE id = ANY($2) AND single_ticket_id IS NULL`,
			singleTicketID, pq.Array(item.SlotIDs),
		)
		if err != nil {
			return nil, fmt.Errorf("claim slots: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("claim slots rows affected: %w", err)
		}
		if int(n) != len(item.SlotIDs) {
			return nil, domain.NewInvalidInput("requested tickets no longer available")
		}
	}

	if err = refreshAvailableSeats(ctx, tx, intake.TouchedInstances); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	return order, nil
}

// Cancel releases every slot the order claimed and marks it cancelled.
// Cancelling an already cancelled order is a no-op.
func (r *OrderRepository) Cancel(ctx context.Context, orderID int64) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	order, err := scanOrder(tx.QueryRowContext(ctx,
		`SELECT id, reference, contact_id, order_total, discount_id, checkout_session, payment_intent, status, created_at, updated_at
		 FROM orders WHERE id = $1 FOR UPDATE`,
		orderID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.Status == domain.OrderStatusCancelled {
		return order, tx.Commit()
	}

	touched, err := orderInstances(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE event_tickets SET single_ticket_id = NULL
		 WHERE single_ticket_id IN (
		     SELECT st.id FROM single_tickets st
		     JOIN order_items oi ON oi.id = st.order_item_id
		     WHERE oi.order_id = $1
		 )`,
		orderID,
	); err != nil {
		return nil, fmt.Errorf("release slots: %w", err)
	}

	if len(touched) > 0 {
		if err = refreshAvailableSeats(ctx, tx, touched); err != nil {
			return nil, err
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		orderID, domain.OrderStatusCancelled,
	); err != nil {
		return nil, fmt.Errorf("mark order cancelled: %w", err)
	}
	order.Status = domain.OrderStatusCancelled

	return order, tx.Commit()
}

func (r *OrderRepository) ListStale(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	query := `SELECT id, reference, contact_id, order_total, discount_id, checkout_session, payment_intent, status, created_at, updated_at
	          FROM orders
	          WHERE status = $1 AND created_at + make_interval(secs => $2) < now()
	          ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.OrderStatusPending, olderThan.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list stale orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, order)
	}

	return res, rows.Err()
}

func orderInstances(ctx context.Context, tx *sql.Tx, orderID int64) ([]int64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT DISTINCT tr.event_instance_id
		 FROM event_tickets et
		 JOIN ticket_restrictions tr ON tr.id = et.ticket_restriction_id
		 JOIN single_tickets st ON st.id = et.single_ticket_id
		 JOIN order_items oi ON oi.id = st.order_item_id
		 WHERE oi.order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("order instances: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan instance id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID, &o.Reference, &o.ContactID, &o.Total, &o.DiscountID,
		&o.CheckoutSession, &o.PaymentIntent, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
