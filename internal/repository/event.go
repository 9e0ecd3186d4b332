package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, season_id, name, description, active, season_ticket_eligible, image_url, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (season_id, name, description, active, season_ticket_eligible, image_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	          RETURNING id, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		e.SeasonID, e.Name, e.Description, e.Active, e.SeasonTicketEligible, e.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("scan event id: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, active *bool) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
	          FROM events
	          WHERE deleted_at IS NULL AND ($1::boolean IS NULL OR active = $1)
	          ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, active)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetWithShowings(ctx context.Context, id int64) (*domain.EventWithShowings, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, event_id, event_date, detail, total_seats, available_seats,
	                 default_ticket_type_id, sales_status, preview, purchase_uri, created_at, updated_at
	          FROM event_instances
	          WHERE event_id = $1 AND deleted_at IS NULL
	          ORDER BY event_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("list showings: %w", err)
	}
	defer rows.Close()

	res := &domain.EventWithShowings{Event: *event}
	for rows.Next() {
		var ei domain.EventInstance
		if err = rows.Scan(
			&ei.ID, &ei.EventID, &ei.EventDate, &ei.Detail, &ei.TotalSeats, &ei.AvailableSeats,
			&ei.DefaultTicketTypeID, &ei.SalesStatus, &ei.Preview, &ei.PurchaseURI,
			&ei.CreatedAt, &ei.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan showing: %w", err)
		}
		res.Showings = append(res.Showings, ei)
	}

	return res, rows.Err()
}

func (r *EventRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Event, error) {
	query := `UPDATE events SET active = $2, updated_at = now()
	          WHERE id = $1 AND deleted_at IS NULL
	          RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return nil, fmt.Errorf("set event active: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// SoftDelete marks the event and its showings deleted. Sold tickets stay
// linked to their orders; the rows just stop appearing in reads.
func (r *EventRepository) SoftDelete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE events SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("soft delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE event_instances SET deleted_at = now(), updated_at = now() WHERE event_id = $1 AND deleted_at IS NULL`,
		id,
	); err != nil {
		return fmt.Errorf("soft delete showings: %w", err)
	}

	return tx.Commit()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.SeasonID, &e.Name, &e.Description, &e.Active,
		&e.SeasonTicketEligible, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
