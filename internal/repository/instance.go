package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InstanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInstanceRepo(db *dbpg.DB) *InstanceRepository {
	return &InstanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *InstanceRepository) GetLoaded(ctx context.Context, id int64) (*domain.LoadedInstance, error) {
	loaded, err := r.GetLoadedMany(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	inst, ok := loaded[id]
	if !ok {
		return nil, domain.ErrShowingNotFound
	}
	return inst, nil
}

// GetLoadedMany reads a snapshot of the given showings: showing fields,
// every restriction, the unsold slot ids in ascending order, and sold
// counts. Claims are re-validated at write time, so the snapshot itself
// needs no lock.
func (r *InstanceRepository) GetLoadedMany(ctx context.Context, ids []int64) (map[int64]*domain.LoadedInstance, error) {
	query := `SELECT ei.id, ei.event_id, ei.event_date, ei.detail, ei.total_seats, ei.available_seats,
	                 ei.default_ticket_type_id, ei.sales_status, ei.preview, ei.purchase_uri,
	                 ei.created_at, ei.updated_at, e.name
	          FROM event_instances ei
	          JOIN events e ON e.id = ei.event_id
	          WHERE ei.id = ANY($1) AND ei.deleted_at IS NULL`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load showings: %w", err)
	}
	defer rows.Close()

	loaded := make(map[int64]*domain.LoadedInstance)
	for rows.Next() {
		var li domain.LoadedInstance
		if err = rows.Scan(
			&li.ID, &li.EventID, &li.EventDate, &li.Detail, &li.TotalSeats, &li.AvailableSeats,
			&li.DefaultTicketTypeID, &li.SalesStatus, &li.Preview, &li.PurchaseURI,
			&li.CreatedAt, &li.UpdatedAt, &li.EventName,
		); err != nil {
			return nil, fmt.Errorf("scan showing: %w", err)
		}
		li.SeasonPriceDefaults = make(map[int64]int64)
		loaded[li.ID] = &li
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.loadRestrictions(ctx, ids, loaded); err != nil {
		return nil, err
	}
	if err = r.loadSeasonDefaults(ctx, ids, loaded); err != nil {
		return nil, err
	}

	return loaded, nil
}

func (r *InstanceRepository) loadRestrictions(ctx context.Context, ids []int64, loaded map[int64]*domain.LoadedInstance) error {
	query := `SELECT id, event_instance_id, ticket_type_id, price, concession_price, ticket_limit, season_price_default_id
	          FROM ticket_restrictions
	          WHERE event_instance_id = ANY($1)
	          ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load restrictions: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.LoadedRestriction)
	for rows.Next() {
		var lr domain.LoadedRestriction
		if err = rows.Scan(
			&lr.ID, &lr.EventInstanceID, &lr.TicketTypeID, &lr.Price,
			&lr.ConcessionPrice, &lr.TicketLimit, &lr.SeasonPriceDefaultID,
		); err != nil {
			return fmt.Errorf("scan restriction: %w", err)
		}
		if inst, ok := loaded[lr.EventInstanceID]; ok {
			inst.Restrictions = append(inst.Restrictions, &lr)
			byID[lr.ID] = &lr
		}
	}
	if err = rows.Err(); err != nil {
		return err
	}

	slotQuery := `SELECT et.ticket_restriction_id, et.id, et.single_ticket_id IS NOT NULL
	              FROM event_tickets et
	              JOIN ticket_restrictions tr ON tr.id = et.ticket_restriction_id
	              WHERE tr.event_instance_id = ANY($1)
	              ORDER BY et.id`

	slotRows, err := r.db.QueryWithRetry(ctx, r.strategy, slotQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var restrictionID, slotID int64
		var sold bool
		if err = slotRows.Scan(&restrictionID, &slotID, &sold); err != nil {
			return fmt.Errorf("scan slot: %w", err)
		}
		lr, ok := byID[restrictionID]
		if !ok {
			continue
		}
		if sold {
			lr.SoldCount++
		} else {
			lr.UnsoldSlots = append(lr.UnsoldSlots, slotID)
		}
	}

	return slotRows.Err()
}

func (r *InstanceRepository) loadSeasonDefaults(ctx context.Context, ids []int64, loaded map[int64]*domain.LoadedInstance) error {
	query := `SELECT ei.id, spd.ticket_type_id, spd.id
	          FROM event_instances ei
	          JOIN events e ON e.id = ei.event_id
	          JOIN season_price_defaults spd ON spd.season_id = e.season_id
	          WHERE ei.id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load season price defaults: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var instanceID, ticketTypeID, defaultID int64
		if err = rows.Scan(&instanceID, &ticketTypeID, &defaultID); err != nil {
			return fmt.Errorf("scan season price default: %w", err)
		}
		if inst, ok := loaded[instanceID]; ok {
			inst.SeasonPriceDefaults[ticketTypeID] = defaultID
		}
	}

	return rows.Err()
}

// UpdateShowing applies the showing fields and the restriction plan in one
// transaction. Slot removals are conditional on the slot still being
// unsold; a shortfall means a concurrent sale won and the whole update
// fails.
func (r *InstanceRepository) UpdateShowing(ctx context.Context, id int64, upd domain.ShowingUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE event_instances
	          SET event_date = $2, detail = $3, total_seats = $4, available_seats = $5,
	              sales_status = $6, preview = $7, purchase_uri = $8, updated_at = now()
	          WHERE id = $1 AND deleted_at IS NULL`
	res, err := tx.ExecContext(ctx, query, id,
		upd.EventDate, upd.Detail, upd.TotalSeats, upd.AvailableSeats,
		upd.SalesStatus, upd.Preview, upd.PurchaseURI,
	)
	if err != nil {
		return fmt.Errorf("update showing: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("update showing rows affected: %w", err)
	} else if n == 0 {
		return domain.ErrShowingNotFound
	}

	if err = r.applyPlan(ctx, tx, id, upd.Plan); err != nil {
		return err
	}

	if err = refreshAvailableSeats(ctx, tx, []int64{id}); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *InstanceRepository) applyPlan(ctx context.Context, tx *sql.Tx, instanceID int64, plan *domain.RestrictionPlan) error {
	if plan == nil || plan.Empty() {
		return nil
	}

	if len(plan.Deletes) > 0 {
		// Unsold slots go first; the restriction delete would hit the FK
		// otherwise. Sold slots are never deleted, the plan guards that.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM event_tickets WHERE ticket_restriction_id = ANY($1) AND single_ticket_id IS NULL`,
			pq.Array(plan.Deletes),
		); err != nil {
			return fmt.Errorf("delete slots: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM ticket_restrictions WHERE id = ANY($1)`,
			pq.Array(plan.Deletes),
		); err != nil {
			return fmt.Errorf("delete restrictions: %w", err)
		}
	}

	for _, u := range plan.Updates {
		if _, err := tx.ExecContext(ctx,
			`UPDATE ticket_restrictions
			 SET ticket_limit = $2, price = $3, concession_price = $4, season_price_default_id = $5
			 WHERE id = $1`,
			u.RestrictionID, u.TicketLimit, u.Price, u.ConcessionPrice, u.SeasonPriceDefaultID,
		); err != nil {
			return fmt.Errorf("update restriction %d: %w", u.RestrictionID, err)
		}
		if u.AddSlots > 0 {
			if err := createSlots(ctx, tx, instanceID, u.RestrictionID, u.AddSlots); err != nil {
				return err
			}
		}
		if len(u.RemoveSlotIDs) > 0 {
			res, err := tx.ExecContext(ctx,
				`DELETE FROM event_tickets WHERE id = ANY($1) AND single_ticket_id IS NULL`,
				pq.Array(u.RemoveSlotIDs),
			)
			if err != nil {
				return fmt.Errorf("remove slots: %w", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("remove slots rows affected: %w", err)
			}
			if int(n) != len(u.RemoveSlotIDs) {
				return domain.NewInvalidInput("showing inventory changed, please retry")
			}
		}
	}

	for _, c := range plan.Creates {
		var restrictionID int64
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO ticket_restrictions (event_instance_id, ticket_type_id, price, concession_price, ticket_limit, season_price_default_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			instanceID, c.TicketTypeID, c.Price, c.ConcessionPrice, c.TicketLimit, c.SeasonPriceDefaultID,
		).Scan(&restrictionID); err != nil {
			return fmt.Errorf("create restriction: %w", err)
		}
		if err := createSlots(ctx, tx, instanceID, restrictionID, c.Slots); err != nil {
			return err
		}
	}

	return nil
}

func createSlots(ctx context.Context, tx *sql.Tx, instanceID, restrictionID int64, count int) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO event_tickets (event_instance_id, ticket_restriction_id)
		 SELECT $1, $2 FROM generate_series(1, $3)`,
		instanceID, restrictionID, count,
	); err != nil {
		return fmt.Errorf("create slots: %w", err)
	}
	return nil
}

func (r *InstanceRepository) ListRestrictions(ctx context.Context, filter domain.RestrictionFilter) ([]*domain.RestrictionSummary, error) {
	query := `SELECT tr.id, tr.event_instance_id, tr.ticket_type_id, tt.description,
	                 tr.price, tr.concession_price, tr.ticket_limit,
	                 COUNT(et.id) FILTER (WHERE et.single_ticket_id IS NOT NULL) AS tickets_sold
	          FROM ticket_restrictions tr
	          JOIN ticket_types tt ON tt.id = tr.ticket_type_id
	          JOIN event_instances ei ON ei.id = tr.event_instance_id
	          JOIN events e ON e.id = ei.event_id
	          LEFT JOIN event_tickets et ON et.ticket_restriction_id = tr.id
	          WHERE ei.deleted_at IS NULL
	            AND ei.available_seats > 0
	            AND e.active
	            AND ($1::bigint IS NULL OR tr.event_instance_id = $1)
	            AND ($2::bigint IS NULL OR tr.ticket_type_id = $2)
	          GROUP BY tr.id, tt.description
	          HAVING COUNT(et.id) FILTER (WHERE et.single_ticket_id IS NULL) > 0
	          ORDER BY tr.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.EventInstanceID, filter.TicketTypeID)
	if err != nil {
		return nil, fmt.Errorf("list restrictions: %w", err)
	}
	defer rows.Close()

	var res []*domain.RestrictionSummary
	for rows.Next() {
		var s domain.RestrictionSummary
		if err = rows.Scan(
			&s.ID, &s.EventInstanceID, &s.TicketTypeID, &s.Description,
			&s.Price, &s.ConcessionPrice, &s.TicketLimit, &s.TicketsSold,
		); err != nil {
			return nil, fmt.Errorf("scan restriction summary: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *InstanceRepository) SetRedeemed(ctx context.Context, ticketID int64, redeemed bool) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE event_tickets SET redeemed = $2 WHERE id = $1`,
		ticketID, redeemed,
	)
	if err != nil {
		return fmt.Errorf("set redeemed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set redeemed rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

// refreshAvailableSeats recomputes available_seats as the count of unsold
// default-type slots, inside the caller's transaction. Keeping the derived
// count in step with slot claims is what preserves
// availableSeats + soldDefaultSlots == totalSeats.
func refreshAvailableSeats(ctx context.Context, tx *sql.Tx, instanceIDs []int64) error {
	query := `UPDATE event_instances ei
	          SET available_seats = (
	              SELECT COUNT(*)
	              FROM event_tickets et
	              JOIN ticket_restrictions tr ON tr.id = et.ticket_restriction_id
	              WHERE tr.event_instance_id = ei.id
	                AND tr.ticket_type_id = ei.default_ticket_type_id
	                AND et.single_ticket_id IS NULL
	          ), updated_at = now()
	          WHERE ei.id = ANY($1)`
	if _, err := tx.ExecContext(ctx, query, pq.Array(instanceIDs)); err != nil {
		return fmt.Errorf("refresh available seats: %w", err)
	}
	return nil
}
