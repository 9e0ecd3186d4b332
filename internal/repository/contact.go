package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ContactRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContactRepo(db *dbpg.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert finds a contact by email and refreshes it, or creates one.
func (r *ContactRepository) Upsert(ctx context.Context, c *domain.Contact) (int64, error) {
	query := `INSERT INTO contacts (first_name, last_name, email, phone, street_address, city, state, postal_code, country, seating_accom, comments, newsletter, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
	          ON CONFLICT (email) DO UPDATE
	          SET first_name = EXCLUDED.first_name,
	              last_name = EXCLUDED.last_name,
	              phone = EXCLUDED.phone,
	              street_address = EXCLUDED.street_address,
	              city = EXCLUDED.city,
	              state = EXCLUDED.state,
	              postal_code = EXCLUDED.postal_code,
	              country = EXCLUDED.country,
	              seating_accom = EXCLUDED.seating_accom,
	              comments = EXCLUDED.comments,
	              newsletter = EXCLUDED.newsletter,
	              updated_at = now()
	          RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.StreetAddress, c.City,
		c.State, c.PostalCode, c.Country, c.SeatingAcc, c.Comments, c.Newsletter,
	)
	if err != nil {
		return 0, fmt.Errorf("upsert contact: %w", err)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		return 0, fmt.Errorf("scan contact id: %w", err)
	}

	return id, nil
}
