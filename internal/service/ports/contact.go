package ports

import (
	"context"

	"github.com/HaliTran/wondertix/internal/domain"
)

type ContactRepo interface {
	// Upsert finds a contact by email and updates it, or creates one.
	// Returns the contact id.
	Upsert(ctx context.Context, c *domain.Contact) (int64, error)
}
