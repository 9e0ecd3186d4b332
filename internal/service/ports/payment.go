package ports

import (
	"context"

	"github.com/HaliTran/wondertix/internal/domain"
)

// PaymentProvider is the interface to the external payment collaborator.
type PaymentProvider interface {
	// CreateCheckoutSession returns the external session id the customer
	// completes payment against.
	CreateCheckoutSession(ctx context.Context, params domain.PaymentSessionParams) (string, error)
	// ExpireSession invalidates a previously created session.
	ExpireSession(ctx context.Context, sessionID string) error
}
