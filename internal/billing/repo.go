package billing

import (
	"context"

	"github.com/pathlight/courseware/internal/apperr"
)

// ErrNotFound carries the not-found kind so consumers outside this package
// (the sign-in purchaser fallback in particular) can tell a missing record
// from a store failure without importing billing's sentinel.
var ErrNotFound = apperr.NotFound("not found")

type OrderStore interface {
	Create(ctx context.Context, o Order) error
	GetBySessionID(ctx context.Context, sessionID string) (Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	// UpdateStatus applies from→to; it fails when the stored status is not
	// `from` or the transition is not permitted.
	UpdateStatus(ctx context.Context, id string, from, to OrderStatus) error
}

type PurchaserStore interface {
	Put(ctx context.Context, p Purchaser) error
	GetPurchaser(ctx context.Context, email string) (name string, err error)
}
