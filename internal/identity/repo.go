package identity

import (
	"context"
	"errors"
)

// ErrNotFound marks a missing user or profile; ErrDuplicateEmail marks the
// unique-email constraint firing. The email uniqueness constraint at the
// storage layer is the serialization point for concurrent provisioning.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Store interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)

	CreateProfile(ctx context.Context, p Profile) error
	GetProfile(ctx context.Context, userID string) (Profile, error)
	UpdateProfile(ctx context.Context, p Profile) error
}

// PurchaserLookup is the side-channel record of paying customers, written
// by the webhook flow. Sign-in falls back to it when an entitled email has
// no identity yet. A missing record must be reported as ErrNotFound or an
// error classified not-found; any other error is treated as a lookup
// failure, not as proof the caller never paid.
type PurchaserLookup interface {
	GetPurchaser(ctx context.Context, email string) (name string, err error)
}
