package progress

import "context"

// Store persists per-user module progress. Get returns (nil, nil) when no
// record exists; callers treat that as "no progress yet", not an error.
type Store interface {
	Get(ctx context.Context, userID string, moduleID int) (*ModuleProgress, error)
	List(ctx context.Context, userID string) ([]ModuleProgress, error)
	Put(ctx context.Context, userID string, p ModuleProgress) error
}
