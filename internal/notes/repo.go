package notes

import "context"

// Store persists per-user notes in insertion order. Update and Delete are
// no-ops when the id is absent; "not found" is not an error here.
type Store interface {
	Append(ctx context.Context, userID string, n Note) error
	Update(ctx context.Context, userID, id string, mutate func(*Note)) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]Note, error)
}
