package ports

import "context"

// Resource defines the use-case operations every entity exposes over
// HTTP. One generic implementation serves all entities; the transport
// layer binds per-entity request codecs around it.
type Resource[T any] interface {
	// Create normalizes, validates and persists a candidate record.
	// A validation.Violations error means nothing was persisted.
	Create(ctx context.Context, rec *T) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	// Update loads the record, lets apply merge incoming fields into
	// it, then re-validates the merged record before replacing it.
	Update(ctx context.Context, id string, apply func(*T) error) (*T, error)
	Delete(ctx context.Context, id string) error
}

// PasswordHasher is the one-way transform applied to secret fields
// before they reach the store.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}
