package ports

import "context"

// Repository is the persistence boundary for one entity collection.
// Implementations translate store-native failures into the domain
// sentinels: domain.ErrInvalidID for a malformed identifier,
// domain.ErrNotFound for an absent record, domain.ErrConflict for a
// unique-index rejection. Anything else passes through untouched.
type Repository[T any] interface {
	// Insert persists a new record, assigning its identifier and
	// timestamps before the write.
	Insert(ctx context.Context, rec *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	// FindAll returns the whole collection in insertion order.
	FindAll(ctx context.Context) ([]*T, error)
	// Replace overwrites the record with the given id wholesale.
	Replace(ctx context.Context, id string, rec *T) error
	Delete(ctx context.Context, id string) error
}
