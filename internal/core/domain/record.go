package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a syntactically valid identifier that resolves
	// to no stored record.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidID indicates an identifier that is not valid ObjectID hex.
	// Kept distinct from ErrNotFound so the API can answer 400 vs 404.
	ErrInvalidID = errors.New("invalid resource id")
	// ErrConflict indicates the store rejected a write, typically a
	// unique-index violation.
	ErrConflict = errors.New("resource conflict")
)

// Record carries the identity and timestamps shared by every entity.
// The identifier and both timestamps are assigned by the persistence
// layer and are never client-settable.
type Record struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

func (r *Record) RecordID() string { return r.ID }

func (r *Record) SetRecordID(id string) { r.ID = id }

// Stamp sets UpdatedAt and, on first persistence, CreatedAt.
func (r *Record) Stamp(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// Entity is satisfied by a pointer to any type embedding Record.
type Entity interface {
	RecordID() string
	SetRecordID(id string)
	Stamp(now time.Time)
}
