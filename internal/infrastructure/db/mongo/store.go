package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fieldops/construction-api/internal/core/domain"
)

// Store is the generic collection adapter. One instance serves one
// entity collection; P is the pointer form of the entity so the store
// can assign identifiers and timestamps. All store-native failures are
// translated into the domain sentinels at this boundary:
//
//	malformed ObjectID hex  -> domain.ErrInvalidID
//	mongo.ErrNoDocuments    -> domain.ErrNotFound
//	duplicate key           -> domain.ErrConflict
type Store[T any, P interface {
	*T
	domain.Entity
}] struct {
	col *mongo.Collection
}

func NewStore[T any, P interface {
	*T
	domain.Entity
}](db *mongo.Database, collection string) *Store[T, P] {
	return &Store[T, P]{col: db.Collection(collection)}
}

// EnsureIndexes creates a unique index per listed field. Uniqueness
// conflicts under concurrent inserts are arbitrated solely by these
// indexes; the application never pre-checks.
func (s *Store[T, P]) EnsureIndexes(ctx context.Context, unique []string) error {
	if len(unique) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := make([]mongo.IndexModel, 0, len(unique))
	for _, field := range unique {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	}
	_, err := s.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// Insert persists a new record, assigning its identifier and timestamps.
func (s *Store[T, P]) Insert(ctx context.Context, rec *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	P(rec).SetRecordID(primitive.NewObjectID().Hex())
	P(rec).Stamp(time.Now().UTC())

	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (s *Store[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec T
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find: %w", err)
	}
	return &rec, nil
}

// FindAll returns the whole collection in insertion order.
func (s *Store[T, P]) FindAll(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	var recs []*T
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode all: %w", err)
	}
	return recs, nil
}

// Replace overwrites the record wholesale, bumping its modification
// timestamp. The identifier in the path wins over anything in rec.
func (s *Store[T, P]) Replace(ctx context.Context, id string, rec *T) error {
	if err := checkID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	P(rec).SetRecordID(id)
	P(rec).Stamp(time.Now().UTC())

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store[T, P]) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// checkID distinguishes a malformed identifier (400) from a genuinely
// absent record (404) before any store round trip.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}
