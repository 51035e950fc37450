package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/fieldops/construction-api/internal/api/metrics"
	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/ports"
	"github.com/fieldops/construction-api/internal/core/schema"
	"github.com/fieldops/construction-api/internal/core/validation"
)

// Resource is the generic CRUD service. One instance per entity,
// parameterized entirely by its schema.Definition; it owns the
// normalize → validate → persist pipeline and performs exactly one
// store mutation per mutating call.
type Resource[T any] struct {
	def    schema.Definition[T]
	repo   ports.Repository[T]
	logger zerolog.Logger
}

func NewResource[T any](def schema.Definition[T], repo ports.Repository[T], logger zerolog.Logger) *Resource[T] {
	return &Resource[T]{
		def:    def,
		repo:   repo,
		logger: logger.With().Str("resource", def.Name).Logger(),
	}
}

// Create normalizes, validates and persists a candidate record. On a
// validation failure nothing is persisted and the Violations travel
// back as the error.
func (s *Resource[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if s.def.Normalize != nil {
		s.def.Normalize(rec)
	}
	if v := s.def.Validate(rec); v != nil {
		s.countViolations(v)
		return nil, v
	}
	if s.def.Prepare != nil {
		if err := s.def.Prepare(ctx, rec); err != nil {
			s.logger.Error().Err(err).Msg("prepare failed")
			return nil, err
		}
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		s.countStoreError("insert", err)
		s.logger.Error().Err(err).Msg("insert failed")
		return nil, err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(s.def.Name).Inc()
	s.logger.Info().Msg("record created")
	return s.sanitized(rec), nil
}

func (s *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.countStoreError("find", err)
		return nil, err
	}
	return s.sanitized(rec), nil
}

func (s *Resource[T]) List(ctx context.Context) ([]*T, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.countStoreError("list", err)
		return nil, err
	}
	for _, rec := range recs {
		s.sanitized(rec)
	}
	return recs, nil
}

// Update merges incoming fields into the stored record via apply, then
// runs the merged record through the same normalize/validate gate as
// Create before replacing it.
func (s *Resource[T]) Update(ctx context.Context, id string, apply func(*T) error) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.countStoreError("find", err)
		return nil, err
	}
	if err := apply(rec); err != nil {
		return nil, err
	}
	if s.def.Normalize != nil {
		s.def.Normalize(rec)
	}
	if v := s.def.Validate(rec); v != nil {
		s.countViolations(v)
		return nil, v
	}
	if s.def.Prepare != nil {
		if err := s.def.Prepare(ctx, rec); err != nil {
			s.logger.Error().Err(err).Msg("prepare failed")
			return nil, err
		}
	}
	if err := s.repo.Replace(ctx, id, rec); err != nil {
		s.countStoreError("replace", err)
		s.logger.Error().Err(err).Str("id", id).Msg("replace failed")
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("record updated")
	return s.sanitized(rec), nil
}

func (s *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.countStoreError("delete", err)
		return err
	}
	s.logger.Info().Str("id", id).Msg("record deleted")
	return nil
}

func (s *Resource[T]) sanitized(rec *T) *T {
	if s.def.Sanitize != nil {
		s.def.Sanitize(rec)
	}
	return rec
}

func (s *Resource[T]) countViolations(v validation.Violations) {
	for field := range v {
		metrics.ValidationFailuresTotal.WithLabelValues(s.def.Name, field).Inc()
	}
}

// countStoreError counts failures the store itself produced. NotFound
// and InvalidID are caller errors, not store health signals.
func (s *Resource[T]) countStoreError(op string, err error) {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidID) {
		return
	}
	metrics.StoreErrorsTotal.WithLabelValues(s.def.Name, op).Inc()
}
