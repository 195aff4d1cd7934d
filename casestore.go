/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package casestore

import (
	"context"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/provider"
	"github.com/yardimhane/casestore/registry"
	"github.com/yardimhane/casestore/storagemodels"
)

// Store is the CRUD operation executor. It resolves logical collection names
// through the registry, runs the raw operation against the configured
// provider, stamps audit fields, and folds provider failures into response
// envelopes. Business bookkeeping lives here exactly once; providers only
// implement the raw operations.
//
// Configuration errors (unknown collection, missing provider) are returned
// as Go errors before any provider call: they indicate a deployment defect
// and must fail loudly instead of degrading into an envelope.
type Store struct {
	provider provider.Provider
	registry *registry.Registry
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithRegistry replaces the built-in collection registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Store) { s.registry = r }
}

// WithLogger sets the structured logger for provider failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the wall clock used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the primary key generator used on create.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates a Store over the given provider.
func NewStore(p provider.Provider, opts ...Option) *Store {
	s := &Store{
		provider: p,
		registry: registry.Default(),
		logger:   zap.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of records matching params, with the total match
// count in the envelope.
func (s *Store) List(ctx context.Context, logical string, params *storagemodels.QueryParams) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	records, total, err := s.provider.ListRaw(ctx, collectionID, params)
	if err != nil {
		s.logFailure("list", logical, "", params, err)
		return failureEnvelope(err), nil
	}
	return listEnvelope(records, total), nil
}

// Get fetches a single record by primary key. A missing record is not
// exceptional: the envelope carries nil data and nil error, and callers
// render it as "record not found". List results distinguish the empty
// page (an empty array) from this shape.
func (s *Store) Get(ctx context.Context, logical, id string) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	rec, err := s.provider.GetRaw(ctx, collectionID, id)
	if errors.IsNotFound(err) {
		return notFoundEnvelope(), nil
	}
	if err != nil {
		s.logFailure("get", logical, id, nil, err)
		return failureEnvelope(err), nil
	}
	return okEnvelope(rec), nil
}

// Create inserts a record, generating a primary key when the caller supplies
// none and stamping createdAt/updatedAt plus actor attribution from ctx.
func (s *Store) Create(ctx context.Context, logical string, data storagemodels.Record) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	rec := data.Clone()
	id, _ := rec["id"].(string)
	if id == "" {
		id = s.newID()
		rec["id"] = id
	}
	stamp := s.timestamp()
	rec["createdAt"] = stamp
	rec["updatedAt"] = stamp
	if actor, ok := ActorFrom(ctx); ok {
		rec["created_by"] = actor
	}

	created, err := s.provider.CreateRaw(ctx, collectionID, rec)
	if err != nil {
		s.logFailure("create", logical, id, nil, err)
		return failureEnvelope(err), nil
	}
	return okEnvelope(created), nil
}

// Update merges a partial patch into an existing record. Unspecified fields
// are left untouched. Updating a missing ID surfaces the provider error in
// the envelope; it is not silently ignored.
func (s *Store) Update(ctx context.Context, logical, id string, patch storagemodels.Record) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	merged := patch.Clone()
	delete(merged, "id")
	delete(merged, "createdAt")
	delete(merged, "created_by")
	merged["updatedAt"] = s.timestamp()
	if actor, ok := ActorFrom(ctx); ok {
		merged["updated_by"] = actor
	}

	updated, err := s.provider.UpdateRaw(ctx, collectionID, id, merged)
	if err != nil {
		s.logFailure("update", logical, id, nil, err)
		return failureEnvelope(err), nil
	}
	return okEnvelope(updated), nil
}

// Delete removes a record. Success is nil data and nil error. Deleting a
// missing ID surfaces the provider error; double delete is not idempotent.
func (s *Store) Delete(ctx context.Context, logical, id string) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	if err := s.provider.DeleteRaw(ctx, collectionID, id); err != nil {
		s.logFailure("delete", logical, id, nil, err)
		return failureEnvelope(err), nil
	}
	return notFoundEnvelope(), nil
}

// Count returns the number of matching records without transferring them.
func (s *Store) Count(ctx context.Context, logical string, params *storagemodels.QueryParams) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	total, err := s.provider.CountRaw(ctx, collectionID, params)
	if err != nil {
		s.logFailure("count", logical, "", params, err)
		return failureEnvelope(err), nil
	}
	return countEnvelope(total), nil
}

// Upsert patches the record whose fields match keyFields, inserting a fresh
// record when none matches. It is the single patch-or-insert primitive;
// call sites must not re-implement check-existing-then-branch around it.
func (s *Store) Upsert(ctx context.Context, logical string, keyFields, data storagemodels.Record) (*Envelope, error) {
	collectionID, err := s.resolve(logical)
	if err != nil {
		return nil, err
	}

	rec := data.Clone()
	if id, _ := rec["id"].(string); id == "" {
		rec["id"] = s.newID()
	}
	rec["updatedAt"] = s.timestamp()
	if actor, ok := ActorFrom(ctx); ok {
		rec["updated_by"] = actor
	}

	result, err := s.provider.UpsertRaw(ctx, collectionID, keyFields, rec)
	if err != nil {
		s.logFailure("upsert", logical, "", nil, err)
		return failureEnvelope(err), nil
	}
	return okEnvelope(result), nil
}

// Ping verifies the provider is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.provider == nil {
		return errors.NewProviderUnavailableError("", "no provider configured")
	}
	return s.provider.Ping(ctx)
}

// resolve checks the provider precondition and translates the logical name.
// Both failure modes are configuration errors and happen before any
// provider call.
func (s *Store) resolve(logical string) (string, error) {
	if s.provider == nil {
		return "", errors.NewProviderUnavailableError("", "no provider configured")
	}
	return s.registry.Resolve(s.provider.Name(), logical)
}

// timestamp returns the current wall-clock time as an ISO-8601 string.
func (s *Store) timestamp() string {
	return strfmt.DateTime(s.now().UTC()).String()
}

// logFailure records a provider failure with operation context. Record
// payloads are never logged; query parameters reduce to pagination numbers
// and filter field names so sensitive values stay out of the logs.
func (s *Store) logFailure(op, logical, id string, params *storagemodels.QueryParams, err error) {
	fields := []zap.Field{
		zap.String("collection", logical),
		zap.String("op", op),
		zap.Error(err),
	}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}
	if params != nil {
		fields = append(fields,
			zap.Int("limit", params.EffectiveLimit()),
			zap.Int("skip", params.Skip),
			zap.Bool("search", params.Search != ""),
		)
		if len(params.Filters) > 0 {
			names := make([]string, 0, len(params.Filters))
			for field := range params.Filters {
				names = append(names, field)
			}
			fields = append(fields, zap.String("filters", strings.Join(names, ",")))
		}
	}
	s.logger.Error("provider operation failed", fields...)
}
