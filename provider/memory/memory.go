/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

// Package memory provides an in-memory implementation of the Provider
// interface for testing and local development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/registry"
	"github.com/yardimhane/casestore/storagemodels"
)

// SearchField is the record field the search term is matched against.
const SearchField = "name"

// Provider is a map-backed implementation of provider.Provider. Records are
// kept per collection ID, keyed by their "id" field. All operations are
// guarded by a single RWMutex; list order is ascending by id so pagination
// is deterministic.
type Provider struct {
	mu          sync.RWMutex
	collections map[string]map[string]storagemodels.Record
	calls       int

	// Injected failures for executor tests.
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

// New creates an empty memory Provider.
func New() *Provider {
	return &Provider{
		collections: make(map[string]map[string]storagemodels.Record),
	}
}

// WithListError makes every ListRaw and CountRaw call fail with err.
func (p *Provider) WithListError(err error) *Provider {
	p.listErr = err
	return p
}

// WithGetError makes every GetRaw call fail with err.
func (p *Provider) WithGetError(err error) *Provider {
	p.getErr = err
	return p
}

// WithCreateError makes every CreateRaw call fail with err.
func (p *Provider) WithCreateError(err error) *Provider {
	p.createErr = err
	return p
}

// WithUpdateError makes every UpdateRaw call fail with err.
func (p *Provider) WithUpdateError(err error) *Provider {
	p.updateErr = err
	return p
}

// WithDeleteError makes every DeleteRaw call fail with err.
func (p *Provider) WithDeleteError(err error) *Provider {
	p.deleteErr = err
	return p
}

// Calls reports how many raw operations have reached the provider.
func (p *Provider) Calls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.calls
}

// Name implements provider.Provider.
func (p *Provider) Name() string {
	return registry.ProviderMemory
}

// Ping implements provider.Provider.
func (p *Provider) Ping(ctx context.Context) error {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return nil
}

// ListRaw implements provider.Provider.
func (p *Provider) ListRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) ([]storagemodels.Record, int64, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.listErr != nil {
		return nil, 0, p.listErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := p.match(collectionID, params)
	total := int64(len(matched))

	skip := 0
	if params != nil {
		skip = params.Skip
	}
	if skip > len(matched) {
		skip = len(matched)
	}
	matched = matched[skip:]

	limit := params.EffectiveLimit()
	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]storagemodels.Record, 0, len(matched))
	for _, rec := range matched {
		out = append(out, rec.Clone())
	}
	return out, total, nil
}

// GetRaw implements provider.Provider.
func (p *Provider) GetRaw(ctx context.Context, collectionID, id string) (storagemodels.Record, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.getErr != nil {
		return nil, p.getErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	rec, ok := p.collections[collectionID][id]
	if !ok {
		return nil, errors.NewNotFoundError(collectionID, id)
	}
	return rec.Clone(), nil
}

// CreateRaw implements provider.Provider.
func (p *Provider) CreateRaw(ctx context.Context, collectionID string, rec storagemodels.Record) (storagemodels.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.createErr != nil {
		return nil, p.createErr
	}

	id, _ := rec["id"].(string)
	if id == "" {
		return nil, errors.NewValidationError("id", "record is missing an id")
	}
	if _, exists := p.collections[collectionID][id]; exists {
		return nil, errors.NewAlreadyExistsError(collectionID, id)
	}

	if p.collections[collectionID] == nil {
		p.collections[collectionID] = make(map[string]storagemodels.Record)
	}
	p.collections[collectionID][id] = rec.Clone()
	return rec.Clone(), nil
}

// UpdateRaw implements provider.Provider.
func (p *Provider) UpdateRaw(ctx context.Context, collectionID, id string, patch storagemodels.Record) (storagemodels.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.updateErr != nil {
		return nil, p.updateErr
	}

	existing, ok := p.collections[collectionID][id]
	if !ok {
		return nil, errors.NewNotFoundError(collectionID, id)
	}

	merged := existing.Clone()
	for k, v := range patch {
		merged[k] = v
	}
	p.collections[collectionID][id] = merged
	return merged.Clone(), nil
}

// DeleteRaw implements provider.Provider.
func (p *Provider) DeleteRaw(ctx context.Context, collectionID, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.deleteErr != nil {
		return p.deleteErr
	}

	if _, ok := p.collections[collectionID][id]; !ok {
		return errors.NewNotFoundError(collectionID, id)
	}
	delete(p.collections[collectionID], id)
	return nil
}

// CountRaw implements provider.Provider.
func (p *Provider) CountRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) (int64, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.listErr != nil {
		return 0, p.listErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return int64(len(p.match(collectionID, params))), nil
}

// UpsertRaw implements provider.Provider.
func (p *Provider) UpsertRaw(ctx context.Context, collectionID string, keyFields, rec storagemodels.Record) (storagemodels.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	for id, existing := range p.collections[collectionID] {
		if !matchesFields(existing, keyFields) {
			continue
		}
		merged := existing.Clone()
		for k, v := range rec {
			if k == "id" {
				continue
			}
			merged[k] = v
		}
		p.collections[collectionID][id] = merged
		return merged.Clone(), nil
	}

	fresh := rec.Clone()
	for k, v := range keyFields {
		fresh[k] = v
	}
	id, _ := fresh["id"].(string)
	if id == "" {
		return nil, errors.NewValidationError("id", "record is missing an id")
	}
	if p.collections[collectionID] == nil {
		p.collections[collectionID] = make(map[string]storagemodels.Record)
	}
	p.collections[collectionID][id] = fresh
	return fresh.Clone(), nil
}

// match returns the records matching params, sorted ascending by id.
// Callers must hold at least a read lock.
func (p *Provider) match(collectionID string, params *storagemodels.QueryParams) []storagemodels.Record {
	col := p.collections[collectionID]

	ids := make([]string, 0, len(col))
	for id := range col {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []storagemodels.Record
	for _, id := range ids {
		rec := col[id]
		if params != nil {
			if !matchesFields(rec, params.Filters) {
				continue
			}
			if params.Search != "" && !matchesSearch(rec, params.Search) {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// matchesFields checks equality filters against a record. Comparison is on
// string form so transport-level "true"/"3" match stored bools and numbers.
func matchesFields(rec storagemodels.Record, fields map[string]any) bool {
	for k, want := range fields {
		got, ok := rec[k]
		if !ok {
			return false
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func matchesSearch(rec storagemodels.Record, term string) bool {
	val, ok := rec[SearchField].(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(val), strings.ToLower(term))
}
