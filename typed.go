/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package casestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yardimhane/casestore/storagemodels"
)

// Collection provides a type-safe view over one logical collection for
// callers with a concrete document struct. Records decode through their
// JSON field tags, so struct fields follow the stored snake_case names.
type Collection[T any] struct {
	store   *Store
	logical string
}

// NewCollection creates a typed view of a logical collection.
func NewCollection[T any](store *Store, logical string) *Collection[T] {
	return &Collection[T]{store: store, logical: logical}
}

// List returns one page of decoded documents and the total match count.
func (c *Collection[T]) List(ctx context.Context, params *storagemodels.QueryParams) ([]T, int64, error) {
	env, err := c.store.List(ctx, c.logical, params)
	if err != nil {
		return nil, 0, err
	}
	if env.Failed() {
		return nil, 0, fmt.Errorf("list %s: %s", c.logical, *env.Error)
	}

	records := env.Records()
	out := make([]T, 0, len(records))
	for _, rec := range records {
		doc, err := decodeRecord[T](rec)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *doc)
	}

	var total int64
	if env.Total != nil {
		total = *env.Total
	}
	return out, total, nil
}

// Get fetches one document by primary key. A missing record returns nil, nil.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	env, err := c.store.Get(ctx, c.logical, id)
	if err != nil {
		return nil, err
	}
	if env.Failed() {
		return nil, fmt.Errorf("get %s/%s: %s", c.logical, id, *env.Error)
	}
	if env.Data == nil {
		return nil, nil
	}
	return decodeRecord[T](env.Record())
}

// Create inserts a document and returns it with its assigned primary key
// and stamped audit fields.
func (c *Collection[T]) Create(ctx context.Context, doc T) (*T, error) {
	rec, err := encodeRecord(doc)
	if err != nil {
		return nil, err
	}

	env, err := c.store.Create(ctx, c.logical, rec)
	if err != nil {
		return nil, err
	}
	if env.Failed() {
		return nil, fmt.Errorf("create %s: %s", c.logical, *env.Error)
	}
	return decodeRecord[T](env.Record())
}

// Update merges a partial patch into an existing document.
func (c *Collection[T]) Update(ctx context.Context, id string, patch storagemodels.Record) (*T, error) {
	env, err := c.store.Update(ctx, c.logical, id, patch)
	if err != nil {
		return nil, err
	}
	if env.Failed() {
		return nil, fmt.Errorf("update %s/%s: %s", c.logical, id, *env.Error)
	}
	return decodeRecord[T](env.Record())
}

// Delete removes a document by primary key.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	env, err := c.store.Delete(ctx, c.logical, id)
	if err != nil {
		return err
	}
	if env.Failed() {
		return fmt.Errorf("delete %s/%s: %s", c.logical, id, *env.Error)
	}
	return nil
}

func decodeRecord[T any](rec storagemodels.Record) (*T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return doc, nil
}

func encodeRecord[T any](doc T) (storagemodels.Record, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var rec storagemodels.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return rec, nil
}
