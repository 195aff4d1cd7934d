/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package provider

import (
	"context"

	"github.com/yardimhane/casestore/storagemodels"
)

// Provider is the narrow raw-operation capability a backend must implement.
// Business bookkeeping (timestamp stamping, actor attribution, error logging,
// envelope shaping) lives above this boundary, in the operation executor, so
// adding a backend never duplicates it.
//
// Every method takes the provider-specific collection ID, already resolved
// through the registry. GetRaw, UpdateRaw and DeleteRaw report a missing
// record with errors.ErrNotFound; a provider whose client is missing or
// unreachable reports errors.ErrProviderUnavailable before any remote call.
type Provider interface {
	// Name identifies the provider for registry resolution and logging.
	Name() string

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// ListRaw returns one page of matching records and the total match count.
	ListRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) ([]storagemodels.Record, int64, error)

	// GetRaw fetches a single record by primary key.
	GetRaw(ctx context.Context, collectionID, id string) (storagemodels.Record, error)

	// CreateRaw inserts a record. The record carries its "id" field.
	CreateRaw(ctx context.Context, collectionID string, rec storagemodels.Record) (storagemodels.Record, error)

	// UpdateRaw merges a partial patch into an existing record and returns
	// the updated record. Unspecified fields are left untouched.
	UpdateRaw(ctx context.Context, collectionID, id string, patch storagemodels.Record) (storagemodels.Record, error)

	// DeleteRaw removes a record by primary key.
	DeleteRaw(ctx context.Context, collectionID, id string) error

	// CountRaw returns the number of records matching the query without
	// materializing them.
	CountRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) (int64, error)

	// UpsertRaw patches the record whose fields match keyFields, inserting a
	// fresh record when none matches. Returns the resulting record.
	UpsertRaw(ctx context.Context, collectionID string, keyFields, rec storagemodels.Record) (storagemodels.Record, error)
}
