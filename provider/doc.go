/*
Package provider defines the raw backend boundary of the casestore
data-access layer.

The main interface is Provider, the five canonical operations plus count and
upsert in raw form:

	type Provider interface {
	    Name() string
	    Ping(ctx context.Context) error
	    ListRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) ([]storagemodels.Record, int64, error)
	    GetRaw(ctx context.Context, collectionID, id string) (storagemodels.Record, error)
	    CreateRaw(ctx context.Context, collectionID string, rec storagemodels.Record) (storagemodels.Record, error)
	    UpdateRaw(ctx context.Context, collectionID, id string, patch storagemodels.Record) (storagemodels.Record, error)
	    DeleteRaw(ctx context.Context, collectionID, id string) error
	    CountRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) (int64, error)
	    UpsertRaw(ctx context.Context, collectionID string, keyFields, rec storagemodels.Record) (storagemodels.Record, error)
	}

Implementations:
  - mongo: MongoDB implementation, one collection per logical collection
  - ddb: DynamoDB implementation using a shared single table
  - memory: in-memory implementation for tests and local development

Providers translate QueryParams into their native filter expressions and
normalize their native record shapes into storagemodels.Record, so every
backend presents identically to the operation executor.
*/
package provider
