/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package mongo

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/registry"
	"github.com/yardimhane/casestore/storagemodels"
)

// Provider implements provider.Provider using MongoDB. Each logical
// collection maps to one MongoDB collection inside a single database;
// records keep their primary key in "_id" on the wire and expose it as
// "id" to the rest of the system.
type Provider struct {
	client   *driver.Client
	database string
}

// New constructs a Provider from an already-connected client.
func New(client *driver.Client, database string) *Provider {
	return &Provider{client: client, database: database}
}

// FromEnv connects a Provider from MONGO_URI and MONGO_DATABASE.
func FromEnv(ctx context.Context) (*Provider, error) {
	uri := os.Getenv("MONGO_URI")
	database := os.Getenv("MONGO_DATABASE")
	if uri == "" || database == "" {
		return nil, errors.NewProviderUnavailableError(registry.ProviderMongo, "MONGO_URI and MONGO_DATABASE must be set")
	}

	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return New(client, database), nil
}

// Name implements provider.Provider.
func (p *Provider) Name() string {
	return registry.ProviderMongo
}

// Ping implements provider.Provider.
func (p *Provider) Ping(ctx context.Context) error {
	if err := p.available(); err != nil {
		return err
	}
	if err := p.client.Ping(ctx, nil); err != nil {
		return errors.NewProviderUnavailableError(registry.ProviderMongo, err.Error())
	}
	return nil
}

// ListRaw implements provider.Provider.
func (p *Provider) ListRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) ([]storagemodels.Record, int64, error) {
	if err := p.available(); err != nil {
		return nil, 0, err
	}

	col := p.collection(collectionID)
	filter := BuildFilter(params)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count for list failed: %w", err)
	}

	cursor, err := col.Find(ctx, filter, BuildFindOptions(params))
	if err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]storagemodels.Record, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode document: %w", err)
		}
		records = append(records, fromDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	return records, total, nil
}

// GetRaw implements provider.Provider.
func (p *Provider) GetRaw(ctx context.Context, collectionID, id string) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	var doc bson.M
	err := p.collection(collectionID).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == driver.ErrNoDocuments {
		return nil, errors.NewNotFoundError(collectionID, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find one failed: %w", err)
	}
	return fromDocument(doc), nil
}

// CreateRaw implements provider.Provider.
func (p *Provider) CreateRaw(ctx context.Context, collectionID string, rec storagemodels.Record) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	doc := toDocument(rec)
	if _, err := p.collection(collectionID).InsertOne(ctx, doc); err != nil {
		if driver.IsDuplicateKeyError(err) {
			id, _ := rec["id"].(string)
			return nil, errors.NewAlreadyExistsError(collectionID, id)
		}
		return nil, fmt.Errorf("insert failed: %w", err)
	}
	return rec.Clone(), nil
}

// UpdateRaw implements provider.Provider.
func (p *Provider) UpdateRaw(ctx context.Context, collectionID, id string, patch storagemodels.Record) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	set := bson.M{}
	for k, v := range patch {
		if k == "id" || k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return nil, errors.NewValidationError("", "empty patch")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bson.M
	err := p.collection(collectionID).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&doc)
	if err == driver.ErrNoDocuments {
		return nil, errors.NewNotFoundError(collectionID, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return fromDocument(doc), nil
}

// DeleteRaw implements provider.Provider.
func (p *Provider) DeleteRaw(ctx context.Context, collectionID, id string) error {
	if err := p.available(); err != nil {
		return err
	}

	res, err := p.collection(collectionID).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.NewNotFoundError(collectionID, id)
	}
	return nil
}

// CountRaw implements provider.Provider.
func (p *Provider) CountRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) (int64, error) {
	if err := p.available(); err != nil {
		return 0, err
	}

	total, err := p.collection(collectionID).CountDocuments(ctx, BuildFilter(params))
	if err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return total, nil
}

// UpsertRaw implements provider.Provider. The patch-or-insert is a single
// FindOneAndUpdate with upsert, so two concurrent first writes cannot both
// insert.
func (p *Provider) UpsertRaw(ctx context.Context, collectionID string, keyFields, rec storagemodels.Record) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	filter := bson.M{}
	for k, v := range keyFields {
		filter[k] = v
	}

	set := bson.M{}
	for k, v := range rec {
		if k == "id" || k == "_id" {
			continue
		}
		set[k] = v
	}
	for k, v := range keyFields {
		set[k] = v
	}

	insertID, _ := rec["id"].(string)
	if insertID == "" {
		insertID = uuid.NewString()
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": insertID},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc bson.M
	if err := p.collection(collectionID).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("upsert failed: %w", err)
	}
	return fromDocument(doc), nil
}

func (p *Provider) available() error {
	if p == nil || p.client == nil {
		return errors.NewProviderUnavailableError(registry.ProviderMongo, "client not initialized")
	}
	return nil
}

func (p *Provider) collection(collectionID string) *driver.Collection {
	return p.client.Database(p.database).Collection(collectionID)
}

// toDocument converts a record into its wire shape, moving "id" to "_id".
func toDocument(rec storagemodels.Record) bson.M {
	doc := make(bson.M, len(rec))
	for k, v := range rec {
		if k == "id" {
			doc["_id"] = v
			continue
		}
		doc[k] = v
	}
	return doc
}

// fromDocument converts a wire document back into a record, exposing "_id"
// as "id".
func fromDocument(doc bson.M) storagemodels.Record {
	rec := make(storagemodels.Record, len(doc))
	for k, v := range doc {
		if k == "_id" {
			rec["id"] = v
			continue
		}
		rec[k] = v
	}
	return rec
}
