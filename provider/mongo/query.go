/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yardimhane/casestore/storagemodels"
)

// SearchField is the document field the search term is matched against.
// Collections declare a case-insensitive index on it.
const SearchField = "name"

// BuildFilter translates normalized query parameters into a MongoDB filter
// document. Equality filters map one-to-one; the search term becomes a
// case-insensitive substring match on SearchField. An empty parameter set
// produces an empty filter (full collection).
func BuildFilter(params *storagemodels.QueryParams) bson.M {
	filter := bson.M{}
	if params == nil {
		return filter
	}

	for field, value := range params.Filters {
		if field == "id" {
			filter["_id"] = value
			continue
		}
		filter[field] = value
	}

	if params.Search != "" {
		filter[SearchField] = bson.M{
			"$regex":   regexp.QuoteMeta(params.Search),
			"$options": "i",
		}
	}

	return filter
}

// BuildFindOptions translates pagination parameters into find options.
// Results are sorted by _id so pages are stable across calls.
func BuildFindOptions(params *storagemodels.QueryParams) *options.FindOptions {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(params.EffectiveLimit()))

	if params != nil && params.Skip > 0 {
		opts.SetSkip(int64(params.Skip))
	}
	return opts
}
