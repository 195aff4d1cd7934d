/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package storagemodels

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size assumed when the caller supplies none.
	DefaultLimit = 20
	// MaxLimit caps any caller-supplied page size.
	MaxLimit = 100
)

// Record is a schema-light document as stored in a collection.
// Field names are snake_case strings; timestamps are ISO-8601 strings.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// QueryParams defines normalized parameters for a list or count operation.
type QueryParams struct {
	// Limit is the maximum number of records to return. Zero means DefaultLimit.
	Limit int
	// Skip is the number of records to skip before the first returned one.
	Skip int
	// Search is a free-text term matched against the designated searchable field.
	Search string
	// Filters holds equality constraints, field name to required value.
	Filters map[string]any
}

// EffectiveLimit returns the limit that applies after defaulting and clamping.
func (p *QueryParams) EffectiveLimit() int {
	if p == nil || p.Limit <= 0 {
		return DefaultLimit
	}
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

// Filter returns params with an added equality filter, for call-site chaining.
func (p QueryParams) Filter(field string, value any) QueryParams {
	filters := make(map[string]any, len(p.Filters)+1)
	for k, v := range p.Filters {
		filters[k] = v
	}
	filters[field] = value
	p.Filters = filters
	return p
}

// reservedKeys are transport keys consumed by the normalizer itself;
// every other key becomes an equality filter.
var reservedKeys = map[string]bool{
	"limit":  true,
	"skip":   true,
	"page":   true,
	"search": true,
}

// ParamsFromValues parses a transport-level parameter bag (URL query string)
// into QueryParams. The transform is pure and never fails: malformed numeric
// input is treated as absent, limit is clamped to MaxLimit, and page is only
// consulted when skip was not given, as skip = (page-1) * effective limit.
func ParamsFromValues(values url.Values) *QueryParams {
	p := &QueryParams{}

	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			if n > MaxLimit {
				n = MaxLimit
			}
			p.Limit = n
		}
	}

	haveSkip := false
	if raw := values.Get("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			p.Skip = n
			haveSkip = true
		}
	}

	if raw := values.Get("page"); raw != "" && !haveSkip {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			p.Skip = (n - 1) * p.EffectiveLimit()
		}
	}

	p.Search = values.Get("search")

	for key := range values {
		if reservedKeys[key] {
			continue
		}
		val := values.Get(key)
		if val == "" {
			continue
		}
		if p.Filters == nil {
			p.Filters = make(map[string]any)
		}
		p.Filters[key] = val
	}

	return p
}
