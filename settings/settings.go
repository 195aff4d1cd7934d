/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package settings

import (
	"context"
	"fmt"

	"github.com/yardimhane/casestore"
	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/storagemodels"
)

// Collection is the logical collection settings rows live in.
const Collection = "security_settings"

// DataType tags which variant a Value holds.
type DataType string

const (
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeObject  DataType = "object"
	TypeArray   DataType = "array"
)

// Value is a tagged union for a schema-light setting. Exactly the variant
// named by Type is meaningful; consumers switch on Type instead of trusting
// an untyped value.
type Value struct {
	Type DataType
	Str  string
	Num  float64
	Bool bool
	Obj  map[string]any
	Arr  []any
}

// String builds a string Value.
func String(v string) Value { return Value{Type: TypeString, Str: v} }

// Number builds a number Value.
func Number(v float64) Value { return Value{Type: TypeNumber, Num: v} }

// Boolean builds a boolean Value.
func Boolean(v bool) Value { return Value{Type: TypeBoolean, Bool: v} }

// Object builds an object Value.
func Object(v map[string]any) Value { return Value{Type: TypeObject, Obj: v} }

// Array builds an array Value.
func Array(v []any) Value { return Value{Type: TypeArray, Arr: v} }

// Interface returns the active variant as an untyped value for storage.
func (v Value) Interface() any {
	switch v.Type {
	case TypeString:
		return v.Str
	case TypeNumber:
		return v.Num
	case TypeBoolean:
		return v.Bool
	case TypeObject:
		return v.Obj
	case TypeArray:
		return v.Arr
	default:
		return nil
	}
}

// FromStored rebuilds a Value from a stored data_type tag and raw value.
// Numbers arrive as float64 or json-decoded variants; anything that does
// not match its declared tag is an invalid-input error.
func FromStored(dataType string, raw any) (Value, error) {
	switch DataType(dataType) {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, errors.NewValidationError("value", fmt.Sprintf("expected string, got %T", raw))
		}
		return String(s), nil
	case TypeNumber:
		switch n := raw.(type) {
		case float64:
			return Number(n), nil
		case int:
			return Number(float64(n)), nil
		case int64:
			return Number(float64(n)), nil
		case int32:
			return Number(float64(n)), nil
		}
		return Value{}, errors.NewValidationError("value", fmt.Sprintf("expected number, got %T", raw))
	case TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, errors.NewValidationError("value", fmt.Sprintf("expected boolean, got %T", raw))
		}
		return Boolean(b), nil
	case TypeObject:
		o, ok := raw.(map[string]any)
		if !ok {
			return Value{}, errors.NewValidationError("value", fmt.Sprintf("expected object, got %T", raw))
		}
		return Object(o), nil
	case TypeArray:
		a, ok := raw.([]any)
		if !ok {
			return Value{}, errors.NewValidationError("value", fmt.Sprintf("expected array, got %T", raw))
		}
		return Array(a), nil
	default:
		return Value{}, errors.NewValidationError("data_type", fmt.Sprintf("unknown data type %q", dataType))
	}
}

// Settings reads and writes category/key settings rows through the store's
// upsert primitive, so no call site re-implements check-existing-then-branch.
type Settings struct {
	store *casestore.Store
}

// New creates a Settings facade over a store.
func New(store *casestore.Store) *Settings {
	return &Settings{store: store}
}

// Upsert writes a setting, patching the existing row for (category, key) or
// inserting a fresh one.
func (s *Settings) Upsert(ctx context.Context, category, key string, value Value) error {
	keyFields := storagemodels.Record{
		"category": category,
		"key":      key,
	}
	data := storagemodels.Record{
		"data_type": string(value.Type),
		"value":     value.Interface(),
	}

	env, err := s.store.Upsert(ctx, Collection, keyFields, data)
	if err != nil {
		return err
	}
	if env.Failed() {
		return fmt.Errorf("upsert setting %s/%s: %s", category, key, *env.Error)
	}
	return nil
}

// Get reads a setting. A missing row returns ErrNotFound.
func (s *Settings) Get(ctx context.Context, category, key string) (Value, error) {
	params := &storagemodels.QueryParams{
		Limit:   1,
		Filters: map[string]any{"category": category, "key": key},
	}

	env, err := s.store.List(ctx, Collection, params)
	if err != nil {
		return Value{}, err
	}
	if env.Failed() {
		return Value{}, fmt.Errorf("get setting %s/%s: %s", category, key, *env.Error)
	}

	records := env.Records()
	if len(records) == 0 {
		return Value{}, errors.NewNotFoundError(Collection, category+"/"+key)
	}

	rec := records[0]
	dataType, _ := rec["data_type"].(string)
	return FromStored(dataType, rec["value"])
}
