/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package settings

import (
	"context"
	"testing"

	"github.com/yardimhane/casestore"
	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/provider/memory"
)

func newTestSettings() *Settings {
	return New(casestore.NewStore(memory.New()))
}

func TestUpsertThenGet(t *testing.T) {
	s := newTestSettings()
	ctx := context.Background()

	if err := s.Upsert(ctx, "password_policy", "min_length", Number(8)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	v, err := s.Get(ctx, "password_policy", "min_length")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v.Type != TypeNumber || v.Num != 8 {
		t.Errorf("Expected number 8, got %+v", v)
	}
}

func TestUpsertOverwritesInPlace(t *testing.T) {
	s := newTestSettings()
	ctx := context.Background()

	if err := s.Upsert(ctx, "session", "timeout_minutes", Number(30)); err != nil {
		t.Fatal(err)
	}
	if err := s.Upsert(ctx, "session", "timeout_minutes", Number(60)); err != nil {
		t.Fatal(err)
	}

	v, err := s.Get(ctx, "session", "timeout_minutes")
	if err != nil {
		t.Fatal(err)
	}
	if v.Num != 60 {
		t.Errorf("Expected patched value 60, got %v", v.Num)
	}
}

func TestKeysAreScopedByCategory(t *testing.T) {
	s := newTestSettings()
	ctx := context.Background()

	if err := s.Upsert(ctx, "two_factor", "enabled", Boolean(true)); err != nil {
		t.Fatal(err)
	}
	if err := s.Upsert(ctx, "registration", "enabled", Boolean(false)); err != nil {
		t.Fatal(err)
	}

	v, err := s.Get(ctx, "two_factor", "enabled")
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != TypeBoolean || !v.Bool {
		t.Errorf("Expected two_factor/enabled true, got %+v", v)
	}

	v, err = s.Get(ctx, "registration", "enabled")
	if err != nil {
		t.Fatal(err)
	}
	if v.Bool {
		t.Error("Expected registration/enabled false")
	}
}

func TestGetMissingSetting(t *testing.T) {
	s := newTestSettings()

	_, err := s.Get(context.Background(), "password_policy", "nope")
	if !errors.IsNotFound(err) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAllVariants(t *testing.T) {
	s := newTestSettings()
	ctx := context.Background()

	cases := []struct {
		key   string
		value Value
	}{
		{"greeting", String("merhaba")},
		{"max_attempts", Number(5)},
		{"lockout", Boolean(true)},
		{"complexity", Object(map[string]any{"upper": true, "digits": true})},
		{"allowed_domains", Array([]any{"yardimhane.org"})},
	}

	for _, tc := range cases {
		if err := s.Upsert(ctx, "misc", tc.key, tc.value); err != nil {
			t.Fatalf("Upsert %s failed: %v", tc.key, err)
		}
		v, err := s.Get(ctx, "misc", tc.key)
		if err != nil {
			t.Fatalf("Get %s failed: %v", tc.key, err)
		}
		if v.Type != tc.value.Type {
			t.Errorf("%s: expected type %s, got %s", tc.key, tc.value.Type, v.Type)
		}
	}
}

func TestFromStoredRejectsMismatchedTag(t *testing.T) {
	if _, err := FromStored("number", "not a number"); !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if _, err := FromStored("datetime", "x"); !errors.IsValidationError(err) {
		t.Errorf("Expected validation error for unknown tag, got %v", err)
	}
}

func TestFromStoredAcceptsIntegerNumbers(t *testing.T) {
	v, err := FromStored("number", 8)
	if err != nil {
		t.Fatal(err)
	}
	if v.Num != 8 {
		t.Errorf("Expected 8, got %v", v.Num)
	}
}
