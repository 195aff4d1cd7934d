/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package casestore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/provider/memory"
	"github.com/yardimhane/casestore/storagemodels"
)

// sequentialIDs returns an ID generator producing id-000, id-001, ...
// so list order and pagination are deterministic in tests.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		id := fmt.Sprintf("id-%03d", n)
		n++
		return id
	}
}

func newTestStore(opts ...Option) (*Store, *memory.Provider) {
	prov := memory.New()
	base := []Option{WithIDGenerator(sequentialIDs())}
	return NewStore(prov, append(base, opts...)...), prov
}

func TestCreateGetRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := WithActor(context.Background(), "user-7")

	input := storagemodels.Record{"name": "Ahmet Yılmaz", "city": "İstanbul"}
	env, err := store.Create(ctx, "beneficiaries", input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if env.Failed() {
		t.Fatalf("Create envelope carries error: %s", *env.Error)
	}

	created := env.Record()
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("Created record has no assigned id")
	}
	if created["createdAt"] == nil || created["updatedAt"] == nil {
		t.Errorf("Expected stamped timestamps, got %v", created)
	}
	if created["created_by"] != "user-7" {
		t.Errorf("Expected actor attribution user-7, got %v", created["created_by"])
	}

	env, err = store.Get(ctx, "beneficiaries", id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got := env.Record()

	// Every input field must survive the round trip.
	for k, v := range input {
		if got[k] != v {
			t.Errorf("Field %q lost in round trip: want %v, got %v", k, v, got[k])
		}
	}
}

func TestCreateDoesNotMutateInput(t *testing.T) {
	store, _ := newTestStore()

	input := storagemodels.Record{"name": "Ahmet"}
	if _, err := store.Create(context.Background(), "beneficiaries", input); err != nil {
		t.Fatal(err)
	}

	if _, ok := input["id"]; ok {
		t.Error("Create must not write the generated id back into the caller's map")
	}
	if _, ok := input["createdAt"]; ok {
		t.Error("Create must not write stamps into the caller's map")
	}
}

func TestPartialUpdate(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := t0
	store, _ := newTestStore(WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	env, err := store.Create(ctx, "beneficiaries", storagemodels.Record{
		"name": "Ahmet", "city": "İstanbul", "family_size": 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	created := env.Record()
	id := created["id"].(string)
	createdAt := created["createdAt"]

	clock = t0.Add(time.Hour)
	ctx = WithActor(ctx, "user-9")
	env, err = store.Update(ctx, "beneficiaries", id, storagemodels.Record{"city": "Bursa"})
	if err != nil {
		t.Fatal(err)
	}
	if env.Failed() {
		t.Fatalf("Update envelope carries error: %s", *env.Error)
	}

	updated := env.Record()
	if updated["city"] != "Bursa" {
		t.Errorf("Expected patched city Bursa, got %v", updated["city"])
	}
	if updated["name"] != "Ahmet" || updated["family_size"] != 3 {
		t.Errorf("Untouched fields changed: %v", updated)
	}
	if updated["createdAt"] != createdAt {
		t.Errorf("createdAt must survive updates: %v != %v", updated["createdAt"], createdAt)
	}
	if updated["updatedAt"] == createdAt {
		t.Error("updatedAt must be refreshed by update")
	}
	if updated["updated_by"] != "user-9" {
		t.Errorf("Expected updated_by user-9, got %v", updated["updated_by"])
	}
}

func TestUpdatePatchCannotTouchProvenance(t *testing.T) {
	store, _ := newTestStore()
	ctx := WithActor(context.Background(), "creator")

	env, _ := store.Create(ctx, "beneficiaries", storagemodels.Record{"name": "Ahmet"})
	id := env.Record()["id"].(string)

	env, err := store.Update(ctx, "beneficiaries", id, storagemodels.Record{
		"id":         "spoofed",
		"createdAt":  "1999-01-01T00:00:00.000Z",
		"created_by": "impostor",
		"city":       "Bursa",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated := env.Record()
	if updated["id"] != id {
		t.Errorf("Patch must not rewrite the primary key, got %v", updated["id"])
	}
	if updated["created_by"] != "creator" {
		t.Errorf("Patch must not rewrite created_by, got %v", updated["created_by"])
	}
	if updated["createdAt"] == "1999-01-01T00:00:00.000Z" {
		t.Error("Patch must not rewrite createdAt")
	}
}

func TestUpdateMissingRecordSurfacesError(t *testing.T) {
	store, _ := newTestStore()

	env, err := store.Update(context.Background(), "beneficiaries", "nope", storagemodels.Record{"city": "Bursa"})
	if err != nil {
		t.Fatalf("Missing record is a provider error, not a config error: %v", err)
	}
	if !env.Failed() {
		t.Error("Updating a missing ID must surface an error envelope")
	}
}

func TestGetNotFound(t *testing.T) {
	store, _ := newTestStore()

	env, err := store.Get(context.Background(), "beneficiaries", "nope")
	if err != nil {
		t.Fatalf("Not-found must not be a config error: %v", err)
	}
	if env.Failed() {
		t.Errorf("Not-found must not carry an error message, got %s", *env.Error)
	}
	if env.Data != nil {
		t.Errorf("Not-found must carry nil data, got %v", env.Data)
	}
}

func TestIdempotentRead(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	env, _ := store.Create(ctx, "beneficiaries", storagemodels.Record{"name": "Ahmet"})
	id := env.Record()["id"].(string)

	first, err := store.Get(ctx, "beneficiaries", id)
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Get(ctx, "beneficiaries", id)
	if err != nil {
		t.Fatal(err)
	}

	a, b := first.Record(), second.Record()
	if len(a) != len(b) {
		t.Fatalf("Repeated reads differ: %v vs %v", a, b)
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("Repeated reads differ at %q: %v vs %v", k, v, b[k])
		}
	}
}

func TestDeleteThenGet(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	env, _ := store.Create(ctx, "beneficiaries", storagemodels.Record{"name": "Ahmet"})
	id := env.Record()["id"].(string)

	env, err := store.Delete(ctx, "beneficiaries", id)
	if err != nil {
		t.Fatal(err)
	}
	if env.Failed() {
		t.Fatalf("Delete failed: %s", *env.Error)
	}
	if env.Data != nil {
		t.Error("Delete success must carry nil data")
	}

	env, err = store.Get(ctx, "beneficiaries", id)
	if err != nil {
		t.Fatal(err)
	}
	if env.Failed() || env.Data != nil {
		t.Errorf("Get after delete must be the not-found shape, got %+v", env)
	}

	// Double delete surfaces the provider error.
	env, err = store.Delete(ctx, "beneficiaries", id)
	if err != nil {
		t.Fatal(err)
	}
	if !env.Failed() {
		t.Error("Deleting an already-deleted record must not be treated as success")
	}
}

func TestPagination(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	const n = 45
	for i := 0; i < n; i++ {
		if _, err := store.Create(ctx, "beneficiaries", storagemodels.Record{"name": fmt.Sprintf("Kişi %d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	env, err := store.List(ctx, "beneficiaries", &storagemodels.QueryParams{Limit: 20})
	if err != nil {
		t.Fatal(err)
	}
	page1 := env.Records()
	if len(page1) != 20 {
		t.Fatalf("Expected 20 records, got %d", len(page1))
	}
	if env.Total == nil || *env.Total != n {
		t.Errorf("Expected total %d, got %v", n, env.Total)
	}

	env, err = store.List(ctx, "beneficiaries", &storagemodels.QueryParams{Limit: 20, Skip: 20})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[any]bool{}
	for _, rec := range page1 {
		seen[rec["id"]] = true
	}
	for _, rec := range env.Records() {
		if seen[rec["id"]] {
			t.Errorf("Record %v overlaps page 1", rec["id"])
		}
	}
}

func TestUnknownCollectionFailsBeforeProviderCall(t *testing.T) {
	store, prov := newTestStore()

	if _, err := store.List(context.Background(), "payments", nil); !errors.IsUnknownCollection(err) {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}
	if _, err := store.Get(context.Background(), "payments", "x"); !errors.IsUnknownCollection(err) {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}
	if _, err := store.Create(context.Background(), "payments", storagemodels.Record{}); !errors.IsUnknownCollection(err) {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}

	if prov.Calls() != 0 {
		t.Errorf("Configuration errors must short-circuit before the provider, saw %d calls", prov.Calls())
	}
}

func TestNilProviderFailsLoudly(t *testing.T) {
	store := NewStore(nil)

	if _, err := store.List(context.Background(), "beneficiaries", nil); !errors.IsProviderUnavailable(err) {
		t.Errorf("Expected ErrProviderUnavailable, got %v", err)
	}
	if err := store.Ping(context.Background()); !errors.IsProviderUnavailable(err) {
		t.Errorf("Expected ErrProviderUnavailable from Ping, got %v", err)
	}
}

func TestProviderFailureBecomesEnvelope(t *testing.T) {
	prov := memory.New().WithListError(fmt.Errorf("backend down"))
	store := NewStore(prov)

	env, err := store.List(context.Background(), "beneficiaries", nil)
	if err != nil {
		t.Fatalf("Provider failures must not escape as Go errors: %v", err)
	}
	if !env.Failed() {
		t.Fatal("Expected error envelope")
	}
	if *env.Error != "backend down" {
		t.Errorf("Expected provider message, got %q", *env.Error)
	}
	if env.Total != nil {
		t.Error("Failed list must not carry a total")
	}
}

func TestCount(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, "donations", storagemodels.Record{"donor_name": "X", "status": "ALINDI"}); err != nil {
			t.Fatal(err)
		}
	}

	env, err := store.Count(ctx, "donations", &storagemodels.QueryParams{Filters: map[string]any{"status": "ALINDI"}})
	if err != nil {
		t.Fatal(err)
	}
	if env.Total == nil || *env.Total != 3 {
		t.Errorf("Expected total 3, got %v", env.Total)
	}
	if env.Data != nil {
		t.Error("Count must not materialize records")
	}
}

func TestUpsertStampsAndPatches(t *testing.T) {
	store, _ := newTestStore()
	ctx := WithActor(context.Background(), "admin-1")

	keys := storagemodels.Record{"category": "session", "key": "timeout_minutes"}

	env, err := store.Upsert(ctx, "security_settings", keys, storagemodels.Record{"value": 30})
	if err != nil {
		t.Fatal(err)
	}
	first := env.Record()
	if first["value"] != 30 || first["category"] != "session" {
		t.Errorf("Unexpected upserted row: %v", first)
	}
	if first["updatedAt"] == nil || first["updated_by"] != "admin-1" {
		t.Errorf("Upsert must stamp updatedAt and actor, got %v", first)
	}

	env, err = store.Upsert(ctx, "security_settings", keys, storagemodels.Record{"value": 60})
	if err != nil {
		t.Fatal(err)
	}
	if env.Record()["value"] != 60 {
		t.Errorf("Expected patched value 60, got %v", env.Record()["value"])
	}
	if env.Record()["id"] != first["id"] {
		t.Error("Second upsert must patch the existing row, not insert")
	}
}

func TestTimestampIsISO8601(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	store, _ := newTestStore(WithClock(func() time.Time { return fixed }))

	env, err := store.Create(context.Background(), "beneficiaries", storagemodels.Record{"name": "A"})
	if err != nil {
		t.Fatal(err)
	}

	stamp, ok := env.Record()["createdAt"].(string)
	if !ok {
		t.Fatalf("createdAt must be a string, got %T", env.Record()["createdAt"])
	}
	if _, perr := time.Parse(time.RFC3339, stamp); perr != nil {
		t.Errorf("createdAt %q is not ISO-8601: %v", stamp, perr)
	}
}
