/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/suparena/tablestore/config"
	"github.com/suparena/tablestore/datastore/testmodels"
	"github.com/suparena/tablestore/filter"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/storagemodels"
)

func init() {
	registry.RegisterKeyMap[testmodels.MatchRecord](registry.KeyMap{
		PartitionKey: "TOURNAMENT#{Tournament}",
		RowKey:       "MATCH#{MatchID}",
	})
	registry.RegisterReader("MatchRecord", func(e *storagemodels.Entity) (interface{}, error) {
		return readMatchRecordEntity(e), nil
	})
}

func readMatchRecordEntity(e *storagemodels.Entity) testmodels.MatchRecord {
	rec := testmodels.MatchRecord{}
	if v, ok := e.Properties["EntityKind"].(string); ok {
		rec.EntityKind = v
	}
	if v, ok := e.Properties["Tournament"].(string); ok {
		rec.Tournament = v
	}
	if v, ok := e.Properties["MatchID"].(string); ok {
		rec.MatchID = v
	}
	if v, ok := e.Properties["Winner"].(string); ok {
		rec.Winner = v
	}
	switch v := e.Properties["PlayedAt"].(type) {
	case aztables.EDMDateTime:
		dt := strfmt.DateTime(time.Time(v))
		rec.PlayedAt = &dt
	case time.Time:
		dt := strfmt.DateTime(v)
		rec.PlayedAt = &dt
	}
	return rec
}

func readMatchRecord(e *storagemodels.Entity) (testmodels.MatchRecord, error) {
	return readMatchRecordEntity(e), nil
}

// Fixture plumbing is exercised without a live account: key-map expansion,
// batch payloads, and reader-registry dispatch for MatchRecord rows.
func TestMatchRecordFixturePlumbing(t *testing.T) {
	played := strfmt.DateTime(time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC))
	rec := testmodels.MatchRecord{
		EntityKind: "MatchRecord",
		Tournament: "open-2025",
		MatchID:    "m42",
		Winner:     "Bob",
		Score:      11,
		PlayedAt:   &played,
	}

	t.Run("KeyExpansion", func(t *testing.T) {
		pk, rk, err := registry.ExpandKeysFor(rec)
		if err != nil {
			t.Fatalf("ExpandKeysFor failed: %v", err)
		}
		if pk != "TOURNAMENT#open-2025" || rk != "MATCH#m42" {
			t.Errorf("got (%q, %q), want (TOURNAMENT#open-2025, MATCH#m42)", pk, rk)
		}
	})

	t.Run("BatchPayloadCarriesFields", func(t *testing.T) {
		payload, err := batchEntity(rec, aztables.TransactionTypeInsertReplace)
		if err != nil {
			t.Fatalf("batchEntity failed: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("payload is not valid JSON: %v", err)
		}
		if decoded["PartitionKey"] != "TOURNAMENT#open-2025" {
			t.Errorf("PartitionKey = %v", decoded["PartitionKey"])
		}
		if decoded["Winner"] != "Bob" {
			t.Errorf("Winner = %v", decoded["Winner"])
		}
		if decoded["EntityKind"] != "MatchRecord" {
			t.Errorf("EntityKind = %v", decoded["EntityKind"])
		}
	})

	t.Run("ReaderRegistryDispatch", func(t *testing.T) {
		ent := storagemodels.NewEntity("TOURNAMENT#open-2025", "MATCH#m42")
		ent.Properties["EntityKind"] = "MatchRecord"
		ent.Properties["MatchID"] = "m42"
		ent.Properties["Winner"] = "Bob"

		got, err := project[testmodels.MatchRecord](ent, nil)
		if err != nil {
			t.Fatalf("project failed: %v", err)
		}
		if got.MatchID != "m42" || got.Winner != "Bob" {
			t.Errorf("unexpected record: %+v", got)
		}
	})
}

// getMatchRecordStore builds a store against a live storage account. Tests
// using it skip when no account is configured.
func getMatchRecordStore(t *testing.T) *AzureTableStore[testmodels.MatchRecord] {
	t.Helper()

	_ = godotenv.Load()

	connStr := os.Getenv("AZURE_TABLES_CONNECTION_STRING")
	if connStr == "" {
		t.Skip("AZURE_TABLES_CONNECTION_STRING not set; skipping live storage test")
	}

	cfg := &config.Config{
		ProdConnectionString: connStr,
		DevConnectionString:  os.Getenv("AZURE_TABLES_DEV_CONNECTION_STRING"),
		Stage:                config.StageProd,
	}
	store, err := NewFromConfig[testmodels.MatchRecord](cfg, "matchrecords")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestInsertAndReceive(t *testing.T) {
	store := getMatchRecordStore(t)
	ctx := context.Background()

	played := time.Now().UTC()

	err := store.Insert(ctx, "TOURNAMENT#open-2025", "MATCH#m1", func(e *storagemodels.Entity) {
		e.Properties["EntityKind"] = "MatchRecord"
		e.Properties["Tournament"] = "open-2025"
		e.Properties["MatchID"] = "m1"
		e.Properties["Winner"] = "Alice"
		e.Properties["PlayedAt"] = aztables.EDMDateTime(played)
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetOne(ctx, readMatchRecord, "TOURNAMENT#open-2025", "MATCH#m1")
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if got == nil || got.Winner != "Alice" {
		t.Errorf("unexpected entity: %+v", got)
	}
}

func TestGetOneMissingIsNotAnError(t *testing.T) {
	store := getMatchRecordStore(t)

	got, err := store.GetOne(context.Background(), readMatchRecord, "TOURNAMENT#open-2025", "MATCH#does-not-exist")
	if err != nil {
		t.Fatalf("GetOne returned error for missing entity: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing entity, got %+v", got)
	}
}

func TestQueryWithFilter(t *testing.T) {
	store := getMatchRecordStore(t)

	params := &storagemodels.QueryParams{
		Filter: filter.Eq("PartitionKey", "TOURNAMENT#open-2025"),
	}
	results, err := store.Query(context.Background(), readMatchRecord, params)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	t.Logf("query returned %d match records", len(results))
}

func TestDeleteAbsentEntitySucceeds(t *testing.T) {
	store := getMatchRecordStore(t)

	if err := store.Delete(context.Background(), "TOURNAMENT#open-2025", "MATCH#never-existed"); err != nil {
		t.Errorf("Delete of absent entity: %v", err)
	}
}
