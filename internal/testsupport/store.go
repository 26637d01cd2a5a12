package testsupport

import (
	"context"
	"testing"

	"trackdesk/internal/catalog"
	"trackdesk/internal/config"
	"trackdesk/internal/records"
)

// MustOpenStore opens a records.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *records.Store {
	t.Helper()

	store, err := records.Open(cfg)
	if err != nil {
		t.Fatalf("records.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedRecord appends one record of the given kind and returns its id. The
// id column is assigned when the values do not already carry one.
func SeedRecord(t testing.TB, store *records.Store, kind catalog.Kind, values map[string]string) string {
	t.Helper()

	def := catalog.Get(kind)
	rec := make(records.Record, len(values)+1)
	for column, value := range values {
		rec[column] = value
	}
	if rec[def.IDColumn] == "" {
		rec[def.IDColumn] = records.NewID()
	}
	if err := store.Append(context.Background(), def.Worksheet(), rec); err != nil {
		t.Fatalf("store.Append(%s): %v", kind, err)
	}
	return rec[def.IDColumn]
}

// SeedNamed seeds one taxonomy record (name-displayed kind) and returns its id.
func SeedNamed(t testing.TB, store *records.Store, kind catalog.Kind, name string) string {
	t.Helper()
	return SeedRecord(t, store, kind, map[string]string{catalog.Get(kind).DisplayColumn: name})
}
