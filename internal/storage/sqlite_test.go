package storage

import (
	"context"
	"testing"

	"github.com/bungkust/shoplist/internal/database"
)

func setupSQLiteStore(t *testing.T) *SQLite {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLite(db)
}

func TestSQLiteReadMissingCollection(t *testing.T) {
	s := setupSQLiteStore(t)

	data, err := s.Read(context.Background(), CollectionLists)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for never-written collection, got %q", data)
	}
}

func TestSQLiteWriteReadRoundTrip(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"a","name":"Weekly"}]`)
	if err := s.Write(ctx, CollectionLists, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Read(ctx, CollectionLists)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("read = %q, want %q", got, payload)
	}
}

func TestSQLiteWriteReplacesWholeCollection(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, CollectionItems, []byte(`[{"id":"a"},{"id":"b"}]`)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	replacement := []byte(`[{"id":"c"}]`)
	if err := s.Write(ctx, CollectionItems, replacement); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := s.Read(ctx, CollectionItems)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(replacement) {
		t.Errorf("read = %q, want %q", got, replacement)
	}
}

func TestSQLiteCollectionsIndependent(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, CollectionHistory, []byte(`[1]`)); err != nil {
		t.Fatalf("write history: %v", err)
	}
	if err := s.Write(ctx, CollectionStores, []byte(`[2]`)); err != nil {
		t.Fatalf("write stores: %v", err)
	}

	history, _ := s.Read(ctx, CollectionHistory)
	stores, _ := s.Read(ctx, CollectionStores)
	if string(history) != `[1]` || string(stores) != `[2]` {
		t.Errorf("collections leaked: history=%q stores=%q", history, stores)
	}
}
