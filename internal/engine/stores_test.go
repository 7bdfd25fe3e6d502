package engine

import (
	"context"
	"errors"
	"testing"
)

func TestAddStoreDeduplicatesCaseInsensitively(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := e.AddStore(ctx, "Indomaret")
	if err != nil {
		t.Fatalf("add store: %v", err)
	}
	again, err := e.AddStore(ctx, "INDOMARET")
	if err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	if again.Name != first.Name {
		t.Errorf("duplicate returned %q, want first-seen casing %q", again.Name, first.Name)
	}

	suggestions, _ := e.StoreSuggestions(ctx, "g1")
	if len(suggestions) != 1 {
		t.Errorf("suggestions = %v, want one entry", suggestions)
	}
}

func TestAddStoreRejectsBlank(t *testing.T) {
	e, _ := newTestEngine(t)

	for _, name := range []string{"", "   "} {
		if _, err := e.AddStore(context.Background(), name); !errors.Is(err, ErrEmptyStoreName) {
			t.Errorf("AddStore(%q) err = %v, want ErrEmptyStoreName", name, err)
		}
	}
}

func TestStoreSuggestionsOrderedByRecentUse(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.AddStore(ctx, "Alfamart")
	e.AddStore(ctx, "Indomaret")
	e.AddStore(ctx, "Pasar Minggu")

	checkout := func(name, store string) {
		item, _ := e.AddItem(ctx, "g1", "l1", name, 1, "pcs")
		if _, err := e.MoveToHistory(ctx, *item, CheckoutDetails{
			FinalPrice: 100, TotalSize: 1, BaseUnit: "pcs", StoreName: store,
		}); err != nil {
			t.Fatalf("checkout at %s: %v", store, err)
		}
	}
	checkout("telur", "Indomaret")
	checkout("susu", "Superindo") // used but never stored explicitly
	checkout("roti", "Alfamart")  // most recent

	got, err := e.StoreSuggestions(ctx, "g1")
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	want := []string{"Alfamart", "Superindo", "Indomaret", "Pasar Minggu"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStoreSuggestionsPreferStoredCasing(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.AddStore(ctx, "Indomaret")

	item, _ := e.AddItem(ctx, "g1", "l1", "telur", 1, "pcs")
	e.MoveToHistory(ctx, *item, CheckoutDetails{
		FinalPrice: 100, TotalSize: 1, BaseUnit: "pcs", StoreName: "indomaret",
	})

	got, _ := e.StoreSuggestions(ctx, "g1")
	if len(got) != 1 || got[0] != "Indomaret" {
		t.Errorf("got %v, want [Indomaret]", got)
	}
}

func TestStoreSuggestionsScopedToGroupHistory(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.AddItem(ctx, "g2", "l9", "telur", 1, "pcs")
	e.MoveToHistory(ctx, *item, CheckoutDetails{
		FinalPrice: 100, TotalSize: 1, BaseUnit: "pcs", StoreName: "Toko Sebelah",
	})

	got, _ := e.StoreSuggestions(ctx, "g1")
	if len(got) != 0 {
		t.Errorf("history store names leaked across groups: %v", got)
	}
}
