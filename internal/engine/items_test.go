package engine

import (
	"context"
	"errors"
	"testing"
)

func TestAddItem(t *testing.T) {
	e, _ := newTestEngine(t)

	item, err := e.AddItem(context.Background(), "g1", "l1", "telur", 2, "kg")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.ID == "" {
		t.Error("expected durable id for optimistic reconciliation")
	}
	if item.Name != "telur" || item.Quantity != 2 || item.Unit != "kg" {
		t.Errorf("item = %+v", item)
	}
	if item.IsPurchased {
		t.Error("new item must not be purchased")
	}
	if item.OwnerGroupID != "g1" || item.ListID != "l1" {
		t.Errorf("scoping = group %q list %q", item.OwnerGroupID, item.ListID)
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}
}

func TestAddItemDefaultsEmptyUnit(t *testing.T) {
	e, _ := newTestEngine(t)

	item, err := e.AddItem(context.Background(), "g1", "l1", "roti", 3, "")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.Unit != "pcs" {
		t.Errorf("unit = %q, want pcs", item.Unit)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	for _, qty := range []float64{0, -1} {
		if _, err := e.AddItem(ctx, "g1", "l1", "telur", qty, "kg"); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("AddItem(qty=%v) err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestListItemsNewestFirstAndListScoped(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.AddItem(ctx, "g1", "l1", "first", 1, "pcs")
	e.AddItem(ctx, "g1", "l2", "other list", 1, "pcs")
	e.AddItem(ctx, "g1", "l1", "second", 1, "pcs")

	items, err := e.ListItems(ctx, "l1", 0, 20)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Name != "second" || items[1].Name != "first" {
		t.Errorf("order = [%s %s], want [second first]", items[0].Name, items[1].Name)
	}
}

func TestToggleItem(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.AddItem(ctx, "g1", "l1", "susu", 1, "liter")

	toggled, err := e.ToggleItem(ctx, item.ID, true)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.IsPurchased {
		t.Error("expected purchased flag set")
	}

	toggled, err = e.ToggleItem(ctx, item.ID, false)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if toggled.IsPurchased {
		t.Error("expected purchased flag cleared")
	}

	// Toggling leaves the item out of history.
	history, _ := e.GetHistory(ctx, "g1", 0, 20, "", nil)
	if len(history) != 0 {
		t.Errorf("toggle must have no history side effect, got %d records", len(history))
	}
}

func TestToggleItemNotFound(t *testing.T) {
	e, _ := newTestEngine(t)

	if _, err := e.ToggleItem(context.Background(), "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteItemIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.AddItem(ctx, "g1", "l1", "kecap", 1, "pcs")
	if err := e.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := e.DeleteItem(ctx, item.ID); err != nil {
		t.Errorf("second delete: %v, want nil", err)
	}
	if got, _ := e.GetItem(ctx, item.ID); got != nil {
		t.Errorf("expected item gone, got %+v", got)
	}
}

func TestAddItemWriteFailureLeavesCollectionUnchanged(t *testing.T) {
	e, mem := newTestEngine(t)
	ctx := context.Background()

	e.AddItem(ctx, "g1", "l1", "kept", 1, "pcs")

	mem.FailWrites("items", errors.New("write refused"))
	if _, err := e.AddItem(ctx, "g1", "l1", "lost", 1, "pcs"); err == nil {
		t.Fatal("expected write failure to surface")
	}
	mem.FailWrites("items", nil)

	items, _ := e.ListItems(ctx, "l1", 0, 20)
	if len(items) != 1 || items[0].Name != "kept" {
		t.Errorf("collection changed after failed write: %+v", items)
	}
}
