package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestListCRUD(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	created, err := e.CreateList(ctx, "g1", "user-a", "Weekly")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if created.ID == "" {
		t.Error("expected durable id on created list")
	}
	if created.Name != "Weekly" || created.OwnerGroupID != "g1" || created.CreatedBy != "user-a" {
		t.Errorf("created = %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}

	got, err := e.GetList(ctx, created.ID)
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	if got == nil || got.Name != "Weekly" {
		t.Errorf("get = %+v, want Weekly", got)
	}

	renamed, err := e.UpdateList(ctx, created.ID, "Monthly")
	if err != nil {
		t.Fatalf("update list: %v", err)
	}
	if renamed.Name != "Monthly" {
		t.Errorf("renamed.Name = %q, want Monthly", renamed.Name)
	}

	if err := e.DeleteList(ctx, created.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if got, _ := e.GetList(ctx, created.ID); got != nil {
		t.Errorf("expected list gone, got %+v", got)
	}
}

func TestUpdateListNotFound(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.UpdateList(context.Background(), "missing", "New")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteListIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.DeleteList(context.Background(), "missing"); err != nil {
		t.Errorf("deleting unknown id: %v, want nil", err)
	}
}

func TestListListsNewestFirstAndGroupScoped(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.CreateList(ctx, "g1", "u", "First")
	e.CreateList(ctx, "g2", "u", "Foreign")
	e.CreateList(ctx, "g1", "u", "Second")
	e.CreateList(ctx, "g1", "u", "Third")

	lists, err := e.ListLists(ctx, "g1", 0, 20)
	if err != nil {
		t.Fatalf("list lists: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("len = %d, want 3 (cross-group leak?)", len(lists))
	}
	for i, want := range []string{"Third", "Second", "First"} {
		if lists[i].Name != want {
			t.Errorf("lists[%d].Name = %q, want %q", i, lists[i].Name, want)
		}
	}
	for _, l := range lists {
		if l.OwnerGroupID != "g1" {
			t.Errorf("leaked record from group %q", l.OwnerGroupID)
		}
	}
}

// Concatenating all pages must reproduce the full sorted collection exactly
// once, and has-more (len == pageSize) must be false exactly on the last
// page.
func TestListPaginationExhaustive(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	const total = 7
	for i := 0; i < total; i++ {
		if _, err := e.CreateList(ctx, "g1", "u", fmt.Sprintf("List %d", i)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	const pageSize = 3
	var all []string
	for page := 0; ; page++ {
		batch, err := e.ListLists(ctx, "g1", page, pageSize)
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		for _, l := range batch {
			all = append(all, l.Name)
		}
		hasMore := len(batch) == pageSize
		if !hasMore {
			if page != 2 {
				t.Errorf("has-more false on page %d, want page 2", page)
			}
			break
		}
	}
	if len(all) != total {
		t.Fatalf("concatenated pages hold %d records, want %d", len(all), total)
	}
	seen := make(map[string]bool)
	for _, name := range all {
		if seen[name] {
			t.Errorf("record %q appeared twice across pages", name)
		}
		seen[name] = true
	}
}

func TestCreateListWriteFailureLeavesCollectionUnchanged(t *testing.T) {
	e, mem := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.CreateList(ctx, "g1", "u", "Kept"); err != nil {
		t.Fatalf("create: %v", err)
	}

	mem.FailWrites("lists", errors.New("disk full"))
	if _, err := e.CreateList(ctx, "g1", "u", "Lost"); err == nil {
		t.Fatal("expected write failure to surface")
	}
	mem.FailWrites("lists", nil)

	lists, err := e.ListLists(ctx, "g1", 0, 20)
	if err != nil {
		t.Fatalf("list lists: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Kept" {
		t.Errorf("collection changed after failed write: %+v", lists)
	}
}
