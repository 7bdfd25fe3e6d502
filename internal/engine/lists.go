package engine

import (
	"context"
	"sort"

	"github.com/bungkust/shoplist/internal/model"
	"github.com/bungkust/shoplist/internal/storage"
)

// ListLists returns the owner group's lists, newest first, sliced to the
// requested page.
func (e *Engine) ListLists(ctx context.Context, groupID string, page, pageSize int) ([]model.ShoppingList, error) {
	lists, err := readCollection[model.ShoppingList](ctx, e, storage.CollectionLists)
	if err != nil {
		return nil, err
	}

	owned := lists[:0:0]
	for _, l := range lists {
		if l.OwnerGroupID == groupID {
			owned = append(owned, l)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return paginate(owned, page, pageSize), nil
}

// GetList returns a list by id, or nil when it does not exist.
func (e *Engine) GetList(ctx context.Context, id string) (*model.ShoppingList, error) {
	lists, err := readCollection[model.ShoppingList](ctx, e, storage.CollectionLists)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].ID == id {
			return &lists[i], nil
		}
	}
	return nil, nil
}

// CreateList persists a new list for the owner group and returns the stored
// record. On a failed write nothing is persisted and no record is returned.
func (e *Engine) CreateList(ctx context.Context, groupID, createdBy, name string) (*model.ShoppingList, error) {
	lists, err := readCollection[model.ShoppingList](ctx, e, storage.CollectionLists)
	if err != nil {
		return nil, err
	}

	rec := model.ShoppingList{
		ID:           e.newID(),
		Name:         name,
		OwnerGroupID: groupID,
		CreatedBy:    createdBy,
		CreatedAt:    e.now(),
	}
	lists = append([]model.ShoppingList{rec}, lists...)
	if err := writeCollection(ctx, e, storage.CollectionLists, lists); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateList renames a list in place. Returns ErrNotFound for an unknown id.
func (e *Engine) UpdateList(ctx context.Context, id, newName string) (*model.ShoppingList, error) {
	lists, err := readCollection[model.ShoppingList](ctx, e, storage.CollectionLists)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range lists {
		if lists[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	lists[idx].Name = newName
	if err := writeCollection(ctx, e, storage.CollectionLists, lists); err != nil {
		return nil, err
	}
	return &lists[idx], nil
}

// DeleteList removes a list by id. Deleting a non-existent id is not an
// error.
func (e *Engine) DeleteList(ctx context.Context, id string) error {
	lists, err := readCollection[model.ShoppingList](ctx, e, storage.CollectionLists)
	if err != nil {
		return err
	}

	kept := lists[:0:0]
	for _, l := range lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lists) {
		return nil
	}
	return writeCollection(ctx, e, storage.CollectionLists, kept)
}
