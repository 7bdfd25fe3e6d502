package engine

import (
	"context"
	"sort"

	"github.com/bungkust/shoplist/internal/model"
	"github.com/bungkust/shoplist/internal/storage"
)

// ListItems returns a list's items, newest first, sliced to the requested
// page. Purchased items stay visible with the flag set; active views filter
// on it.
func (e *Engine) ListItems(ctx context.Context, listID string, page, pageSize int) ([]model.Item, error) {
	items, err := readCollection[model.Item](ctx, e, storage.CollectionItems)
	if err != nil {
		return nil, err
	}

	inList := items[:0:0]
	for _, it := range items {
		if it.ListID == listID {
			inList = append(inList, it)
		}
	}
	sort.SliceStable(inList, func(i, j int) bool {
		return inList[i].CreatedAt.After(inList[j].CreatedAt)
	})
	return paginate(inList, page, pageSize), nil
}

// GetItem returns an item by id, or nil when it does not exist.
func (e *Engine) GetItem(ctx context.Context, id string) (*model.Item, error) {
	items, err := readCollection[model.Item](ctx, e, storage.CollectionItems)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// AddItem persists a new active item and returns the stored record with its
// durable identifier; callers use the return value to reconcile an
// optimistic placeholder. Quantity must be strictly positive (the parser
// guarantees this by defaulting; manual entry does not). An empty unit
// defaults to "pcs".
func (e *Engine) AddItem(ctx context.Context, groupID, listID, name string, quantity float64, unit string) (*model.Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unit == "" {
		unit = "pcs"
	}

	items, err := readCollection[model.Item](ctx, e, storage.CollectionItems)
	if err != nil {
		return nil, err
	}

	rec := model.Item{
		ID:           e.newID(),
		ListID:       listID,
		Name:         name,
		Quantity:     quantity,
		Unit:         unit,
		IsPurchased:  false,
		OwnerGroupID: groupID,
		CreatedAt:    e.now(),
	}
	items = append([]model.Item{rec}, items...)
	if err := writeCollection(ctx, e, storage.CollectionItems, items); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ToggleItem sets the purchased flag in place. It has no history side
// effect. Returns ErrNotFound for an unknown id.
func (e *Engine) ToggleItem(ctx context.Context, id string, purchased bool) (*model.Item, error) {
	items, err := readCollection[model.Item](ctx, e, storage.CollectionItems)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	items[idx].IsPurchased = purchased
	if err := writeCollection(ctx, e, storage.CollectionItems, items); err != nil {
		return nil, err
	}
	return &items[idx], nil
}

// DeleteItem hard-removes an item from the active collection. Deleting a
// non-existent id is not an error.
func (e *Engine) DeleteItem(ctx context.Context, id string) error {
	items, err := readCollection[model.Item](ctx, e, storage.CollectionItems)
	if err != nil {
		return err
	}

	kept := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return writeCollection(ctx, e, storage.CollectionItems, kept)
}
