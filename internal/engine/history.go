package engine

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/bungkust/shoplist/internal/category"
	"github.com/bungkust/shoplist/internal/model"
	"github.com/bungkust/shoplist/internal/storage"
)

// CheckoutDetails carries the user-supplied facts of a purchase. ItemName
// falls back to the source item's name when empty; Category, ListName, and
// StoreName are optional.
type CheckoutDetails struct {
	ItemName   string
	FinalPrice float64
	TotalSize  float64
	BaseUnit   string
	Category   string
	ListName   string
	StoreName  string
}

// MoveToHistory records a checkout: it appends one immutable history record
// built from the supplied details, then marks the source item purchased so
// the active list stops surfacing it while the audit trail survives.
//
// The backing store has no cross-collection transaction, so the two writes
// are sequential and non-atomic. When the history append succeeds but the
// purchased-flag write fails, the created record is returned together with
// the error; the operation is convergent and callers can re-issue
// ToggleItem(item.ID, true) independently. The engine does not retry.
func (e *Engine) MoveToHistory(ctx context.Context, item model.Item, details CheckoutDetails) (*model.HistoryRecord, error) {
	if details.FinalPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if details.TotalSize <= 0 {
		return nil, ErrInvalidQuantity
	}
	name := details.ItemName
	if name == "" {
		name = item.Name
	}

	history, err := readCollection[model.HistoryRecord](ctx, e, storage.CollectionHistory)
	if err != nil {
		return nil, err
	}

	rec := model.HistoryRecord{
		ID:           e.newID(),
		OwnerGroupID: item.OwnerGroupID,
		ItemName:     name,
		FinalPrice:   details.FinalPrice,
		TotalSize:    details.TotalSize,
		BaseUnit:     details.BaseUnit,
		Category:     details.Category,
		ListName:     details.ListName,
		StoreName:    details.StoreName,
		PurchasedAt:  e.now(),
	}
	history = append([]model.HistoryRecord{rec}, history...)
	if err := writeCollection(ctx, e, storage.CollectionHistory, history); err != nil {
		return nil, err
	}

	if _, err := e.ToggleItem(ctx, item.ID, true); err != nil {
		e.logger.Warn("history recorded but item not marked purchased",
			"item_id", item.ID, "history_id", rec.ID, "error", err)
		return &rec, err
	}
	return &rec, nil
}

// GetHistory returns the owner group's purchase records, newest first,
// sliced to the requested page. Filtering is conjunctive: search is a
// case-insensitive substring match on the item name, and categories (when
// non-empty) is an exact-equality membership test after resolving an absent
// category to the fixed fallback label. Exact matching is deliberate - the
// category vocabulary is closed, and it decides which filter chips match.
func (e *Engine) GetHistory(ctx context.Context, groupID string, page, pageSize int, search string, categories []string) ([]model.HistoryRecord, error) {
	history, err := readCollection[model.HistoryRecord](ctx, e, storage.CollectionHistory)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))

	matched := history[:0:0]
	for _, rec := range history {
		if rec.OwnerGroupID != groupID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(rec.ItemName), search) {
			continue
		}
		if len(categories) > 0 {
			resolved := rec.Category
			if resolved == "" {
				resolved = category.Other
			}
			if !slices.Contains(categories, resolved) {
				continue
			}
		}
		matched = append(matched, rec)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PurchasedAt.After(matched[j].PurchasedAt)
	})
	return paginate(matched, page, pageSize), nil
}
