package engine

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/bungkust/shoplist/internal/model"
	"github.com/bungkust/shoplist/internal/storage"
)

// ErrEmptyStoreName is returned when adding a blank store label.
var ErrEmptyStoreName = errors.New("store name must not be empty")

// AddStore records a store label for autocomplete. Names are deduplicated
// case-insensitively; when the name is already known the existing entry is
// returned unchanged, preserving its first-seen casing.
func (e *Engine) AddStore(ctx context.Context, name string) (*model.StoreLabel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyStoreName
	}

	stores, err := readCollection[model.StoreLabel](ctx, e, storage.CollectionStores)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(name)
	for i := range stores {
		if strings.ToLower(stores[i].Name) == key {
			return &stores[i], nil
		}
	}

	rec := model.StoreLabel{Name: name}
	stores = append(stores, rec)
	if err := writeCollection(ctx, e, storage.CollectionStores, stores); err != nil {
		return nil, err
	}
	return &rec, nil
}

// StoreSuggestions merges the explicit store set with every distinct
// non-empty store name seen in the owner group's history, deduplicated
// case-insensitively. Used stores come first, ordered by most recent use;
// never-used stores follow in stored order. When a name exists both in the
// explicit set and in history, the explicit entry's casing wins.
func (e *Engine) StoreSuggestions(ctx context.Context, groupID string) ([]string, error) {
	stores, err := readCollection[model.StoreLabel](ctx, e, storage.CollectionStores)
	if err != nil {
		return nil, err
	}
	history, err := readCollection[model.HistoryRecord](ctx, e, storage.CollectionHistory)
	if err != nil {
		return nil, err
	}

	owned := history[:0:0]
	for _, rec := range history {
		if rec.OwnerGroupID == groupID && strings.TrimSpace(rec.StoreName) != "" {
			owned = append(owned, rec)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].PurchasedAt.After(owned[j].PurchasedAt)
	})

	preferred := make(map[string]string, len(stores))
	for _, s := range stores {
		name := strings.TrimSpace(s.Name)
		key := strings.ToLower(name)
		if _, ok := preferred[key]; !ok && name != "" {
			preferred[key] = name
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, rec := range owned {
		name := strings.TrimSpace(rec.StoreName)
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		if p, ok := preferred[key]; ok {
			name = p
		}
		out = append(out, name)
	}
	for _, s := range stores {
		name := strings.TrimSpace(s.Name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out, nil
}
