// Package engine implements the local data engine: CRUD and pagination over
// the lists, items, history, and stores collections, plus the checkout
// transition that turns an active item into an immutable history record.
//
// The engine is stateless between calls. Every operation re-reads its whole
// collection from the Store, transforms it in memory, and writes it back;
// the backing store has no partial-write API. A single logical writer per
// owner group is assumed - concurrent writers to the same collection can
// lose updates, and callers must serialize.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bungkust/shoplist/internal/storage"
)

var (
	// ErrNotFound is returned by mutations that target a missing record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidQuantity is returned when a quantity or pack size is not
	// strictly positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidPrice is returned when a checkout price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")
)

type Engine struct {
	store  storage.Store
	logger *slog.Logger

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

func New(store storage.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// readCollection decodes a whole collection. A missing or corrupt collection
// degrades to an empty sequence so that first-run is indistinguishable from
// "nothing matches"; corruption is logged, not surfaced.
func readCollection[T any](ctx context.Context, e *Engine, c storage.Collection) ([]T, error) {
	data, err := e.store.Read(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		e.logger.Warn("corrupt collection treated as empty", "collection", string(c), "error", err)
		return nil, nil
	}
	return records, nil
}

func writeCollection[T any](ctx context.Context, e *Engine, c storage.Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := e.store.Write(ctx, c, data); err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}
	return nil
}

// paginate slices records to the zero-based page. Callers derive has-more as
// len(returned) == pageSize.
func paginate[T any](records []T, page, pageSize int) []T {
	if page < 0 || pageSize <= 0 {
		return []T{}
	}
	start := page * pageSize
	if start >= len(records) {
		return []T{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	out := make([]T, end-start)
	copy(out, records[start:end])
	return out
}
