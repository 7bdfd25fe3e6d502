package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bungkust/shoplist/internal/category"
	"github.com/bungkust/shoplist/internal/engine"
	"github.com/bungkust/shoplist/internal/tenant"
	ws "github.com/bungkust/shoplist/internal/websocket"
)

type HistoryHandler struct {
	engine *engine.Engine
	hub    *ws.Hub
	logger *slog.Logger
}

func NewHistoryHandler(e *engine.Engine, hub *ws.Hub, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{engine: e, hub: hub, logger: logger}
}

type checkoutRequest struct {
	ItemName   string  `json:"item_name"`
	FinalPrice float64 `json:"final_price"`
	TotalSize  float64 `json:"total_size"`
	BaseUnit   string  `json:"base_unit"`
	Category   string  `json:"category"`
	StoreName  string  `json:"store_name"`
}

// Checkout moves an active item into history. The list name is resolved
// from the item's list, and an omitted category is auto-classified from the
// item name.
func (h *HistoryHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	id := r.PathValue("id")

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	item, err := h.engine.GetItem(r.Context(), id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil || item.OwnerGroupID != groupID {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	name := strings.TrimSpace(req.ItemName)
	if name == "" {
		name = item.Name
	}
	if req.Category == "" {
		if cat, ok := category.Classify(name); ok {
			req.Category = cat
		}
	}
	if req.BaseUnit == "" {
		req.BaseUnit = item.Unit
	}

	var listName string
	if list, err := h.engine.GetList(r.Context(), item.ListID); err == nil && list != nil {
		listName = list.Name
	}

	rec, err := h.engine.MoveToHistory(r.Context(), *item, engine.CheckoutDetails{
		ItemName:   name,
		FinalPrice: req.FinalPrice,
		TotalSize:  req.TotalSize,
		BaseUnit:   req.BaseUnit,
		Category:   req.Category,
		ListName:   listName,
		StoreName:  strings.TrimSpace(req.StoreName),
	})
	switch {
	case errors.Is(err, engine.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, "final_price must not be negative")
		return
	case errors.Is(err, engine.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, "total_size must be positive")
		return
	case err != nil && rec != nil:
		// History was recorded but the item is still flagged pending; the
		// client retries the toggle. Return the receipt with 202 so the
		// partial state is visible, not masked.
		h.logger.Warn("checkout partially applied", "item_id", item.ID, "error", err)
		h.hub.Broadcast(ws.NewMessage(groupID, "history", "created", rec.ID))
		writeJSON(w, http.StatusAccepted, rec)
		return
	case err != nil:
		h.logger.Error("move to history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record purchase")
		return
	}

	if rec.StoreName != "" {
		if _, err := h.engine.AddStore(r.Context(), rec.StoreName); err != nil {
			h.logger.Warn("remember store", "store", rec.StoreName, "error", err)
		}
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "history", "created", rec.ID))
	h.hub.Broadcast(ws.NewMessage(groupID, "item", "updated", item.ID))
	writeJSON(w, http.StatusCreated, rec)
}

// List serves the purchase history with conjunctive search and category
// filters. Categories arrive comma-separated and match exactly.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	page, pageSize := parsePagination(r)

	search := r.URL.Query().Get("search")
	var categories []string
	if raw := r.URL.Query().Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	records, err := h.engine.GetHistory(r.Context(), groupID, page, pageSize, search, categories)
	if err != nil {
		h.logger.Error("get history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get history")
		return
	}
	writeJSON(w, http.StatusOK, newPagedResponse(records, page, pageSize))
}
