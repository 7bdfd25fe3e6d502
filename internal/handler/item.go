package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bungkust/shoplist/internal/engine"
	"github.com/bungkust/shoplist/internal/tenant"
	ws "github.com/bungkust/shoplist/internal/websocket"
)

type ItemHandler struct {
	engine *engine.Engine
	hub    *ws.Hub
	logger *slog.Logger
}

func NewItemHandler(e *engine.Engine, hub *ws.Hub, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{engine: e, hub: hub, logger: logger}
}

type itemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	listID := r.PathValue("list_id")
	page, pageSize := parsePagination(r)

	list, err := h.engine.GetList(r.Context(), listID)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get list")
		return
	}
	if list == nil || list.OwnerGroupID != groupID {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	items, err := h.engine.ListItems(r.Context(), listID, page, pageSize)
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, newPagedResponse(items, page, pageSize))
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	listID := r.PathValue("list_id")

	list, err := h.engine.GetList(r.Context(), listID)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get list")
		return
	}
	if list == nil || list.OwnerGroupID != groupID {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.engine.AddItem(r.Context(), groupID, listID, req.Name, req.Quantity, req.Unit)
	if errors.Is(err, engine.ErrInvalidQuantity) {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	if err != nil {
		h.logger.Error("add item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "item", "created", item.ID))
	writeJSON(w, http.StatusCreated, item)
}

type toggleRequest struct {
	Purchased bool `json:"purchased"`
}

func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	id := r.PathValue("id")

	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	owned, err := h.ownsItem(r, groupID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if !owned {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	item, err := h.engine.ToggleItem(r.Context(), id, req.Purchased)
	if errors.Is(err, engine.ErrNotFound) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		h.logger.Error("toggle item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to toggle item")
		return
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "item", "updated", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	id := r.PathValue("id")

	owned, err := h.ownsItem(r, groupID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if !owned {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := h.engine.DeleteItem(r.Context(), id); err != nil {
		h.logger.Error("delete item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "item", "deleted", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) ownsItem(r *http.Request, groupID, id string) (bool, error) {
	item, err := h.engine.GetItem(r.Context(), id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		return false, err
	}
	return item != nil && item.OwnerGroupID == groupID, nil
}
