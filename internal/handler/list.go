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

type ListHandler struct {
	engine *engine.Engine
	hub    *ws.Hub
	logger *slog.Logger
}

func NewListHandler(e *engine.Engine, hub *ws.Hub, logger *slog.Logger) *ListHandler {
	return &ListHandler{engine: e, hub: hub, logger: logger}
}

type listRequest struct {
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
}

func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	page, pageSize := parsePagination(r)

	lists, err := h.engine.ListLists(r.Context(), groupID, page, pageSize)
	if err != nil {
		h.logger.Error("list lists", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list lists")
		return
	}
	writeJSON(w, http.StatusOK, newPagedResponse(lists, page, pageSize))
}

func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())

	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	list, err := h.engine.CreateList(r.Context(), groupID, req.CreatedBy, req.Name)
	if err != nil {
		h.logger.Error("create list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create list")
		return
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "list", "created", list.ID))
	writeJSON(w, http.StatusCreated, list)
}

func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	id := r.PathValue("id")

	owned, err := h.ownsList(r, groupID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get list")
		return
	}
	if !owned {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	list, err := h.engine.UpdateList(r.Context(), id, req.Name)
	if errors.Is(err, engine.ErrNotFound) {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	if err != nil {
		h.logger.Error("update list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update list")
		return
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "list", "updated", list.ID))
	writeJSON(w, http.StatusOK, list)
}

func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())
	id := r.PathValue("id")

	owned, err := h.ownsList(r, groupID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get list")
		return
	}
	if !owned {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	if err := h.engine.DeleteList(r.Context(), id); err != nil {
		h.logger.Error("delete list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete list")
		return
	}

	h.hub.Broadcast(ws.NewMessage(groupID, "list", "deleted", id))
	w.WriteHeader(http.StatusNoContent)
}

// ownsList reports whether the list exists and belongs to the owner group.
// Records of other groups look identical to missing ones.
func (h *ListHandler) ownsList(r *http.Request, groupID, id string) (bool, error) {
	list, err := h.engine.GetList(r.Context(), id)
	if err != nil {
		h.logger.Error("get list", "error", err)
		return false, err
	}
	return list != nil && list.OwnerGroupID == groupID, nil
}
