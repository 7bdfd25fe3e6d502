package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bungkust/shoplist/internal/engine"
	"github.com/bungkust/shoplist/internal/tenant"
)

type StoreHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewStoreHandler(e *engine.Engine, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{engine: e, logger: logger}
}

// Suggestions serves the autocomplete list: explicit stores merged with
// store names seen in the group's history, most recently used first.
func (h *StoreHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())

	names, err := h.engine.StoreSuggestions(r.Context(), groupID)
	if err != nil {
		h.logger.Error("store suggestions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list stores")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"stores": names})
}

type storeRequest struct {
	Name string `json:"name"`
}

func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	store, err := h.engine.AddStore(r.Context(), req.Name)
	if errors.Is(err, engine.ErrEmptyStoreName) {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err != nil {
		h.logger.Error("add store", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add store")
		return
	}
	writeJSON(w, http.StatusCreated, store)
}
