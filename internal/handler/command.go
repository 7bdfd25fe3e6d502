package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bungkust/shoplist/internal/engine"
	"github.com/bungkust/shoplist/internal/parser"
	"github.com/bungkust/shoplist/internal/tenant"
	ws "github.com/bungkust/shoplist/internal/websocket"
)

// CommandHandler turns free-text or transcribed voice input into a stored
// item: Parse then AddItem, returning both so the client can reconcile its
// optimistic placeholder against the durable record.
type CommandHandler struct {
	engine *engine.Engine
	hub    *ws.Hub
	logger *slog.Logger
}

func NewCommandHandler(e *engine.Engine, hub *ws.Hub, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{engine: e, hub: hub, logger: logger}
}

type commandRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
	ListID string `json:"list_id"`
}

type commandResponse struct {
	Item   any           `json:"item"`
	Parsed parser.Result `json:"parsed"`
}

func (h *CommandHandler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := tenant.GroupID(r.Context())

	var req commandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.ListID == "" {
		writeError(w, http.StatusBadRequest, "list_id is required")
		return
	}
	if req.Locale == "" {
		req.Locale = parser.LocaleID
	}

	list, err := h.engine.GetList(r.Context(), req.ListID)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get list")
		return
	}
	if list == nil || list.OwnerGroupID != groupID {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	parsed := parser.Parse(req.Text, req.Locale)

	item, err := h.engine.AddItem(r.Context(), groupID, req.ListID, parsed.Name, parsed.Quantity, parsed.Unit)
	if errors.Is(err, engine.ErrInvalidQuantity) {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	if err != nil {
		h.logger.Error("add parsed item", "error", err, "text", req.Text)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	h.logger.Debug("command parsed", "text", req.Text, "locale", req.Locale,
		"name", parsed.Name, "quantity", parsed.Quantity, "unit", parsed.Unit)
	h.hub.Broadcast(ws.NewMessage(groupID, "item", "created", item.ID))
	writeJSON(w, http.StatusCreated, commandResponse{Item: item, Parsed: parsed})
}
