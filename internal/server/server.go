package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bungkust/shoplist/internal/engine"
	"github.com/bungkust/shoplist/internal/handler"
	"github.com/bungkust/shoplist/internal/middleware"
	"github.com/bungkust/shoplist/internal/storage"
	ws "github.com/bungkust/shoplist/internal/websocket"
)

type Server struct {
	hub         *ws.Hub
	listH       *handler.ListHandler
	itemH       *handler.ItemHandler
	commandH    *handler.CommandHandler
	historyH    *handler.HistoryHandler
	storeH      *handler.StoreHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(store storage.Store, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	eng := engine.New(store, logger.With("component", "engine"))

	return &Server{
		hub:         hub,
		listH:       handler.NewListHandler(eng, hub, logger.With("component", "list")),
		itemH:       handler.NewItemHandler(eng, hub, logger.With("component", "item")),
		commandH:    handler.NewCommandHandler(eng, hub, logger.With("component", "command")),
		historyH:    handler.NewHistoryHandler(eng, hub, logger.With("component", "history")),
		storeH:      handler.NewStoreHandler(eng, logger.With("component", "store")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	outerMux.HandleFunc("GET /health", s.healthHandler)
	outerMux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))

	// API routes - all scoped to an owner group
	apiMux := http.NewServeMux()
	s.registerAPIRoutes(apiMux)
	outerMux.Handle("/api/", middleware.RequireGroup(apiMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) registerAPIRoutes(mux *http.ServeMux) {
	// List routes
	mux.HandleFunc("GET /api/lists", s.listH.List)
	mux.HandleFunc("POST /api/lists", s.listH.Create)
	mux.HandleFunc("PUT /api/lists/{id}", s.listH.Update)
	mux.HandleFunc("DELETE /api/lists/{id}", s.listH.Delete)

	// Item routes
	mux.HandleFunc("GET /api/lists/{list_id}/items", s.itemH.List)
	mux.HandleFunc("POST /api/lists/{list_id}/items", s.itemH.Create)
	mux.HandleFunc("POST /api/items/{id}/toggle", s.itemH.Toggle)
	mux.HandleFunc("DELETE /api/items/{id}", s.itemH.Delete)

	// Checkout and history
	mux.HandleFunc("POST /api/items/{id}/checkout", s.historyH.Checkout)
	mux.HandleFunc("GET /api/history", s.historyH.List)

	// Store autocomplete
	mux.HandleFunc("GET /api/stores", s.storeH.Suggestions)
	mux.HandleFunc("POST /api/stores", s.storeH.Create)

	// Free-text command entry, rate limited against transcription bursts
	mux.Handle("POST /api/commands", s.rateLimitedHandler(s.commandH.Create))
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.Handler {
	return middleware.RateLimit(s.rateLimiter, middleware.RealIP, 60, time.Minute)(h)
}
