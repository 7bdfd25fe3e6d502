package websocket

import (
	"log/slog"
	"net/http"
	"strings"

	ws "github.com/coder/websocket"
)

// HandleWebSocket upgrades connections and runs them as hub clients. The
// owner group comes from the "group" query parameter because browser
// WebSocket clients cannot set request headers.
func HandleWebSocket(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := strings.TrimSpace(r.URL.Query().Get("group"))
		if groupID == "" {
			http.Error(w, "missing group parameter", http.StatusBadRequest)
			return
		}

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // household LAN, any origin
		})
		if err != nil {
			logger.Warn("websocket accept", "error", err)
			return
		}

		NewClient(hub, conn, groupID).Run(r.Context())
	}
}
