package middleware

import (
	"net/http"
	"strings"

	"github.com/bungkust/shoplist/internal/tenant"
)

// GroupHeader names the request header carrying the owner-group identifier.
// Authentication lives outside this service; the gateway in front of it is
// trusted to have resolved the caller to a group.
const GroupHeader = "X-Group-ID"

// RequireGroup rejects requests without an owner-group header and puts the
// group into the request context for handlers and the engine.
func RequireGroup(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupID := strings.TrimSpace(r.Header.Get(GroupHeader))
		if groupID == "" {
			http.Error(w, "missing "+GroupHeader+" header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(tenant.WithGroup(r.Context(), groupID)))
	})
}
