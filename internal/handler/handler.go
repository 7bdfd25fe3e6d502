// Package handler exposes the parser and data engine over a JSON HTTP API.
// Handlers are thin: they decode, resolve the owner group from context,
// delegate to the engine, and broadcast a change notification on success.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// pagedResponse is the envelope for paginated reads. HasMore is derived as
// len(data) == page_size; the last page reports false.
type pagedResponse struct {
	Data     any  `json:"data"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}

func newPagedResponse[T any](data []T, page, pageSize int) pagedResponse {
	if data == nil {
		data = []T{}
	}
	return pagedResponse{
		Data:     data,
		Page:     page,
		PageSize: pageSize,
		HasMore:  len(data) == pageSize,
	}
}

// parsePagination reads zero-based page and page_size query parameters,
// clamping page_size to [1, maxPageSize].
func parsePagination(r *http.Request) (page, pageSize int) {
	page = 0
	pageSize = defaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
