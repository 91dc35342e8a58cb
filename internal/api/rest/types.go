package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talenthub/admin-api/pkg/model"
)

// Response is the uniform envelope every endpoint returns. Key names and
// nesting are format-stable; existing consumers depend on them.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Message string `json:"message,omitempty"`
}

// Meta carries response metadata, currently only pagination.
type Meta struct {
	Pagination *model.PageMeta `json:"pagination,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, data any, meta *Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Success: true, Data: data, Meta: meta}); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
	}
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Success: false, Message: message}); err != nil {
		slog.Warn("Failed to encode error response", "error", err)
	}
}

func pageMeta(meta model.PageMeta) *Meta {
	return &Meta{Pagination: &meta}
}
