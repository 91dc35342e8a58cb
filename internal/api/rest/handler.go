package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/talenthub/admin-api/internal/identity"
	"github.com/talenthub/admin-api/internal/reporting"
	"github.com/talenthub/admin-api/internal/telemetry"
	"github.com/talenthub/admin-api/pkg/model"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// Default request timeout; bounds every fan-out read issued downstream via
// the request context.
const defaultRequestTimeout = 30 * time.Second

// Default body size limit for the user update endpoint.
const defaultMaxBodySize = 1 << 20 // 1MB

// StorePinger is the slice of the storage provider the health endpoint
// needs.
type StorePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	reports   reporting.Service
	auth      *identity.Verifier
	telemetry telemetry.Provider
	store     StorePinger
}

func NewHandler(reports reporting.Service, auth *identity.Verifier, tel telemetry.Provider, store StorePinger) *Handler {
	if auth == nil {
		panic("identity verifier cannot be nil")
	}
	return &Handler{
		reports:   reports,
		auth:      auth,
		telemetry: tel,
		store:     store,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	admin := func(fn http.HandlerFunc) http.HandlerFunc {
		return withRequestID(withRecover(withTimeout(h.adminOnly(fn), defaultRequestTimeout)))
	}

	mux.HandleFunc("GET /api/v1/admin/users", admin(h.handleListUsers))
	mux.HandleFunc("GET /api/v1/admin/users/{id}", admin(h.handleGetUser))
	mux.HandleFunc("PATCH /api/v1/admin/users/{id}", admin(maxBodySize(h.handleUpdateUser, defaultMaxBodySize)))
	mux.HandleFunc("DELETE /api/v1/admin/users/{id}", admin(h.handleDeleteUser))

	mux.HandleFunc("GET /api/v1/admin/graduates", admin(h.handleListGraduates))
	mux.HandleFunc("GET /api/v1/admin/jobs", admin(h.handleListJobs))
	mux.HandleFunc("GET /api/v1/admin/matches", admin(h.handleListMatches))
	mux.HandleFunc("GET /api/v1/admin/applications", admin(h.handleListApplications))

	mux.HandleFunc("GET /api/v1/admin/stats", admin(h.handleStats))
	mux.HandleFunc("GET /api/v1/admin/activity", admin(h.handleActivity))

	// Health check (no auth, minimal timeout)
	mux.HandleFunc("GET /health", withRequestID(withRecover(withTimeout(h.handleHealth, 5*time.Second))))
}

// adminOnly validates the caller's token and requires a verified admin.
// Auth failures use the same envelope as every other error response.
func (h *Handler) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.auth.Authenticate(r)
		if err != nil {
			writeFailure(w, http.StatusUnauthorized, authFailureMessage(err))
			return
		}

		ctx := identity.ContextWithClaims(r.Context(), claims)
		if !identity.IsAdmin(ctx) {
			writeFailure(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r.WithContext(ctx))
	}
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrNoToken):
		return "Authorization header required"
	case errors.Is(err, identity.ErrMalformedHeader):
		return "Invalid authorization header format"
	default:
		return "Invalid or expired token"
	}
}

// writeStoreError maps store errors onto the envelope. Server-class faults
// are logged with the operation's identity and surfaced as a generic
// message; only client-class errors echo specifics.
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeFailure(w, http.StatusNotFound, "Not found")
	case errors.Is(err, model.ErrConflict):
		writeFailure(w, http.StatusConflict, "Conflict with existing record")
	case errors.Is(err, model.ErrInvalidArgument):
		writeFailure(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUnavailable):
		logStoreFault(r, op, err)
		writeFailure(w, http.StatusServiceUnavailable, "Service unavailable")
	default:
		logStoreFault(r, op, err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
	}
}

func logStoreFault(r *http.Request, op string, err error) {
	slog.Error("Store operation failed",
		"op", op,
		"error", err,
		"request_id", getRequestID(r.Context()),
	)
}

// withRequestID adds a unique request ID to the context and response headers.
func withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next(w, r.WithContext(ctx))
	}
}

func getRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// withRecover catches panics, logs the stack trace and returns a 500.
func withRecover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"error", err,
					"stack", string(debug.Stack()),
					"request_id", getRequestID(r.Context()),
				)
				writeFailure(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next(w, r)
	}
}

// withTimeout bounds the request, and through its context every concurrent
// store read it fans out.
func withTimeout(next http.HandlerFunc, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

// maxBodySize wraps a handler with request body size limiting.
func maxBodySize(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}
