package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/talenthub/admin-api/internal/reporting"
)

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var f reporting.UserListFilter
	reporting.DecodeQuery(r.URL.Query(), &f)

	users, meta, err := h.reports.ListUsers(r.Context(), f, reporting.DecodePage(r.URL.Query()))
	if err != nil {
		writeStoreError(w, r, "admin.users.list", err)
		return
	}
	writeSuccess(w, http.StatusOK, users, pageMeta(meta))
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeFailure(w, http.StatusBadRequest, "Missing user ID")
		return
	}

	user, err := h.reports.GetUser(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "admin.users.get", err)
		return
	}
	writeSuccess(w, http.StatusOK, user, nil)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeFailure(w, http.StatusBadRequest, "Missing user ID")
		return
	}

	var upd reporting.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.reports.UpdateUser(r.Context(), id, upd)
	if err != nil {
		writeStoreError(w, r, "admin.users.update", err)
		return
	}
	writeSuccess(w, http.StatusOK, user, nil)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeFailure(w, http.StatusBadRequest, "Missing user ID")
		return
	}

	user, err := h.reports.DeleteUser(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "admin.users.delete", err)
		return
	}
	writeSuccess(w, http.StatusOK, user, nil)
}

func (h *Handler) handleListGraduates(w http.ResponseWriter, r *http.Request) {
	var f reporting.GraduateListFilter
	reporting.DecodeQuery(r.URL.Query(), &f)

	graduates, meta, err := h.reports.ListGraduates(r.Context(), f, reporting.DecodePage(r.URL.Query()))
	if err != nil {
		writeStoreError(w, r, "admin.graduates.list", err)
		return
	}
	writeSuccess(w, http.StatusOK, graduates, pageMeta(meta))
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	var f reporting.JobListFilter
	reporting.DecodeQuery(r.URL.Query(), &f)

	jobs, meta, err := h.reports.ListJobs(r.Context(), f, reporting.DecodePage(r.URL.Query()))
	if err != nil {
		writeStoreError(w, r, "admin.jobs.list", err)
		return
	}
	writeSuccess(w, http.StatusOK, jobs, pageMeta(meta))
}

func (h *Handler) handleListMatches(w http.ResponseWriter, r *http.Request) {
	var f reporting.MatchListFilter
	reporting.DecodeQuery(r.URL.Query(), &f)

	matches, meta, err := h.reports.ListMatches(r.Context(), f, reporting.DecodePage(r.URL.Query()))
	if err != nil {
		writeStoreError(w, r, "admin.matches.list", err)
		return
	}
	writeSuccess(w, http.StatusOK, matches, pageMeta(meta))
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	var f reporting.ApplicationListFilter
	reporting.DecodeQuery(r.URL.Query(), &f)

	applications, meta, err := h.reports.ListApplications(r.Context(), f, reporting.DecodePage(r.URL.Query()))
	if err != nil {
		writeStoreError(w, r, "admin.applications.list", err)
		return
	}
	writeSuccess(w, http.StatusOK, applications, pageMeta(meta))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.DashboardStats(r.Context())
	if err != nil {
		writeStoreError(w, r, "admin.stats", err)
		return
	}
	writeSuccess(w, http.StatusOK, stats, nil)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	events, err := h.reports.RecentActivity(r.Context())
	if err != nil {
		writeStoreError(w, r, "admin.activity", err)
		return
	}
	writeSuccess(w, http.StatusOK, events, nil)
}

type healthPayload struct {
	Status        string `json:"status"`
	Store         string `json:"store"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	GoVersion     string `json:"goVersion"`
	Goroutines    int    `json:"goroutines"`
	HeapBytes     uint64 `json:"heapBytes"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			writeFailure(w, http.StatusServiceUnavailable, "Store unreachable")
			return
		}
	}

	payload := healthPayload{Status: "ok", Store: "ok"}
	if h.telemetry != nil {
		payload.UptimeSeconds = int64(h.telemetry.Uptime() / time.Second)
		payload.GoVersion = h.telemetry.GoVersion()
		payload.Goroutines = h.telemetry.NumGoroutine()
		payload.HeapBytes = h.telemetry.HeapAllocBytes()
	}
	writeSuccess(w, http.StatusOK, payload, nil)
}
