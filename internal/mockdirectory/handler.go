// Package mockdirectory implements the account directory wire protocol over an
// in-memory store. It backs the client tests and the mock-directory binary.
package mockdirectory

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"playerid/pkg/directory"
)

// Route prefixes, matching the public directory layout.
const (
	ProfilePath = "/users/profiles/minecraft"
	SessionPath = "/session/minecraft/profile"
)

// Magic usernames that let tests steer the handler.
const (
	// MalformedName answers 200 with a body that is not a profile.
	MalformedName = "MalformedBody"
	// NoContentName answers 204, as the directory does for some unknown names.
	NoContentName = "NoContent"
)

type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Handler serves profile lookups from a Store.
type Handler struct {
	store   *Store
	logger  *slog.Logger
	metrics *Metrics
	latency time.Duration
}

// Option configures the Handler.
type Option func(*Handler)

// WithLatency delays every lookup to mimic a remote service.
func WithLatency(d time.Duration) Option {
	return func(h *Handler) {
		h.latency = d
	}
}

// WithMetrics records served requests.
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// New creates a handler over store.
func New(store *Store, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{store: store, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the lookup routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get(ProfilePath+"/{name}", h.HandleProfileByName)
	r.Get(SessionPath+"/{id}", h.HandleProfileByID)
	r.Get("/health", h.HandleHealth)
}

// HandleProfileByName handles GET /users/profiles/minecraft/{name}.
func (h *Handler) HandleProfileByName(w http.ResponseWriter, r *http.Request) {
	h.delay()
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		h.writeError(w, r, http.StatusBadRequest, "invalid username")
		return
	}

	switch name {
	case MalformedName:
		h.write(w, r, http.StatusOK, map[string]any{"id": 42, "name": []string{"x"}})
		return
	case NoContentName:
		h.observe(r, http.StatusNoContent)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	profile, ok := h.store.ByName(name)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "Couldn't find any profile with name "+name)
		return
	}
	h.write(w, r, http.StatusOK, toResponse(profile))
}

// HandleProfileByID handles GET /session/minecraft/profile/{id}. Hyphenated
// and hyphenless identifiers are both accepted.
func (h *Handler) HandleProfileByID(w http.ResponseWriter, r *http.Request) {
	h.delay()
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Not a valid UUID: "+chi.URLParam(r, "id"))
		return
	}

	profile, ok := h.store.ByID(id)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "Couldn't find any profile with id "+id.String())
		return
	}
	h.write(w, r, http.StatusOK, toResponse(profile))
}

// HandleHealth reports liveness and the number of stored profiles.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusOK, map[string]any{
		"status":   "healthy",
		"service":  "mock-directory",
		"profiles": h.store.Len(),
	})
}

func (h *Handler) delay() {
	if h.latency > 0 {
		time.Sleep(h.latency)
	}
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, body any) {
	h.observe(r, status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encoding failure cannot change the status.
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.logger.InfoContext(r.Context(), "directory lookup rejected",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
	)
	h.write(w, r, status, errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

func (h *Handler) observe(r *http.Request, status int) {
	route := "other"
	switch {
	case strings.HasPrefix(r.URL.Path, ProfilePath):
		route = "profile_by_name"
	case strings.HasPrefix(r.URL.Path, SessionPath):
		route = "profile_by_id"
	case r.URL.Path == "/health":
		route = "health"
	}
	h.metrics.ObserveResponse(route, status)
}

func toResponse(p directory.Profile) profileResponse {
	return profileResponse{
		ID:   strings.ReplaceAll(p.ID.String(), "-", ""),
		Name: p.Name,
	}
}
