package mockdirectory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"playerid/internal/platform/middleware"
)

// NewRouter builds the mock directory router. When gatherer is non-nil its
// metrics are exposed on /metrics.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))
	h.Register(r)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ProfileBaseURL returns the username endpoint base for a server rooted at root.
func ProfileBaseURL(root string) string { return root + ProfilePath }

// SessionBaseURL returns the identifier endpoint base for a server rooted at root.
func SessionBaseURL(root string) string { return root + SessionPath }
