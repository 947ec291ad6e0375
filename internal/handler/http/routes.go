package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.middleware)

	router.Get("/healthz", h.getServerVersion)
	router.Method("GET", "/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	router.Route("/api/bins", func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Use(withGZip)
		r.Use(h.withBodyLimit)

		r.Post("/{id}", h.createBin)
		r.Get("/{id}", h.getBin)
		r.Put("/{id}", h.putBin)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
