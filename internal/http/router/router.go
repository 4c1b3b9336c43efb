package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-shipment-bridge/internal/http/handlers"
	appmw "service-shipment-bridge/internal/http/middleware"
	"service-shipment-bridge/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(logger logx.Logger, h *handlers.Handlers, shipment *handlers.ShipmentHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.Observability(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/shipment", shipment.Create)

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
