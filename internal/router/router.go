package router

import (
	"net/http"

	"epic-relay-api/internal/handler"
	"epic-relay-api/internal/metrics"
	"epic-relay-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler         *handler.Handler
	AccountHandler  *handler.AccountHandler
	CosmeticHandler *handler.CosmeticHandler
	StaticDir       string
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID",
			"account-id", "device-id", "secret", "display-name"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// PUBLIC routes (no credential required)
	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
		r.Get("/api/v1/health", cfg.Handler.Health)
	}
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	if cfg.AccountHandler != nil {
		r.Get("/device-auth-token", cfg.AccountHandler.DeviceAuthToken)
	}

	// BEARER routes (Authorization header is forwarded to the remote services)
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth)

		if cfg.AccountHandler != nil {
			r.Get("/exchange-get", cfg.AccountHandler.Exchange)
			r.Get("/device-auth-get", cfg.AccountHandler.CreateDeviceAuth)
			r.Post("/device-auth-get", cfg.AccountHandler.CreateDeviceAuth)
			r.Get("/user-lookup", cfg.AccountHandler.Lookup)
		}

		if cfg.CosmeticHandler != nil {
			r.Get("/equip-skin", cfg.CosmeticHandler.EquipSkin)
		}
	})

	// Static front-end - public
	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}
