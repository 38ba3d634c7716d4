package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookingadmin/internal/admin"
	"bookingadmin/internal/api"
	"bookingadmin/pkg/config"
	"bookingadmin/pkg/metrics"
)

type Dependencies struct {
	Cfg      config.Config
	Store    admin.Store
	Notifier admin.Notifier
	Metrics  *metrics.Metrics
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Metrics endpoint (infra-facing, no admin key).
	r.Handle(deps.Cfg.MetricsPath, promhttp.Handler())

	adminHandlers := admin.Handlers{
		Cfg:      deps.Cfg,
		Store:    deps.Store,
		Notifier: deps.Notifier,
	}

	// The operator UI talks to a single endpoint and selects behavior via an
	// action parameter, so the method dispatch lives in the handler rather
	// than the router.
	r.Group(func(r chi.Router) {
		if deps.Metrics != nil {
			r.Use(deps.Metrics.Middleware)
		}
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", api.AdminKeyHeader},
		}))
		r.Use(api.AdminKeyAuth(deps.Cfg.AdminKey))

		r.HandleFunc("/", adminHandlers.Handle)
	})

	return r
}
