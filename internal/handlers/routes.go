package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/fleetpulse/internal/insight"
	"github.com/ukydev/fleetpulse/internal/middleware"
	"github.com/ukydev/fleetpulse/internal/session"
	"github.com/ukydev/fleetpulse/internal/store"
)

// Options configures NewRouter.
type Options struct {
	Store             *store.Store
	Sessions          *session.Service
	Insights          *insight.Requester
	Logger            logrus.FieldLogger
	InsightRateLimit  int
	InsightRateWindow time.Duration
}

// NewRouter wires every page, navigation and API route.
func NewRouter(opts Options) *mux.Router {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	dashboard := NewDashboardHandler(opts.Store, opts.Sessions, opts.Insights, logger)
	api := NewAPIHandler(opts.Store, opts.Insights, logger)
	sessions := middleware.NewSessionMiddleware(opts.Sessions, opts.Store, logger)
	limiter := middleware.NewRateLimitMiddleware(logger)
	limit := limiter.RateLimit(opts.InsightRateLimit, opts.InsightRateWindow)

	logRequests := middleware.RequestLogger(logger)

	r := mux.NewRouter()
	r.Use(logRequests)
	r.Use(middleware.Recoverer(logger))
	r.Use(sessions.LoadState)

	// mux skips middleware on unmatched requests
	r.NotFoundHandler = logRequests(http.NotFoundHandler())
	r.MethodNotAllowedHandler = logRequests(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))

	r.HandleFunc("/", dashboard.Index).Methods(http.MethodGet)
	r.HandleFunc("/nav/section/{name}", dashboard.SelectSection).Methods(http.MethodGet)
	r.HandleFunc("/nav/vehicle/{id}", dashboard.SelectVehicle).Methods(http.MethodGet)
	r.HandleFunc("/nav/back", dashboard.Back).Methods(http.MethodGet)
	r.Handle("/insight", limit(http.HandlerFunc(dashboard.GenerateInsight))).Methods(http.MethodPost)

	r.HandleFunc("/health", api.Health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/vehicles", api.ListVehicles).Methods(http.MethodGet)
	v1.HandleFunc("/vehicles/{id}", api.GetVehicle).Methods(http.MethodGet)
	v1.HandleFunc("/alerts", api.ListAlerts).Methods(http.MethodGet)
	v1.HandleFunc("/alerts/{id}", api.GetAlert).Methods(http.MethodGet)
	v1.HandleFunc("/stats", api.Stats).Methods(http.MethodGet)
	v1.HandleFunc("/summary", api.Summary).Methods(http.MethodGet)
	v1.HandleFunc("/drivers", api.Drivers).Methods(http.MethodGet)
	v1.Handle("/insight", limit(http.HandlerFunc(api.Insight))).Methods(http.MethodPost)

	return r
}
