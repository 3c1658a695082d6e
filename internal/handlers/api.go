package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/fleetpulse/internal/fleet"
	"github.com/ukydev/fleetpulse/internal/insight"
	"github.com/ukydev/fleetpulse/internal/store"
)

// APIHandler serves the read-only JSON API over the fixture store
type APIHandler struct {
	store    *store.Store
	insights *insight.Requester
	logger   logrus.FieldLogger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(s *store.Store, insights *insight.Requester, logger logrus.FieldLogger) *APIHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &APIHandler{
		store:    s,
		insights: insights,
		logger:   logger,
	}
}

// Health reports liveness
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// ListVehicles returns the vehicles, optionally filtered by ?status=
func (h *APIHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = fleet.All
	}
	h.writeJSON(w, http.StatusOK, fleet.FilterByStatus(h.store.Vehicles(), status))
}

// GetVehicle returns one vehicle by id
func (h *APIHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	v, ok := h.store.Vehicle(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

// ListAlerts returns the full alert feed, optionally filtered by ?type=
func (h *APIHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alertType := r.URL.Query().Get("type")
	if alertType == "" {
		alertType = fleet.All
	}
	h.writeJSON(w, http.StatusOK, fleet.FilterAlertsByType(h.store.AlertFeed(), alertType))
}

// GetAlert returns one alert of the feed by id
func (h *APIHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	a, ok := h.store.Alert(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Alert not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

// Stats returns the dashboard summary cards
func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Stats())
}

// Summary returns aggregates computed over the fleet
func (h *APIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, fleet.Summarize(h.store.Vehicles(), h.store.AlertFeed()))
}

// Drivers returns the drivers directory
func (h *APIHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Drivers())
}

// Insight generates a fleet insight
func (h *APIHandler) Insight(w http.ResponseWriter, r *http.Request) {
	text := h.insights.GenerateInsight(r.Context(), h.store.Vehicles())
	h.writeJSON(w, http.StatusOK, map[string]string{"insight": text})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.WithError(err).Error("Failed to encode response")
	}
}
