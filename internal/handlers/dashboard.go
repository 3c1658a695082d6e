package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/fleetpulse/internal/insight"
	"github.com/ukydev/fleetpulse/internal/middleware"
	"github.com/ukydev/fleetpulse/internal/router"
	"github.com/ukydev/fleetpulse/internal/session"
	"github.com/ukydev/fleetpulse/internal/store"
)

// DashboardHandler serves the server-rendered views and navigation
type DashboardHandler struct {
	store    *store.Store
	sessions *session.Service
	insights *insight.Requester
	logger   logrus.FieldLogger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(s *store.Store, sessions *session.Service, insights *insight.Requester, logger logrus.FieldLogger) *DashboardHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DashboardHandler{
		store:    s,
		sessions: sessions,
		insights: insights,
		logger:   logger,
	}
}

// Index renders the view selected by the session state
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, r, stateFrom(r), pageOptions{
		Filter:      q.Get("status"),
		SettingsTab: q.Get("tab"),
	})
}

// SelectSection switches the active section
func (h *DashboardHandler) SelectSection(w http.ResponseWriter, r *http.Request) {
	next := stateFrom(r).SelectSection(mux.Vars(r)["name"])
	h.saveAndRedirect(w, r, next)
}

// SelectVehicle opens a vehicle's detail view. Unknown ids leave the state unchanged.
func (h *DashboardHandler) SelectVehicle(w http.ResponseWriter, r *http.Request) {
	next := stateFrom(r).SelectVehicle(mux.Vars(r)["id"], h.store)
	h.saveAndRedirect(w, r, next)
}

// Back leaves the detail view
func (h *DashboardHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.saveAndRedirect(w, r, stateFrom(r).ClearSelection())
}

// GenerateInsight requests a fleet insight and renders it on the dashboard
func (h *DashboardHandler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	state := stateFrom(r).SelectSection(string(router.SectionDashboard))
	if err := h.sessions.Save(w, state); err != nil {
		h.logger.WithError(err).Error("Failed to save session")
	}

	text := h.insights.GenerateInsight(r.Context(), h.store.Vehicles())
	h.render(w, r, state, pageOptions{Insight: text})
}

func (h *DashboardHandler) saveAndRedirect(w http.ResponseWriter, r *http.Request, next router.State) {
	if err := h.sessions.Save(w, next); err != nil {
		h.logger.WithError(err).Error("Failed to save session")
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, state router.State, opts pageOptions) {
	page := buildPage(h.store, state, opts)

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "layout", page); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"view":       page.View,
			"request_id": middleware.GetRequestID(r.Context()),
		}).Error("Failed to render view")
		http.Error(w, "Failed to render view", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func stateFrom(r *http.Request) router.State {
	if state, ok := middleware.GetStateFromContext(r.Context()); ok {
		return state
	}
	return router.Initial()
}
