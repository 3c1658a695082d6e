package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/fleetpulse/internal/router"
	"github.com/ukydev/fleetpulse/internal/session"
	"github.com/ukydev/fleetpulse/internal/store"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	StateContextKey     contextKey = "state"
	RequestIDContextKey contextKey = "request_id"
)

// SessionMiddleware restores the navigation state of each request
type SessionMiddleware struct {
	sessions *session.Service
	vehicles store.VehicleFinder
	logger   logrus.FieldLogger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions *session.Service, vehicles store.VehicleFinder, logger logrus.FieldLogger) *SessionMiddleware {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SessionMiddleware{
		sessions: sessions,
		vehicles: vehicles,
		logger:   logger,
	}
}

// LoadState decodes the session cookie and adds the state to the request
// context. A bad cookie is not an error: the request continues with the
// initial state.
func (m *SessionMiddleware) LoadState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldSkipSession(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		state, err := m.sessions.Load(r)
		if err != nil {
			m.logger.WithError(err).WithField("request_id", GetRequestID(r.Context())).Debug("Discarding session cookie")
		}

		// the selection must still resolve
		if state.HasSelection() {
			if _, ok := m.vehicles.Vehicle(state.SelectedVehicleID); !ok {
				state = state.ClearSelection()
			}
		}

		ctx := context.WithValue(r.Context(), StateContextKey, state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStateFromContext extracts the navigation state from request context
func GetStateFromContext(ctx context.Context) (router.State, bool) {
	state, ok := ctx.Value(StateContextKey).(router.State)
	return state, ok
}

// shouldSkipSession reports whether a path never renders a view
func shouldSkipSession(path string) bool {
	skipPaths := []string{
		"/api/",
		"/health",
	}

	for _, skipPath := range skipPaths {
		if strings.HasPrefix(path, skipPath) {
			return true
		}
	}
	return false
}
