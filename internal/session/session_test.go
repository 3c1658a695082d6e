package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleetpulse/internal/router"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService("test-secret", time.Hour)
	require.NoError(t, err)
	return s
}

func TestNewService(t *testing.T) {
	s, err := NewService("secret", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTTL, s.ttl)

	s, err = NewService("", time.Hour)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestService_RoundTrip(t *testing.T) {
	s := newService(t)

	tests := []struct {
		name  string
		state router.State
	}{
		{"initial", router.Initial()},
		{"section", router.State{ActiveSection: router.SectionAnalytics}},
		{"selection", router.State{ActiveSection: router.SectionMap, SelectedVehicleID: "v3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := s.Encode(tt.state)
			require.NoError(t, err)

			got, err := s.Decode(token)
			require.NoError(t, err)
			assert.Equal(t, tt.state, got)
		})
	}
}

func TestService_DecodeRejectsTampering(t *testing.T) {
	s := newService(t)
	token, err := s.Encode(router.State{ActiveSection: router.SectionFleet})
	require.NoError(t, err)

	other, err := NewService("another-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Decode(token)
	assert.Equal(t, ErrInvalidToken, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = s.Decode(tampered)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = s.Decode("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_DecodeExpired(t *testing.T) {
	s := newService(t)
	claims := jwt.MapClaims{
		"section": "fleet",
		"vehicle": "",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.Decode(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestService_DecodeUnknownSection(t *testing.T) {
	s := newService(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"section": "billing",
		"vehicle": "",
		"exp":     time.Now().Add(time.Minute).Unix(),
	}).SignedString(s.secret)
	require.NoError(t, err)

	got, err := s.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, router.Initial(), got)
}

func TestService_DecodeMissingClaims(t *testing.T) {
	s := newService(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.Decode(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_SaveAndLoad(t *testing.T) {
	s := newService(t)
	state := router.State{ActiveSection: router.SectionDrivers, SelectedVehicleID: "v1"}

	rec := httptest.NewRecorder()
	require.NoError(t, s.Save(rec, state))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	got, err := s.Load(req)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestService_LoadFallsBackToInitial(t *testing.T) {
	s := newService(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got, err := s.Load(req)
	assert.NoError(t, err)
	assert.Equal(t, router.Initial(), got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	got, err = s.Load(req)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, router.Initial(), got)
}
