package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ukydev/fleetpulse/internal/router"
)

// CookieName is the cookie carrying the signed navigation state.
const CookieName = "fleetpulse_session"

const defaultTTL = 12 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrEmptySecret  = errors.New("session secret is empty")
)

// Service signs and verifies navigation state tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a session service. A non-positive ttl uses the default.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Encode signs state into a token.
func (s *Service) Encode(state router.State) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"section": string(state.ActiveSection),
		"vehicle": state.SelectedVehicleID,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies a token and returns the state it carries.
func (s *Service) Decode(tokenString string) (router.State, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return router.State{}, ErrExpiredToken
		}
		return router.State{}, ErrInvalidToken
	}
	if !token.Valid {
		return router.State{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return router.State{}, ErrInvalidToken
	}
	section, ok := claims["section"].(string)
	if !ok {
		return router.State{}, ErrInvalidToken
	}
	vehicle, ok := claims["vehicle"].(string)
	if !ok {
		return router.State{}, ErrInvalidToken
	}

	return router.State{
		ActiveSection:     router.ParseSection(section),
		SelectedVehicleID: vehicle,
	}, nil
}

// Load returns the state stored in the request cookie. A missing, expired
// or tampered cookie yields the initial state together with the reason.
func (s *Service) Load(r *http.Request) (router.State, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return router.Initial(), nil
	}
	state, err := s.Decode(c.Value)
	if err != nil {
		return router.Initial(), err
	}
	return state, nil
}

// Save writes state to the response cookie.
func (s *Service) Save(w http.ResponseWriter, state router.State) error {
	token, err := s.Encode(state)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
