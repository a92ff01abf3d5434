// Package tokens issues and verifies the bearer credentials the API
// authenticates with: HS256 JWTs carrying {principal id, role, society id}
// with a fixed validity window.
//
// The signing secret is an explicit constructor argument. There is no
// package-level state; the bootstrap builds one Service from config and
// hands it to the handlers and middleware that need it.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the credential validity window.
const DefaultTTL = 7 * 24 * time.Hour

var (
	// ErrExpired is returned for structurally valid tokens past their expiry.
	ErrExpired = errors.New("token expired")
	// ErrInvalid is returned for malformed tokens, bad signatures, and
	// unexpected signing methods.
	ErrInvalid = errors.New("token invalid")
)

// Claims is the decoded identity a verified token carries.
type Claims struct {
	UserID    string `json:"id"`
	Role      string `json:"role"`
	SocietyID string `json:"societyId,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies credentials with a shared HS256 secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New builds a token service. An empty secret is a configuration error
// and is rejected here so it surfaces at startup, not on first login.
func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("tokens: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue produces a signed bearer string for the given principal.
// societyID may be empty for admins who have not created a society yet.
func (s *Service) Issue(userID, role, societyID string) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		SocietyID: societyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, signing method, and expiry, and returns the
// embedded claims. Expired tokens map to ErrExpired; everything else
// that fails maps to ErrInvalid.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid || claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
