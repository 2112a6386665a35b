package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

// TokenService issues and verifies HS256-signed bearer tokens. It is
// stateless: validity is a pure function of signature and expiry, so there
// is no revocation list and nothing to persist.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to
// one hour.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a token embedding the identity and an absolute expiry.
func (s *TokenService) Issue(identity ports.Identity) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"userID": identity.UserID,
		"email":  identity.Email,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded identity.
func (s *TokenService) Verify(token string) (ports.Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Identity{}, domain.ErrTokenExpired
		}
		return ports.Identity{}, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return ports.Identity{}, domain.ErrInvalidToken
	}

	userID, _ := claims["userID"].(string)
	if userID == "" {
		return ports.Identity{}, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return ports.Identity{UserID: userID, Email: email}, nil
}
