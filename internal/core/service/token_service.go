package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// TokenService issues and verifies HS256 session tokens. It is stateless:
// tokens are never persisted and cannot be revoked before expiry. The signing
// secret and TTL are injected at construction so tests can fix both.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the user's id and role.
func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expired tokens fail with ErrTokenExpired; anything else wrong with the
// token (bad signature, wrong algorithm, malformed payload) fails with
// ErrInvalidToken. No clock-skew tolerance, no refresh path.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: userID, Role: role}, nil
}
