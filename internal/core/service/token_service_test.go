package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1", domain.RoleProjectLead)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Role != domain.RoleProjectLead {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Hand-craft a token whose expiry is in the past, signed with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user_1",
		"role":    domain.RoleDeveloper,
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("other-secret", time.Hour)
	svc := NewTokenService("secret", time.Hour)

	token, err := issuer.Issue("user_1", domain.RoleDeveloper)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"user_id": "user_1",
		"role":    domain.RoleDeveloper,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_MissingClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for payload without identity, got %v", err)
	}
}
