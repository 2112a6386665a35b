package service

import (
	"errors"
	"testing"
	"time"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.Identity{UserID: "user-1", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity.UserID != "user-1" || identity.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue(ports.Identity{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just before expiry the token is still valid.
	svc.now = func() time.Time { return issued.Add(time.Hour - time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token should still verify before expiry: %v", err)
	}

	// Past the expiry instant it is not.
	svc.now = func() time.Time { return issued.Add(time.Hour + time.Minute) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.Identity{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte of the signature.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := svc.Verify(string(tampered)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(ports.Identity{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
