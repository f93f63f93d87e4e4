package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	s := NewTokenService("test-secret")

	token, err := s.Issue(map[string]interface{}{"email": "user@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	email, err := EmailFromClaims(claims)
	if err != nil {
		t.Fatalf("EmailFromClaims: %v", err)
	}
	if email != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", email)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(map[string]interface{}{"email": "a@b.c"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewTokenService("secret-b").Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify with wrong secret = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "old@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenService("test-secret").Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify expired token = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := NewTokenService("test-secret").Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q) = %v, want ErrTokenInvalid", tok, err)
		}
	}
}

func TestEmailFromClaimsMissing(t *testing.T) {
	if _, err := EmailFromClaims(jwt.MapClaims{"sub": "123"}); err == nil {
		t.Error("expected error for missing email claim")
	}
}
