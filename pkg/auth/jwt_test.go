package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret-with-enough-entropy!", 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	access, refresh, err := m.IssuePair(userID, "a@example.com")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	t.Run("access token verifies as access", func(t *testing.T) {
		claims, err := m.Verify(access, TokenTypeAccess)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims.UserID != userID || claims.Email != "a@example.com" {
			t.Fatalf("claims mismatch: %+v", claims)
		}
	})

	t.Run("refresh token verifies as refresh", func(t *testing.T) {
		claims, err := m.Verify(refresh, TokenTypeRefresh)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims.TokenType != TokenTypeRefresh {
			t.Fatalf("unexpected type %q", claims.TokenType)
		}
	})

	t.Run("refresh token rejected where access is expected", func(t *testing.T) {
		if _, err := m.Verify(refresh, TokenTypeAccess); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := m.Verify("not.a.token", TokenTypeAccess); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewTokenManager("a-completely-different-secret!!!", 15*time.Minute, 7*24*time.Hour)
		if _, err := other.Verify(access, TokenTypeAccess); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestTokenManagerExpiry(t *testing.T) {
	m := NewTokenManager("test-secret-with-enough-entropy!", -time.Minute, -time.Minute)
	access, err := m.IssueAccess(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(access, TokenTypeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestPasswordHelpers(t *testing.T) {
	t.Run("short password rejected", func(t *testing.T) {
		if err := ValidatePassword("short"); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("hash and check round trip", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery", 4)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		if !CheckPassword(hash, "correct horse battery") {
			t.Fatal("matching password rejected")
		}
		if CheckPassword(hash, "wrong password") {
			t.Fatal("wrong password accepted")
		}
	})
}
