package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})

	token, err := svc.Issue("user-1", "maria@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id %q", claims.UserID)
	}
	if claims.Correo != "maria@example.com" {
		t.Fatalf("unexpected correo %q", claims.Correo)
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})

	if _, err := svc.Verify(context.Background(), "   "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	emisor := New(Config{Secret: "secreto-a"})
	receptor := New(Config{Secret: "secreto-b"})

	token, err := emisor.Issue("user-1", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := receptor.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := New(Config{Secret: "test-secret", TTL: time.Hour})

	emitido := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return emitido }

	token, err := svc.Issue("user-1", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return emitido.Add(2 * time.Hour) }
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestIssue_RequiresUserID(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})

	if _, err := svc.Issue("  ", ""); err == nil {
		t.Fatalf("expected error para user id vacio")
	}
}
