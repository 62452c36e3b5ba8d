package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/minhdn/gameshop/internal/domain/model"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	token, err := strategy.IssueToken(42, model.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	userID, role, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
	if role != model.RoleAdmin {
		t.Fatalf("expected admin role, got %s", role)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("too:few:parts")),
		base64.StdEncoding.EncodeToString([]byte("a:user:b:c")),
	}
	for _, token := range cases {
		if _, _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected invalid token error for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyRejectsTamperedSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token, err := strategy.IssueToken(7, model.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	parts := strings.Split(string(raw), ":")
	parts[0] = "8"
	forged := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))

	if _, _, err := strategy.ParseToken(forged); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsUnknownRole(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token, err := strategy.IssueToken(7, model.Role("root"))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsExpired(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	token, err := strategy.IssueToken(7, model.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	if NewHMACStrategy("secret", Options{}).Name() != "hmac" {
		t.Fatal("unexpected strategy name")
	}
}
