package utils

import (
	"testing"
	"time"
)

func init() {
	SetJWTSecret("jwt-test-secret")
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "sbennell", "admin", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, expected 42", claims.UserID)
	}
	if claims.Username != "sbennell" {
		t.Errorf("Username = %q, expected %q", claims.Username, "sbennell")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, expected %q", claims.Role, "admin")
	}
}

func TestGenerateTokenDistinctPerUser(t *testing.T) {
	token1, _ := GenerateToken(1, "alice", "admin", 24)
	token2, _ := GenerateToken(2, "bob", "user", 24)

	if token1 == token2 {
		t.Error("different users should produce different tokens")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{
		"",
		"invalid",
		"not.a.token",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
	} {
		if _, err := ParseToken(token); err == nil {
			t.Errorf("ParseToken(%q) should return error", token)
		}
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("signing-secret")
	token, _ := GenerateToken(1, "user", "admin", 24)

	SetJWTSecret("verification-secret")
	_, err := ParseToken(token)

	SetJWTSecret("jwt-test-secret")

	if err == nil {
		t.Error("ParseToken should fail with wrong secret")
	}
}

func TestTokenExpiration(t *testing.T) {
	token, _ := GenerateToken(1, "user", "admin", 1)
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}

	expiresAt := claims.ExpiresAt.Time
	now := time.Now()
	if expiresAt.Before(now) {
		t.Error("token expired immediately")
	}

	diff := expiresAt.Sub(now.Add(time.Hour))
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration off by more than a minute: %v", diff)
	}
}
