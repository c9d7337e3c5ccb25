package auth_test

import (
	"testing"

	"salesmgt/internal/auth"
	"salesmgt/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42, models.RoleExecutive)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 {
		t.Fatalf("want user 42, got %d", claims.UserID)
	}
	if claims.Role != models.RoleExecutive {
		t.Fatalf("want role EX, got %q", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Fatal("want error for malformed token")
	}
}
