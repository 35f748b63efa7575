package usecase

import (
	"testing"
	"time"

	authdto "github.com/kranuabs13/Emailtrackmaster/internal/auth/dto"
	"github.com/kranuabs13/Emailtrackmaster/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	uc := NewAuthUsecase(testConfig())

	resp, err := uc.CreateSession(&authdto.SessionRequest{Email: "me@corp.com"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if resp.UserEmail != "me@corp.com" {
		t.Errorf("UserEmail = %q, want me@corp.com", resp.UserEmail)
	}

	email, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if email != "me@corp.com" {
		t.Errorf("validated email = %q, want me@corp.com", email)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthUsecase(testConfig())
	resp, err := issuer.CreateSession(&authdto.SessionRequest{Email: "me@corp.com"})
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewAuthUsecase(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	if _, err := verifier.ValidateToken(resp.AccessToken); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	uc := NewAuthUsecase(testConfig())
	if _, err := uc.ValidateToken("not-a-jwt"); err == nil {
		t.Error("malformed token must not validate")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	uc := NewAuthUsecase(&config.Config{JWTSecret: "test-secret", JWTExpiry: -time.Minute})
	resp, err := uc.CreateSession(&authdto.SessionRequest{Email: "me@corp.com"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.ValidateToken(resp.AccessToken); err == nil {
		t.Error("expired token must not validate")
	}
}
