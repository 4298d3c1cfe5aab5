package jwt

import (
	"testing"
	"time"

	"homeo-clinic-api/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService()
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "doctor@clinic.test")
	if err != nil {
		t.Fatal(err)
	}
	if tokenID == "" {
		t.Error("empty token ID")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "doctor@clinic.test" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID mismatch: %q vs %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), "doctor@clinic.test")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	s := testService()
	token, _, err := s.GenerateAccessToken(uuid.New(), "doctor@clinic.test")
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	s := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: -time.Minute,
	})

	token, _, err := s.GenerateAccessToken(uuid.New(), "doctor@clinic.test")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	s := testService()
	if _, err := s.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
