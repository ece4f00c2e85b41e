package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestParseAccessToken_ValidToken(t *testing.T) {
	raw := signTestToken(t, Claims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ParseAccessToken(raw)
	if err != nil {
		t.Fatalf("ParseAccessToken() unexpected error = %v", err)
	}

	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %q", claims.Email)
	}
}

func TestParseAccessToken_MissingEmailClaim(t *testing.T) {
	raw := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "some-subject",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := ParseAccessToken(raw)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for missing email claim, got %v", err)
	}
}

func TestParseAccessToken_ExpiredToken(t *testing.T) {
	raw := signTestToken(t, Claims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := ParseAccessToken(raw)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := ParseAccessToken(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseAccessToken(%q) expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestParseAccessToken_NoExpiryStillValid(t *testing.T) {
	raw := signTestToken(t, Claims{Email: "user@example.com"})

	if _, err := ParseAccessToken(raw); err != nil {
		t.Errorf("tokens without an expiry should pass local validation, got %v", err)
	}
}
