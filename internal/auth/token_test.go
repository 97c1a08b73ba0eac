package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := Issue("64f0c2a1b3d4e5f601234567", "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := Verify(token, testSecret)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != "64f0c2a1b3d4e5f601234567" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "64f0c2a1b3d4e5f601234567")
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@x.com")
	}
}

func TestVerifyExpired(t *testing.T) {
	token, err := Issue("u1", "a@x.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = Verify(token, testSecret)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Verify() error = %v, want ErrExpired", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Issue("u1", "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = Verify(token, "other-secret")
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Verify() error = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	token, err := Issue("u1", "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Corrupt the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	parts[1] = "eyJpZCI6ImhhY2tlZCJ9"
	_, err = Verify(strings.Join(parts, "."), testSecret)
	if err == nil {
		t.Fatal("Verify() accepted a tampered token")
	}
	if !errors.Is(err, ErrInvalidSignature) && !errors.Is(err, ErrMalformed) {
		t.Errorf("Verify() error = %v, want ErrInvalidSignature or ErrMalformed", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b"} {
		if _, err := Verify(tok, testSecret); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q) error = %v, want ErrMalformed", tok, err)
		}
	}
}
