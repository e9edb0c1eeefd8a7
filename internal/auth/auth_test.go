package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestSharedPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	a, err := NewSharedPasswordAuthenticator("demo123", "")
	if err != nil {
		t.Fatalf("NewSharedPasswordAuthenticator: %v", err)
	}
	if err := a.Authenticate(ctx, "demo123"); err != nil {
		t.Errorf("expected correct password to pass, got %v", err)
	}
	if err := a.Authenticate(ctx, "Demo123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := a.Authenticate(ctx, ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestSharedPasswordAuthenticator_FromHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}

	// The hash wins over a plaintext password.
	a, err := NewSharedPasswordAuthenticator("ignored", string(hash))
	if err != nil {
		t.Fatalf("NewSharedPasswordAuthenticator: %v", err)
	}
	if err := a.Authenticate(context.Background(), "s3cret"); err != nil {
		t.Errorf("expected hashed password to pass, got %v", err)
	}
	if err := a.Authenticate(context.Background(), "ignored"); err == nil {
		t.Error("expected plaintext password to be ignored when a hash is set")
	}

	if _, err := NewSharedPasswordAuthenticator("", "not-a-hash"); err == nil {
		t.Error("expected invalid hash to be rejected")
	}
	if _, err := NewSharedPasswordAuthenticator("", ""); !errors.Is(err, ErrNoCredential) {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != SharedSubject {
		t.Errorf("subject = %q, want %q", claims.Subject, SharedSubject)
	}
	if claims.ExpiresAt != nil {
		t.Error("tokens must not expire")
	}

	other := NewJWTManager("other-secret")
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
	if _, err := m.Validate("dummy_token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestJWTManager_RejectsOtherSubjectsAndAlgorithms(t *testing.T) {
	m := NewJWTManager("test-secret")

	if _, err := m.Validate(""); !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	wrongSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := m.Validate(wrongSubject); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign subject, got %v", err)
	}

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: SharedSubject}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := m.Validate(wrongAlg); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}
