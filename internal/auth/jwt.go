package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("authorization token required")
)

// SharedSubject is the subject of every token; the gate has no per-user identity.
const SharedSubject = "shared"

// JWTManager signs and checks the HS256 tokens handed out at login.
type JWTManager struct {
	secretKey []byte
	parser    *jwt.Parser
}

// Claims represents the JWT claims of an unlocked session.
type Claims struct {
	jwt.RegisteredClaims
}

// NewJWTManager creates a manager signing with secretKey, which should be
// a strong random string (e.g. 32 bytes).
func NewJWTManager(secretKey string) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithSubject(SharedSubject),
			jwt.WithIssuedAt(),
		),
	}
}

// Generate creates a token for the shared session. Tokens carry no expiry:
// the gate stays open until the client discards the token.
func (m *JWTManager) Generate() (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  SharedSubject,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, algorithm and subject and returns the claims.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := m.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
