package utils

import (
	"crypto/sha256" // Token fingerprint
	"encoding/hex"  // Token fingerprint encoding
	"errors"        // Error values
	"time"          // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // User IDs
)

// ErrMissingSubject is returned for tokens without a user id
var ErrMissingSubject = errors.New("token has no subject")

// Claims mirrors the access tokens issued by the managed auth service
type Claims struct {
	Email                string `json:"email,omitempty"`      // Email of the signed-in user
	Phone                string `json:"phone,omitempty"`      // Phone of the signed-in user
	Role                 string `json:"role,omitempty"`       // Auth role, "authenticated" for users
	SessionID            string `json:"session_id,omitempty"` // Auth session the token belongs to
	jwt.RegisteredClaims        // Standard JWT claims, Subject is the user id
}

// UserID parses the subject as a user id
func (c *Claims) UserID() (uuid.UUID, error) {
	if c.Subject == "" {
		return uuid.Nil, ErrMissingSubject
	}
	return uuid.Parse(c.Subject)
}

// GenerateJWT creates a token for a given user id, used for local development and tests
func GenerateJWT(userID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:      "authenticated",
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}

// TokenID identifies a token for revocation: the auth session when present,
// otherwise the jti, otherwise a fingerprint of the raw token
func TokenID(claims *Claims, raw string) string {
	switch {
	case claims.SessionID != "":
		return "sid:" + claims.SessionID
	case claims.ID != "":
		return "jti:" + claims.ID
	default:
		sum := sha256.Sum256([]byte(raw))
		return "sha:" + hex.EncodeToString(sum[:])
	}
}
