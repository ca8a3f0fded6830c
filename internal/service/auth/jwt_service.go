package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing the session tokens that
// authenticate task operations. Tokens are stateless: issuance and
// verification are pure functions of the signing secret and the claims, and
// an issued token cannot be refreshed or revoked before it expires.
type JWTService interface {
	// GenerateToken creates a signed session token embedding the user's
	// identity (ID, email, display name) with the configured lifetime.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, email, name string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims containing user identity if the token is
	// valid, or an error if validation fails (expired, invalid signature,
	// malformed token, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity asserted by a validated session token.
// It mirrors the claims embedded at issuance time; nothing here is
// re-derived from the store during validation.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Email is the user's email at issuance time.
	Email string `json:"email,omitempty"`

	// Name is the user's display name at issuance time.
	Name string `json:"name,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
