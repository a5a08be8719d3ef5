// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/lifeplan/backend/internal/domain/entity"
)

// TokenClaims represents the validated claims extracted from a token.
type TokenClaims struct {
	Identity  entity.Identity
	ExpiresAt time.Time
}

// TokenService handles bearer token generation and validation for the API
// surface. Tokens carry the full identity so authenticated requests can reach
// their hydrated session without a lookup against the identity provider.
type TokenService interface {
	// GenerateToken issues a signed token for the identity.
	GenerateToken(ctx context.Context, identity entity.Identity) (string, error)

	// ValidateToken parses and verifies a token, returning its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
