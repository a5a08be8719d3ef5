// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// defaultTokenDuration is how long an issued session token stays valid.
const defaultTokenDuration = 7 * 24 * time.Hour

// sessionClaims represents the custom claims carried by session tokens.
type sessionClaims struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with signed
// JWTs. Tokens are stateless: validation needs only the signing secret.
type tokenService struct {
	secret   []byte
	duration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		duration: defaultTokenDuration,
	}
}

// GenerateToken issues a signed token carrying the full identity.
func (s *tokenService) GenerateToken(_ context.Context, identity entity.Identity) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		UID:   identity.UID,
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *tokenService) ValidateToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerror.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			err,
		)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	return &adapter.TokenClaims{
		Identity: entity.Identity{
			UID:   claims.UID,
			Name:  claims.Name,
			Email: claims.Email,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
