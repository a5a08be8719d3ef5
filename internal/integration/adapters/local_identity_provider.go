package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// defaultDisplayName is used when a user registers without a name.
	defaultDisplayName = "Planner"
)

// localIdentityProvider validates credentials against locally registered
// users. It is the fallback provider when no remote identity backend is
// configured.
type localIdentityProvider struct {
	users adapter.LocalUserRepository
}

// NewLocalIdentityProvider creates a new local identity provider instance.
func NewLocalIdentityProvider(users adapter.LocalUserRepository) adapter.IdentityProvider {
	return &localIdentityProvider{users: users}
}

// Register creates a new local identity with a bcrypt-hashed credential.
func (p *localIdentityProvider) Register(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	exists, err := p.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if displayName == "" {
		displayName = defaultDisplayName
	}

	user := &adapter.LocalUser{
		Identity: entity.Identity{
			UID:   uuid.NewString(),
			Name:  displayName,
			Email: email,
		},
		PasswordHash: string(hash),
	}
	if err := p.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create local user: %w", err)
	}

	identity := user.Identity
	return &identity, nil
}

// Authenticate validates credentials against the stored hash.
func (p *localIdentityProvider) Authenticate(ctx context.Context, email, password string) (*entity.Identity, error) {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrLocalUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeLocalUserNotFound,
				"local user not found, register first",
				domainerror.ErrLocalUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to look up local user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	identity := user.Identity
	return &identity, nil
}

// Deauthenticate is a no-op for the local provider; sessions end by
// discarding the bearer token and clearing the remembered identity.
func (p *localIdentityProvider) Deauthenticate(context.Context) error {
	return nil
}
