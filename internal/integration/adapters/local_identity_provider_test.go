package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeplan/backend/internal/application/adapter"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// fakeLocalUserRepository keeps registered users in memory.
type fakeLocalUserRepository struct {
	users map[string]*adapter.LocalUser
}

func newFakeLocalUserRepository() *fakeLocalUserRepository {
	return &fakeLocalUserRepository{users: make(map[string]*adapter.LocalUser)}
}

func (r *fakeLocalUserRepository) Create(_ context.Context, user *adapter.LocalUser) error {
	r.users[user.Identity.Email] = user
	return nil
}

func (r *fakeLocalUserRepository) FindByEmail(_ context.Context, email string) (*adapter.LocalUser, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrLocalUserNotFound
	}
	return user, nil
}

func (r *fakeLocalUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func TestLocalIdentityProvider_RegisterAndAuthenticate(t *testing.T) {
	repo := newFakeLocalUserRepository()
	provider := NewLocalIdentityProvider(repo)
	ctx := context.Background()

	registered, err := provider.Register(ctx, "ana@example.com", "hunter2abc", "Ana")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.UID == "" {
		t.Error("expected generated UID")
	}
	if registered.Name != "Ana" {
		t.Errorf("expected name Ana, got %q", registered.Name)
	}

	stored := repo.users["ana@example.com"]
	if stored == nil {
		t.Fatal("expected user to be stored")
	}
	if stored.PasswordHash == "hunter2abc" {
		t.Error("password must not be stored in plain text")
	}

	authenticated, err := provider.Authenticate(ctx, "ana@example.com", "hunter2abc")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if authenticated.UID != registered.UID {
		t.Errorf("expected UID %s, got %s", registered.UID, authenticated.UID)
	}
}

func TestLocalIdentityProvider_RegisterDefaultsDisplayName(t *testing.T) {
	provider := NewLocalIdentityProvider(newFakeLocalUserRepository())

	registered, err := provider.Register(context.Background(), "ana@example.com", "hunter2abc", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.Name != defaultDisplayName {
		t.Errorf("expected default name %q, got %q", defaultDisplayName, registered.Name)
	}
}

func TestLocalIdentityProvider_RegisterRejectsDuplicateEmail(t *testing.T) {
	provider := NewLocalIdentityProvider(newFakeLocalUserRepository())
	ctx := context.Background()

	if _, err := provider.Register(ctx, "ana@example.com", "hunter2abc", "Ana"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := provider.Register(ctx, "ana@example.com", "otherpassword", "Ana")
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLocalIdentityProvider_AuthenticateRejections(t *testing.T) {
	provider := NewLocalIdentityProvider(newFakeLocalUserRepository())
	ctx := context.Background()

	if _, err := provider.Register(ctx, "ana@example.com", "hunter2abc", "Ana"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.Authenticate(ctx, "ana@example.com", "wrong-password")
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := provider.Authenticate(ctx, "bob@example.com", "hunter2abc")
		if !errors.Is(err, domainerror.ErrLocalUserNotFound) {
			t.Errorf("expected ErrLocalUserNotFound, got %v", err)
		}
	})
}
