// Package session contains the session lifecycle use cases.
package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// fakeIdentityProvider implements adapter.IdentityProvider in memory.
type fakeIdentityProvider struct {
	users  map[string]entity.Identity
	reject bool
}

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{users: make(map[string]entity.Identity)}
}

func (p *fakeIdentityProvider) Register(_ context.Context, email, _, displayName string) (*entity.Identity, error) {
	if _, exists := p.users[email]; exists {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", domainerror.ErrEmailAlreadyExists)
	}
	identity := entity.Identity{UID: "uid-" + email, Name: displayName, Email: email}
	p.users[email] = identity
	return &identity, nil
}

func (p *fakeIdentityProvider) Authenticate(_ context.Context, email, _ string) (*entity.Identity, error) {
	if p.reject {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid email or password", domainerror.ErrInvalidCredentials)
	}
	identity, ok := p.users[email]
	if !ok {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid email or password", domainerror.ErrInvalidCredentials)
	}
	return &identity, nil
}

func (p *fakeIdentityProvider) Deauthenticate(context.Context) error { return nil }

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(_ context.Context, identity entity.Identity) (string, error) {
	return "token-" + identity.UID, nil
}

func (fakeTokenService) ValidateToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return &adapter.TokenClaims{Identity: entity.Identity{UID: token}}, nil
}

// fakeRememberedStore implements adapter.RememberedIdentityStore in memory.
type fakeRememberedStore struct {
	mu       sync.Mutex
	identity *entity.Identity
}

func (s *fakeRememberedStore) Remember(_ context.Context, identity entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	return nil
}

func (s *fakeRememberedStore) Recall(context.Context) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, nil
}

func (s *fakeRememberedStore) Forget(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	return nil
}

func TestLoginUseCase(t *testing.T) {
	t.Run("successful login hydrates state and remembers the identity", func(t *testing.T) {
		provider := newFakeIdentityProvider()
		provider.users["planner@lifeplan.app"] = entity.Identity{UID: "u1", Name: "Planner", Email: "planner@lifeplan.app"}
		repo := newFakeStateRepository()
		manager := NewManager(repo)
		remembered := &fakeRememberedStore{}

		uc := NewLoginUseCase(provider, manager, fakeTokenService{}, remembered)
		out, err := uc.Execute(context.Background(), LoginInput{Email: "planner@lifeplan.app", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Token != "token-u1" {
			t.Errorf("expected token-u1, got %s", out.Token)
		}
		if out.State == nil || out.State.User.UID != "u1" {
			t.Error("expected hydrated state carrying the authenticated identity")
		}
		if remembered.identity == nil || remembered.identity.UID != "u1" {
			t.Error("expected identity to be remembered after login")
		}
		if _, err := manager.Snapshot("u1"); err != nil {
			t.Errorf("expected an active session after login: %v", err)
		}
	})

	t.Run("provider rejection leaves no session behind", func(t *testing.T) {
		provider := newFakeIdentityProvider()
		provider.reject = true
		manager := NewManager(newFakeStateRepository())

		uc := NewLoginUseCase(provider, manager, fakeTokenService{}, nil)
		_, err := uc.Execute(context.Background(), LoginInput{Email: "planner@lifeplan.app", Password: "bad"})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := manager.Snapshot("u1"); err == nil {
			t.Error("expected no session after rejected login")
		}
	})

	t.Run("storage outage during hydration fails loudly", func(t *testing.T) {
		provider := newFakeIdentityProvider()
		provider.users["planner@lifeplan.app"] = entity.Identity{UID: "u1", Email: "planner@lifeplan.app"}
		repo := newFakeStateRepository()
		repo.setFailing(true)

		uc := NewLoginUseCase(provider, NewManager(repo), fakeTokenService{}, nil)
		_, err := uc.Execute(context.Background(), LoginInput{Email: "planner@lifeplan.app", Password: "secret123"})
		if !errors.Is(err, domainerror.ErrStoreUnreachable) {
			t.Fatalf("expected ErrStoreUnreachable, got %v", err)
		}
	})
}

func TestRegisterUseCase(t *testing.T) {
	t.Run("registration validates input before hitting the provider", func(t *testing.T) {
		uc := NewRegisterUseCase(newFakeIdentityProvider(), NewManager(newFakeStateRepository()), fakeTokenService{}, nil)

		if _, err := uc.Execute(context.Background(), RegisterInput{Email: "not-an-email", Password: "secret123"}); !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
		if _, err := uc.Execute(context.Background(), RegisterInput{Email: "a@b.co", Password: "short"}); !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("new user starts from the seed dataset with their identity", func(t *testing.T) {
		uc := NewRegisterUseCase(newFakeIdentityProvider(), NewManager(newFakeStateRepository()), fakeTokenService{}, &fakeRememberedStore{})

		out, err := uc.Execute(context.Background(), RegisterInput{Email: "new@lifeplan.app", Password: "secret123", DisplayName: "Nova"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		seed := entity.SeedState(out.Identity)
		if out.State.User.Email != "new@lifeplan.app" {
			t.Errorf("expected seed state user to be the new identity, got %+v", out.State.User)
		}
		if len(out.State.Entries) != len(seed.Entries) {
			t.Errorf("expected seed entries for a new user, got %d", len(out.State.Entries))
		}
	})

	t.Run("duplicate email surfaces the provider error", func(t *testing.T) {
		provider := newFakeIdentityProvider()
		uc := NewRegisterUseCase(provider, NewManager(newFakeStateRepository()), fakeTokenService{}, nil)

		if _, err := uc.Execute(context.Background(), RegisterInput{Email: "dup@lifeplan.app", Password: "secret123"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), RegisterInput{Email: "dup@lifeplan.app", Password: "secret123"}); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestResumeUseCase(t *testing.T) {
	t.Run("resume re-enters the remembered session without credentials", func(t *testing.T) {
		remembered := &fakeRememberedStore{}
		identity := entity.Identity{UID: "u1", Name: "Planner", Email: "planner@lifeplan.app"}
		if err := remembered.Remember(context.Background(), identity); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		manager := NewManager(newFakeStateRepository())
		uc := NewResumeUseCase(manager, fakeTokenService{}, remembered)

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Identity.UID != "u1" {
			t.Errorf("expected remembered identity, got %+v", out.Identity)
		}
		if _, err := manager.Snapshot("u1"); err != nil {
			t.Errorf("expected an active session after resume: %v", err)
		}
	})

	t.Run("resume without a remembered identity fails", func(t *testing.T) {
		uc := NewResumeUseCase(NewManager(newFakeStateRepository()), fakeTokenService{}, &fakeRememberedStore{})
		if _, err := uc.Execute(context.Background()); !errors.Is(err, domainerror.ErrNoRememberedIdentity) {
			t.Fatalf("expected ErrNoRememberedIdentity, got %v", err)
		}
	})

	t.Run("resume is unavailable with a remote provider", func(t *testing.T) {
		uc := NewResumeUseCase(NewManager(newFakeStateRepository()), fakeTokenService{}, nil)
		if _, err := uc.Execute(context.Background()); !errors.Is(err, domainerror.ErrNoRememberedIdentity) {
			t.Fatalf("expected ErrNoRememberedIdentity, got %v", err)
		}
	})
}

func TestLogoutUseCase(t *testing.T) {
	provider := newFakeIdentityProvider()
	manager := NewManager(newFakeStateRepository())
	remembered := &fakeRememberedStore{}
	identity := entity.Identity{UID: "u1", Email: "planner@lifeplan.app"}

	if _, err := manager.Begin(context.Background(), identity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := remembered.Remember(context.Background(), identity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewLogoutUseCase(provider, manager, remembered)
	if err := uc.Execute(context.Background(), LogoutInput{UID: "u1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := manager.Snapshot("u1"); err == nil {
		t.Error("expected session to be dropped after logout")
	}
	if remembered.identity != nil {
		t.Error("expected remembered identity to be cleared after logout")
	}
}
