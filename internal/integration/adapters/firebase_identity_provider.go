package adapters

import (
	"context"
	"fmt"
	"strings"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// firebaseIdentityProvider authenticates against the Firebase Identity
// Toolkit REST API. It is the provider of choice when a remote API key is
// configured.
type firebaseIdentityProvider struct {
	apiKey string
}

// NewFirebaseIdentityProvider creates an identity provider backed by the
// Firebase Identity Toolkit.
func NewFirebaseIdentityProvider(apiKey string) adapter.IdentityProvider {
	return &firebaseIdentityProvider{apiKey: apiKey}
}

func (p *firebaseIdentityProvider) service(ctx context.Context) (*identitytoolkit.Service, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create identity toolkit client: %w", err)
	}
	return svc, nil
}

// Register creates a new Firebase account for the given credentials.
func (p *firebaseIdentityProvider) Register(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	svc, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = defaultDisplayName
	}

	resp, err := svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}).Context(ctx).Do()
	if err != nil {
		if isToolkitRejection(err, "EMAIL_EXISTS") {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create remote account: %w", err)
	}

	name := resp.DisplayName
	if name == "" {
		name = displayName
	}
	return &entity.Identity{
		UID:   resp.LocalId,
		Name:  name,
		Email: resp.Email,
	}, nil
}

// Authenticate validates credentials against the remote identity backend.
func (p *firebaseIdentityProvider) Authenticate(ctx context.Context, email, password string) (*entity.Identity, error) {
	svc, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		if isToolkitRejection(err, "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED") {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"invalid email or password",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, fmt.Errorf("failed to verify remote credentials: %w", err)
	}

	name := resp.DisplayName
	if name == "" {
		name = defaultDisplayName
	}
	return &entity.Identity{
		UID:   resp.LocalId,
		Name:  name,
		Email: resp.Email,
	}, nil
}

// Deauthenticate is a no-op; the toolkit API is stateless and sessions end
// by discarding the bearer token.
func (p *firebaseIdentityProvider) Deauthenticate(context.Context) error {
	return nil
}

// isToolkitRejection reports whether err carries one of the identity toolkit
// rejection reasons. The toolkit encodes the reason in the error message body.
func isToolkitRejection(err error, reasons ...string) bool {
	msg := err.Error()
	for _, reason := range reasons {
		if strings.Contains(msg, reason) {
			return true
		}
	}
	return false
}
