// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// AddInstitutionInput represents the input for registering an institution.
type AddInstitutionInput struct {
	UID       string
	Name      string
	Type      string
	Yield     string
	Liquidity string
	Risk      int
}

// AddInstitutionOutput represents the output of registering an institution.
type AddInstitutionOutput struct {
	Institution entity.Institution
}

// AddInstitutionUseCase appends a financial institution to the user's ledger.
type AddInstitutionUseCase struct {
	manager *session.Manager
}

// NewAddInstitutionUseCase creates a new AddInstitutionUseCase instance.
func NewAddInstitutionUseCase(manager *session.Manager) *AddInstitutionUseCase {
	return &AddInstitutionUseCase{manager: manager}
}

// Execute registers the institution.
func (uc *AddInstitutionUseCase) Execute(_ context.Context, input AddInstitutionInput) (*AddInstitutionOutput, error) {
	if input.Risk < 1 || input.Risk > 5 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRisk,
			"risk must be between 1 and 5",
			domainerror.ErrInvalidRisk,
		)
	}

	institution := entity.NewInstitution(input.Name, input.Type, input.Yield, input.Liquidity, input.Risk)

	if _, err := uc.manager.Mutate(input.UID, func(s *entity.LedgerState) {
		s.AppendInstitution(institution)
	}); err != nil {
		return nil, err
	}

	return &AddInstitutionOutput{Institution: institution}, nil
}
