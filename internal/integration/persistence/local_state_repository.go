// Package persistence implements repository interfaces for storage backends.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/persistence/model"
)

// localStateRepository keeps the ledger aggregate in the embedded database,
// one serialized document per user keyed by email. Writes overwrite the whole
// document; there is no merge.
type localStateRepository struct {
	db *gorm.DB
}

// NewLocalStateRepository creates the local-backend state repository.
func NewLocalStateRepository(db *gorm.DB) adapter.StateRepository {
	return &localStateRepository{db: db}
}

// Save upserts the serialized aggregate under the identity's email.
func (r *localStateRepository) Save(ctx context.Context, identity entity.Identity, state *entity.LedgerState) error {
	encoded, err := model.FromEntity(state).Encode()
	if err != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeStateSerialization,
			"failed to serialize ledger state",
			err,
		)
	}

	row := model.LedgerStateModel{
		Email:     identity.Email,
		Document:  string(encoded),
		UpdatedAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeStoreUnreachable,
			"failed to write ledger state",
			result.Error,
		)
	}
	return nil
}

// Load returns the stored aggregate, or the seed state for an identity that
// never saved. Store errors propagate; they are not "no data yet".
func (r *localStateRepository) Load(ctx context.Context, identity entity.Identity) (*entity.LedgerState, error) {
	var row model.LedgerStateModel
	result := r.db.WithContext(ctx).Where("email = ?", identity.Email).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.SeedState(identity), nil
		}
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoreUnreachable,
			"failed to read ledger state",
			result.Error,
		)
	}

	doc, err := model.Decode([]byte(row.Document))
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStateSerialization,
			"failed to deserialize ledger state",
			err,
		)
	}
	return doc.ToEntity(), nil
}
