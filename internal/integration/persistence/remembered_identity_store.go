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
	"github.com/lifeplan/backend/internal/integration/persistence/model"
)

// rememberedRowID pins the remembered identity to a single row; remembering
// a new identity replaces the previous one.
const rememberedRowID = 1

// rememberedIdentityStore implements adapter.RememberedIdentityStore on the
// embedded database.
type rememberedIdentityStore struct {
	db *gorm.DB
}

// NewRememberedIdentityStore creates a new remembered identity store instance.
func NewRememberedIdentityStore(db *gorm.DB) adapter.RememberedIdentityStore {
	return &rememberedIdentityStore{db: db}
}

// Remember stores identity as the remembered one, replacing any previous.
func (s *rememberedIdentityStore) Remember(ctx context.Context, identity entity.Identity) error {
	row := model.RememberedUserModel{
		ID:        rememberedRowID,
		UID:       identity.UID,
		Name:      identity.Name,
		Email:     identity.Email,
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"uid", "name", "email", "updated_at"}),
	}).Create(&row).Error
}

// Recall returns the remembered identity, or nil when none is stored.
func (s *rememberedIdentityStore) Recall(ctx context.Context) (*entity.Identity, error) {
	var row model.RememberedUserModel
	result := s.db.WithContext(ctx).Where("id = ?", rememberedRowID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &entity.Identity{UID: row.UID, Name: row.Name, Email: row.Email}, nil
}

// Forget clears the remembered identity.
func (s *rememberedIdentityStore) Forget(ctx context.Context) error {
	result := s.db.WithContext(ctx).Delete(&model.RememberedUserModel{}, "id = ?", rememberedRowID)
	return result.Error
}
