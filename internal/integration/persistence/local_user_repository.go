// Package persistence implements repository interfaces for storage backends.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/persistence/model"
)

// localUserRepository implements adapter.LocalUserRepository on the embedded
// database.
type localUserRepository struct {
	db *gorm.DB
}

// NewLocalUserRepository creates a new local user repository instance.
func NewLocalUserRepository(db *gorm.DB) adapter.LocalUserRepository {
	return &localUserRepository{db: db}
}

// Create stores a new local user.
func (r *localUserRepository) Create(ctx context.Context, user *adapter.LocalUser) error {
	row := model.LocalUserModel{
		UID:          user.Identity.UID,
		Email:        user.Identity.Email,
		Name:         user.Identity.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// FindByEmail returns the local user with the given email.
func (r *localUserRepository) FindByEmail(ctx context.Context, email string) (*adapter.LocalUser, error) {
	var row model.LocalUserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLocalUserNotFound
		}
		return nil, result.Error
	}
	return &adapter.LocalUser{
		Identity: entity.Identity{
			UID:   row.UID,
			Name:  row.Name,
			Email: row.Email,
		},
		PasswordHash: row.PasswordHash,
	}, nil
}

// ExistsByEmail checks if a local user with the given email exists.
func (r *localUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.LocalUserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
