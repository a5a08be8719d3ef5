// Package model defines storage documents for the persistence layer.
package model

import "time"

// LedgerStateModel is the local keyed store row holding one serialized ledger
// aggregate, keyed by the owner's email (the stable identifier when no remote
// backend issues uids).
type LedgerStateModel struct {
	Email     string    `gorm:"primaryKey;type:varchar(255)"`
	Document  string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the LedgerStateModel.
func (LedgerStateModel) TableName() string {
	return "ledger_states"
}

// LocalUserModel is a locally registered identity with its credential hash.
type LocalUserModel struct {
	UID          string    `gorm:"primaryKey;type:varchar(36)"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the LocalUserModel.
func (LocalUserModel) TableName() string {
	return "local_users"
}

// RememberedUserModel is the single-row table holding the identity of the
// last authenticated local user so a later process start can resume the
// session without re-authenticating.
type RememberedUserModel struct {
	ID        int       `gorm:"primaryKey"`
	UID       string    `gorm:"type:varchar(36);not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RememberedUserModel.
func (RememberedUserModel) TableName() string {
	return "remembered_user"
}
