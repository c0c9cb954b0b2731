package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). It is an exported type so it can be used by the GORM Gen
// tool from other packages.
//
// Email uniqueness among non-deleted rows is enforced by a partial unique
// index created in the migrations (WHERE deleted_at IS NULL); the plain index
// tag here only documents the column for codegen.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);not null;index"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	CredentialHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
