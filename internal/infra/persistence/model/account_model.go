package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'users' table. Email is stored lower-cased and is
// unique across all rows, deactivated or not.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:CUSTOMER;index"`
	FirstName    string    `gorm:"type:varchar(50);not null"`
	LastName     string    `gorm:"type:varchar(50);not null"`
	PhoneNumber  string    `gorm:"type:varchar(20)"`
	Location     string    `gorm:"type:varchar(100);not null;index"`

	BusinessName    string `gorm:"type:varchar(100)"`
	BusinessLicense string `gorm:"type:varchar(50)"`
	BusinessType    string `gorm:"type:varchar(50)"`

	EmailVerified bool `gorm:"not null;default:false"`
	Enabled       bool `gorm:"not null;default:false"`
	Active        bool `gorm:"not null;default:true"`

	VerificationToken *string    `gorm:"type:varchar(64);index"`
	TokenExpiresAt    *time.Time `gorm:"column:token_expires_at"`

	LoginAttempts int        `gorm:"not null;default:0"`
	LockoutUntil  *time.Time `gorm:"column:lockout_until"`
	LastLoginAt   *time.Time `gorm:"column:last_login_at"`

	TotalRentals  int     `gorm:"not null;default:0"`
	AverageRating float64 `gorm:"type:numeric(3,2);not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// RoleCountRow is the scan target of the role distribution query.
type RoleCountRow struct {
	Role  string
	Count int64
}
