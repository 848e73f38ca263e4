// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to and from pure domain entities inside
// the postgres package; no other layer sees them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(80);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'author'"`
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
