package model

import "time"

// Usuario is an operator account. Authentication is session based; only the
// bcrypt digest of the password is ever stored.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
