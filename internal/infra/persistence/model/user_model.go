// Package model holds the GORM persistence structs. They stay out of the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated in Go before insert.
type UserModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username   string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName  string     `gorm:"type:varchar(50);not null"`
	LastName   string     `gorm:"type:varchar(50);not null"`
	Password   string     `gorm:"type:varchar(255);not null"`
	IsActive   bool       `gorm:"not null"`
	IsVerified bool       `gorm:"not null"`
	LastLogin  *time.Time `gorm:"column:last_login"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}
