package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CalculationModel mirrors the 'calculations' table. Inputs are stored as a JSON array.
type CalculationModel struct {
	ID        uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID                    `gorm:"type:uuid;not null;index"`
	Type      string                       `gorm:"type:varchar(20);not null"`
	Inputs    datatypes.JSONSlice[float64] `gorm:"not null"`
	Result    *float64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is only declared so the foreign key carries ON DELETE CASCADE.
	Owner *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CalculationModel) TableName() string {
	return "calculations"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *CalculationModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
