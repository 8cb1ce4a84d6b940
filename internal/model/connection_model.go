package model

import (
	"time"

	"github.com/google/uuid"
)

type Connection struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ToId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Color       string    `gorm:"type:varchar(16)"`
	Style       string    `gorm:"type:varchar(16);not null;default:'curved'"`
	StrokeWidth float64   `gorm:"not null;default:2"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	From *Note `gorm:"foreignKey:FromId;constraint:OnDelete:CASCADE"`
	To   *Note `gorm:"foreignKey:ToId;constraint:OnDelete:CASCADE"`
}

func (Connection) TableName() string {
	return "connections"
}
