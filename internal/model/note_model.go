package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Content         string     `gorm:"type:text"`
	Kind            string     `gorm:"type:varchar(32);not null;default:'note'"`
	PositionX       float64    `gorm:"not null;default:0"`
	PositionY       float64    `gorm:"not null;default:0"`
	Width           float64    `gorm:"not null"`
	Height          float64    `gorm:"not null"`
	BackgroundColor string     `gorm:"type:varchar(16)"`
	TextColor       string     `gorm:"type:varchar(16)"`
	MainTakeaway    *string    `gorm:"type:text"`
	CourseId        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`

	// Weak reference: a note survives its course. ON DELETE SET NULL keeps
	// the row and clears course_id.
	Course *Course `gorm:"foreignKey:CourseId;constraint:OnDelete:SET NULL"`
}

func (Note) TableName() string {
	return "notes"
}
