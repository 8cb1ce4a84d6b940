package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Description  *string    `gorm:"type:text"`
	Color        string     `gorm:"type:varchar(16)"`
	InstructorId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	// Deleting an instructor must never cascade into courses.
	Instructor *Instructor `gorm:"foreignKey:InstructorId;constraint:OnDelete:SET NULL"`
}

func (Course) TableName() string {
	return "courses"
}
