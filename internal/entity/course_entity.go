package entity

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Description  *string
	Color        string
	InstructorId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
