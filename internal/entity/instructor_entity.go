package entity

import (
	"time"

	"github.com/google/uuid"
)

type Instructor struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     *string
	Avatar    *string
	Color     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
