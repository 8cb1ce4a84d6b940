package entity

import (
	"time"

	"github.com/google/uuid"
)

// Connection is a directed visual edge between two notes. FromId must differ
// from ToId; self-loops are rejected before this entity is ever built.
type Connection struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromId      uuid.UUID `gorm:"type:uuid;index"`
	ToId        uuid.UUID `gorm:"type:uuid;index"`
	Color       string
	Style       string
	StrokeWidth float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
