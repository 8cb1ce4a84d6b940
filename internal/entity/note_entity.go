package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string
	Content         string
	Kind            string
	PositionX       float64
	PositionY       float64
	Width           float64
	Height          float64
	BackgroundColor string
	TextColor       string
	MainTakeaway    *string
	CourseId        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       *time.Time

	// Joined data, populated by list queries only.
	Course   *Course
	Concepts []*Concept
}
