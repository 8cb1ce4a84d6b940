package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	// Id is client-generated; the canvas inserts the note optimistically
	// before the round trip completes.
	Id              *uuid.UUID `json:"id"`
	Title           string     `json:"title" validate:"required"`
	Content         string     `json:"content"`
	Kind            string     `json:"kind" validate:"required"`
	PositionX       float64    `json:"position_x"`
	PositionY       float64    `json:"position_y"`
	Width           float64    `json:"width" validate:"required,gt=0"`
	Height          float64    `json:"height" validate:"required,gt=0"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	MainTakeaway    *string    `json:"main_takeaway"`
	CourseId        *uuid.UUID `json:"course_id"`
}

// UpdateNoteRequest carries a partial update: only non-nil fields change.
type UpdateNoteRequest struct {
	Id              uuid.UUID
	Title           *string    `json:"title"`
	Content         *string    `json:"content"`
	PositionX       *float64   `json:"position_x"`
	PositionY       *float64   `json:"position_y"`
	Width           *float64   `json:"width" validate:"omitempty,gt=0"`
	Height          *float64   `json:"height" validate:"omitempty,gt=0"`
	BackgroundColor *string    `json:"background_color"`
	TextColor       *string    `json:"text_color"`
	MainTakeaway    *string    `json:"main_takeaway"`
	CourseId        *uuid.UUID `json:"course_id"`
	ClearCourse     bool       `json:"clear_course"`
}

type MoveNoteRequest struct {
	Id        uuid.UUID
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
}

type ConceptRef struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category *string   `json:"category"`
}

type NoteResponse struct {
	Id              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Kind            string          `json:"kind"`
	PositionX       float64         `json:"position_x"`
	PositionY       float64         `json:"position_y"`
	Width           float64         `json:"width"`
	Height          float64         `json:"height"`
	BackgroundColor string          `json:"background_color"`
	TextColor       string          `json:"text_color"`
	MainTakeaway    *string         `json:"main_takeaway"`
	CourseId        *uuid.UUID      `json:"course_id"`
	Course          *CourseResponse `json:"course,omitempty"`
	Concepts        []ConceptRef    `json:"concepts,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
}
