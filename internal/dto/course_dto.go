package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Id           *uuid.UUID `json:"id"`
	Name         string     `json:"name" validate:"required"`
	Description  *string    `json:"description"`
	Color        string     `json:"color"`
	InstructorId *uuid.UUID `json:"instructor_id"`
}

type UpdateCourseRequest struct {
	Id           uuid.UUID
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Color        *string    `json:"color"`
	InstructorId *uuid.UUID `json:"instructor_id"`
}

// GroupNotesRequest assigns every listed note to the course. Best effort:
// partial failure is reported, not rolled back.
type GroupNotesRequest struct {
	CourseId uuid.UUID
	NoteIds  []uuid.UUID `json:"note_ids" validate:"required,min=1"`
}

type GroupNotesResponse struct {
	Grouped []uuid.UUID `json:"grouped"`
	Failed  []uuid.UUID `json:"failed,omitempty"`
}

type CourseResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Color        string     `json:"color"`
	InstructorId *uuid.UUID `json:"instructor_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
