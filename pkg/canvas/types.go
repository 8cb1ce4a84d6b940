// Package canvas holds the client-side domain types for the study canvas:
// positioned note cards, the courses and instructors that group them,
// concept tags, and the visual connections between notes.
package canvas

import (
	"time"

	"github.com/google/uuid"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Note is a positioned, sized, styled rich-text card on the canvas.
type Note struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Kind            string     `json:"kind"`
	Position        Position   `json:"position"`
	Size            Size       `json:"size"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	MainTakeaway    *string    `json:"main_takeaway,omitempty"`
	CourseId        *uuid.UUID `json:"course_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Course struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Color        string     `json:"color"`
	InstructorId *uuid.UUID `json:"instructor_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Instructor struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Concept is a named tag with a usage counter. Frequency tracks the number
// of live note links.
type Concept struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category,omitempty"`
	Frequency int       `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteConcept links one note to one concept; the pair is unique.
type NoteConcept struct {
	NoteId    uuid.UUID `json:"note_id"`
	ConceptId uuid.UUID `json:"concept_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Connection is a directed visual edge between two notes.
type Connection struct {
	Id          uuid.UUID `json:"id"`
	FromId      uuid.UUID `json:"from_id"`
	ToId        uuid.UUID `json:"to_id"`
	Color       string    `json:"color"`
	Style       string    `json:"style"`
	StrokeWidth float64   `json:"stroke_width"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotePatch is a partial note update; nil fields are left untouched.
type NotePatch struct {
	Title           *string    `json:"title,omitempty"`
	Content         *string    `json:"content,omitempty"`
	Position        *Position  `json:"position,omitempty"`
	Size            *Size      `json:"size,omitempty"`
	BackgroundColor *string    `json:"background_color,omitempty"`
	TextColor       *string    `json:"text_color,omitempty"`
	MainTakeaway    *string    `json:"main_takeaway,omitempty"`
	CourseId        *uuid.UUID `json:"course_id,omitempty"`
	ClearCourse     bool       `json:"clear_course,omitempty"`
}

// KindDefaults returns the default size and colors for a new note of the
// given kind. Unknown kinds get the plain note styling.
func KindDefaults(kind string) (Size, string, string) {
	switch kind {
	case "takeaway":
		return Size{Width: 260, Height: 140}, "#dbeafe", "#1e3a8a"
	case "question":
		return Size{Width: 220, Height: 160}, "#fee2e2", "#7f1d1d"
	default: // "note"
		return Size{Width: 220, Height: 180}, "#fef3c7", "#1f2937"
	}
}
