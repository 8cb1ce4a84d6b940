// Package adapter is the client side of the persistence contract: a small
// CRUD surface per entity type, plus the read retry policy.
package adapter

import (
	"context"
	"errors"

	"study-canvas-be/pkg/canvas"

	"github.com/google/uuid"
)

// Typed signals the sync pipeline branches on. Anything else is a generic
// failure.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyLinked = errors.New("note already linked to concept")
	ErrLinkNotFound  = errors.New("note-concept link not found")
)

// Adapter abstracts the durable store. The HTTP implementation talks to the
// backend API; tests substitute fakes.
type Adapter interface {
	ListNotes(ctx context.Context) ([]canvas.Note, error)
	CreateNote(ctx context.Context, note canvas.Note) (canvas.Note, error)
	UpdateNote(ctx context.Context, note canvas.Note) (canvas.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error

	ListCourses(ctx context.Context) ([]canvas.Course, error)
	CreateCourse(ctx context.Context, course canvas.Course) (canvas.Course, error)

	ListInstructors(ctx context.Context) ([]canvas.Instructor, error)
	CreateInstructor(ctx context.Context, instructor canvas.Instructor) (canvas.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor canvas.Instructor) (canvas.Instructor, error)
	DeleteInstructor(ctx context.Context, id uuid.UUID) error

	ListConcepts(ctx context.Context) ([]canvas.Concept, error)
	CreateConcept(ctx context.Context, concept canvas.Concept) (canvas.Concept, error)
	LinkConcept(ctx context.Context, noteId uuid.UUID, name string, category *string) (canvas.Concept, canvas.NoteConcept, error)
	UnlinkConcept(ctx context.Context, noteId, conceptId uuid.UUID) error

	ListConnections(ctx context.Context) ([]canvas.Connection, error)
	CreateConnection(ctx context.Context, connection canvas.Connection) (canvas.Connection, error)
	DeleteConnection(ctx context.Context, id uuid.UUID) error

	// ExportNotes renders the selected notes into a PDF document.
	ExportNotes(ctx context.Context, noteIds []uuid.UUID) ([]byte, error)
}
