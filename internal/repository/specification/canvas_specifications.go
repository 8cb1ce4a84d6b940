package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByName filters by exact name (concepts are unique on it).
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByCourse filters notes belonging to a course.
type ByCourse struct {
	CourseID uuid.UUID
}

func (s ByCourse) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("course_id = ?", s.CourseID)
}

// ByNote filters note_concepts rows for one note.
type ByNote struct {
	NoteID uuid.UUID
}

func (s ByNote) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

// ByConcept filters note_concepts rows for one concept.
type ByConcept struct {
	ConceptID uuid.UUID
}

func (s ByConcept) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("concept_id = ?", s.ConceptID)
}

// ByEndpoint matches connections touching a note on either end.
type ByEndpoint struct {
	NoteID uuid.UUID
}

func (s ByEndpoint) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("from_id = ? OR to_id = ?", s.NoteID, s.NoteID)
}

// ByInstructor filters courses owned by an instructor.
type ByInstructor struct {
	InstructorID uuid.UUID
}

func (s ByInstructor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("instructor_id = ?", s.InstructorID)
}

// WithCourse preloads the joined course on note queries.
type WithCourse struct{}

func (s WithCourse) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Course")
}
