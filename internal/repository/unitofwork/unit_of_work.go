package unitofwork

import (
	"context"

	"study-canvas-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	CourseRepository() contract.CourseRepository
	InstructorRepository() contract.InstructorRepository
	ConceptRepository() contract.ConceptRepository
	NoteConceptRepository() contract.NoteConceptRepository
	ConnectionRepository() contract.ConnectionRepository
}
