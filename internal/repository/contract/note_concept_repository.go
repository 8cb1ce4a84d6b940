package contract

import (
	"context"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteConceptRepository interface {
	Create(ctx context.Context, link *entity.NoteConcept) error
	Delete(ctx context.Context, noteId, conceptId uuid.UUID) error
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteConcept, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteConcept, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
