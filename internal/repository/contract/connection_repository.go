package contract

import (
	"context"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConnectionRepository interface {
	Create(ctx context.Context, connection *entity.Connection) error
	Update(ctx context.Context, connection *entity.Connection) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByNoteId prunes every connection touching the note on either end.
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Connection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Connection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
