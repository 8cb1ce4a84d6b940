package contract

import (
	"context"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConceptRepository interface {
	Create(ctx context.Context, concept *entity.Concept) error
	Update(ctx context.Context, concept *entity.Concept) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementFrequency adjusts the stored counter by delta (may be negative).
	// Runs as a single UPDATE so it composes with the link write in one tx.
	IncrementFrequency(ctx context.Context, id uuid.UUID, delta int) error
	// SetFrequency overwrites the counter; used by the reconciler only.
	SetFrequency(ctx context.Context, id uuid.UUID, frequency int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Concept, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Concept, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
