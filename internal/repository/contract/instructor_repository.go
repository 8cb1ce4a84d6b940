package contract

import (
	"context"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InstructorRepository interface {
	Create(ctx context.Context, instructor *entity.Instructor) error
	Update(ctx context.Context, instructor *entity.Instructor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instructor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Instructor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
