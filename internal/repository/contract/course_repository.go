package contract

import (
	"context"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ClearInstructor nulls out instructor_id on every course owned by the
	// instructor. Used on instructor delete; never cascades.
	ClearInstructor(ctx context.Context, instructorId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
