package implementation

import (
	"context"
	"errors"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/mapper"
	"study-canvas-be/internal/model"
	"study-canvas-be/internal/repository/contract"
	"study-canvas-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InstructorMapper
}

func NewInstructorRepository(db *gorm.DB) contract.InstructorRepository {
	return &InstructorRepositoryImpl{
		db:     db,
		mapper: mapper.NewInstructorMapper(),
	}
}

func (r *InstructorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstructorRepositoryImpl) Create(ctx context.Context, instructor *entity.Instructor) error {
	m := r.mapper.ToModel(instructor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*instructor = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstructorRepositoryImpl) Update(ctx context.Context, instructor *entity.Instructor) error {
	m := r.mapper.ToModel(instructor)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*instructor = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstructorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Instructor{}, id).Error
}

func (r *InstructorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instructor, error) {
	var m model.Instructor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InstructorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Instructor, error) {
	var models []*model.Instructor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InstructorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Instructor{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
