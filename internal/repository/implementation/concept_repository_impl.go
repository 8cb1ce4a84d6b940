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

type ConceptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConceptMapper
}

func NewConceptRepository(db *gorm.DB) contract.ConceptRepository {
	return &ConceptRepositoryImpl{
		db:     db,
		mapper: mapper.NewConceptMapper(),
	}
}

func (r *ConceptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConceptRepositoryImpl) Create(ctx context.Context, concept *entity.Concept) error {
	m := r.mapper.ToModel(concept)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*concept = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConceptRepositoryImpl) Update(ctx context.Context, concept *entity.Concept) error {
	m := r.mapper.ToModel(concept)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*concept = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConceptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Concept{}, id).Error
}

func (r *ConceptRepositoryImpl) IncrementFrequency(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&model.Concept{}).
		Where("id = ?", id).
		Update("frequency", gorm.Expr("frequency + ?", delta)).Error
}

func (r *ConceptRepositoryImpl) SetFrequency(ctx context.Context, id uuid.UUID, frequency int) error {
	return r.db.WithContext(ctx).
		Model(&model.Concept{}).
		Where("id = ?", id).
		Update("frequency", frequency).Error
}

func (r *ConceptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Concept, error) {
	var m model.Concept
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConceptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Concept, error) {
	var models []*model.Concept
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConceptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Concept{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
