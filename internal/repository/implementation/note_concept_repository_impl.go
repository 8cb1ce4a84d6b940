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

type NoteConceptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConceptMapper
}

func NewNoteConceptRepository(db *gorm.DB) contract.NoteConceptRepository {
	return &NoteConceptRepositoryImpl{
		db:     db,
		mapper: mapper.NewConceptMapper(),
	}
}

func (r *NoteConceptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteConceptRepositoryImpl) Create(ctx context.Context, link *entity.NoteConcept) error {
	m := r.mapper.LinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.LinkToEntity(m)
	return nil
}

func (r *NoteConceptRepositoryImpl) Delete(ctx context.Context, noteId, conceptId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("note_id = ? AND concept_id = ?", noteId, conceptId).
		Delete(&model.NoteConcept{}).Error
}

func (r *NoteConceptRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("note_id = ?", noteId).
		Delete(&model.NoteConcept{}).Error
}

func (r *NoteConceptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteConcept, error) {
	var m model.NoteConcept
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LinkToEntity(&m), nil
}

func (r *NoteConceptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteConcept, error) {
	var models []*model.NoteConcept
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	links := make([]*entity.NoteConcept, len(models))
	for i, m := range models {
		links[i] = r.mapper.LinkToEntity(m)
	}
	return links, nil
}

func (r *NoteConceptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteConcept{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
