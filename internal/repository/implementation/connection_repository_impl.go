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

type ConnectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConnectionMapper
}

func NewConnectionRepository(db *gorm.DB) contract.ConnectionRepository {
	return &ConnectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewConnectionMapper(),
	}
}

func (r *ConnectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConnectionRepositoryImpl) Create(ctx context.Context, connection *entity.Connection) error {
	m := r.mapper.ToModel(connection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*connection = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConnectionRepositoryImpl) Update(ctx context.Context, connection *entity.Connection) error {
	m := r.mapper.ToModel(connection)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*connection = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConnectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Connection{}, id).Error
}

func (r *ConnectionRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", noteId, noteId).
		Delete(&model.Connection{}).Error
}

func (r *ConnectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Connection, error) {
	var m model.Connection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConnectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Connection, error) {
	var models []*model.Connection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConnectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Connection{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
