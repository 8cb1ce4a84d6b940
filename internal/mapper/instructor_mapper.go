package mapper

import (
	"time"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/model"
)

type InstructorMapper struct{}

func NewInstructorMapper() *InstructorMapper {
	return &InstructorMapper{}
}

func (m *InstructorMapper) ToEntity(i *model.Instructor) *entity.Instructor {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Instructor{
		Id:        i.Id,
		Name:      i.Name,
		Email:     i.Email,
		Avatar:    i.Avatar,
		Color:     i.Color,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InstructorMapper) ToModel(i *entity.Instructor) *model.Instructor {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Instructor{
		Id:        i.Id,
		Name:      i.Name,
		Email:     i.Email,
		Avatar:    i.Avatar,
		Color:     i.Color,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InstructorMapper) ToEntities(instructors []*model.Instructor) []*entity.Instructor {
	entities := make([]*entity.Instructor, len(instructors))
	for i, ins := range instructors {
		entities[i] = m.ToEntity(ins)
	}
	return entities
}
