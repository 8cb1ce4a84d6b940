package mapper

import (
	"time"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/model"
)

type ConnectionMapper struct{}

func NewConnectionMapper() *ConnectionMapper {
	return &ConnectionMapper{}
}

func (m *ConnectionMapper) ToEntity(c *model.Connection) *entity.Connection {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Connection{
		Id:          c.Id,
		FromId:      c.FromId,
		ToId:        c.ToId,
		Color:       c.Color,
		Style:       c.Style,
		StrokeWidth: c.StrokeWidth,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ConnectionMapper) ToModel(c *entity.Connection) *model.Connection {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Connection{
		Id:          c.Id,
		FromId:      c.FromId,
		ToId:        c.ToId,
		Color:       c.Color,
		Style:       c.Style,
		StrokeWidth: c.StrokeWidth,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ConnectionMapper) ToEntities(connections []*model.Connection) []*entity.Connection {
	entities := make([]*entity.Connection, len(connections))
	for i, c := range connections {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
