package mapper

import (
	"time"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/model"
)

type ConceptMapper struct{}

func NewConceptMapper() *ConceptMapper {
	return &ConceptMapper{}
}

func (m *ConceptMapper) ToEntity(c *model.Concept) *entity.Concept {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Concept{
		Id:          c.Id,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Frequency:   c.Frequency,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ConceptMapper) ToModel(c *entity.Concept) *model.Concept {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Concept{
		Id:          c.Id,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Frequency:   c.Frequency,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ConceptMapper) ToEntities(concepts []*model.Concept) []*entity.Concept {
	entities := make([]*entity.Concept, len(concepts))
	for i, c := range concepts {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ConceptMapper) LinkToEntity(l *model.NoteConcept) *entity.NoteConcept {
	if l == nil {
		return nil
	}
	return &entity.NoteConcept{
		NoteId:    l.NoteId,
		ConceptId: l.ConceptId,
		CreatedAt: l.CreatedAt,
	}
}

func (m *ConceptMapper) LinkToModel(l *entity.NoteConcept) *model.NoteConcept {
	if l == nil {
		return nil
	}
	return &model.NoteConcept{
		NoteId:    l.NoteId,
		ConceptId: l.ConceptId,
		CreatedAt: l.CreatedAt,
	}
}
