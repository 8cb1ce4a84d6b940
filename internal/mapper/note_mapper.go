package mapper

import (
	"time"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/model"
)

type NoteMapper struct {
	courseMapper *CourseMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		courseMapper: NewCourseMapper(),
	}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Note{
		Id:              n.Id,
		Title:           n.Title,
		Content:         n.Content,
		Kind:            n.Kind,
		PositionX:       n.PositionX,
		PositionY:       n.PositionY,
		Width:           n.Width,
		Height:          n.Height,
		BackgroundColor: n.BackgroundColor,
		TextColor:       n.TextColor,
		MainTakeaway:    n.MainTakeaway,
		CourseId:        n.CourseId,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       updatedAt,
		Course:          m.courseMapper.ToEntity(n.Course),
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:              n.Id,
		Title:           n.Title,
		Content:         n.Content,
		Kind:            n.Kind,
		PositionX:       n.PositionX,
		PositionY:       n.PositionY,
		Width:           n.Width,
		Height:          n.Height,
		BackgroundColor: n.BackgroundColor,
		TextColor:       n.TextColor,
		MainTakeaway:    n.MainTakeaway,
		CourseId:        n.CourseId,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
