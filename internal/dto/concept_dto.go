package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConceptRequest struct {
	Id          *uuid.UUID `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
}

type LinkConceptRequest struct {
	NoteId   uuid.UUID
	Name     string  `json:"name" validate:"required"`
	Category *string `json:"category"`
}

type LinkConceptResponse struct {
	Concept ConceptResponse `json:"concept"`
	Link    NoteConceptLink `json:"link"`
}

type NoteConceptLink struct {
	NoteId    uuid.UUID `json:"note_id"`
	ConceptId uuid.UUID `json:"concept_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ConceptResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Frequency   int        `json:"frequency"`
	NotesCount  int64      `json:"notes_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
