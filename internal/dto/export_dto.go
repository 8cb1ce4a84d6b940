package dto

import "github.com/google/uuid"

type ExportNotesRequest struct {
	NoteIds []uuid.UUID `json:"note_ids" validate:"required,min=1"`
}
