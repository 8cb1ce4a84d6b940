package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteConcept links one note to one concept. The (NoteId, ConceptId) pair is
// unique: at most one link between a given note and concept.
type NoteConcept struct {
	NoteId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConceptId uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}
