package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteConcept struct {
	NoteId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConceptId uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Note    *Note    `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	Concept *Concept `gorm:"foreignKey:ConceptId;constraint:OnDelete:CASCADE"`
}

func (NoteConcept) TableName() string {
	return "note_concepts"
}
