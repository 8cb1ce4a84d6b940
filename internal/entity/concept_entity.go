package entity

import (
	"time"

	"github.com/google/uuid"
)

// Concept is a named topic that can be linked to many notes. Frequency is the
// stored counter of live note links; NotesCount is the computed link count
// returned by list queries (the two should agree, see the reconciler).
type Concept struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Category    *string
	Description *string
	Frequency   int
	NotesCount  int64 `gorm:"-"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
