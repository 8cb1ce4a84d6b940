package model

import (
	"time"

	"github.com/google/uuid"
)

type Concept struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category    *string   `gorm:"type:varchar(128)"`
	Description *string   `gorm:"type:text"`
	Frequency   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Concept) TableName() string {
	return "concepts"
}
