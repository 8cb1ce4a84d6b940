package model

import (
	"time"

	"github.com/google/uuid"
)

type Instructor struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	Avatar    *string   `gorm:"type:text"`
	Color     string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Instructor) TableName() string {
	return "instructors"
}
