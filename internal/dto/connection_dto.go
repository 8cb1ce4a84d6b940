package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConnectionRequest struct {
	Id          *uuid.UUID `json:"id"`
	FromId      uuid.UUID  `json:"from_id" validate:"required"`
	ToId        uuid.UUID  `json:"to_id" validate:"required"`
	Color       string     `json:"color"`
	Style       string     `json:"style"`
	StrokeWidth float64    `json:"stroke_width"`
}

type UpdateConnectionRequest struct {
	Id          uuid.UUID
	Color       *string  `json:"color"`
	Style       *string  `json:"style" validate:"omitempty,oneof=straight curved elbow"`
	StrokeWidth *float64 `json:"stroke_width" validate:"omitempty,gt=0"`
}

type ConnectionResponse struct {
	Id          uuid.UUID  `json:"id"`
	FromId      uuid.UUID  `json:"from_id"`
	ToId        uuid.UUID  `json:"to_id"`
	Color       string     `json:"color"`
	Style       string     `json:"style"`
	StrokeWidth float64    `json:"stroke_width"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
