package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInstructorRequest struct {
	Id     *uuid.UUID `json:"id"`
	Name   string     `json:"name" validate:"required"`
	Email  *string    `json:"email" validate:"omitempty,email"`
	Avatar *string    `json:"avatar"`
	Color  string     `json:"color"`
}

type UpdateInstructorRequest struct {
	Id     uuid.UUID
	Name   *string `json:"name"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Avatar *string `json:"avatar"`
	Color  *string `json:"color"`
}

type InstructorResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	Avatar    *string    `json:"avatar"`
	Color     string     `json:"color"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
