package service

import (
	"context"
	"time"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IInstructorService interface {
	List(ctx context.Context) ([]*dto.InstructorResponse, error)
	Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error)
	Update(ctx context.Context, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type instructorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInstructorService(uowFactory unitofwork.RepositoryFactory) IInstructorService {
	return &instructorService{
		uowFactory: uowFactory,
	}
}

func (s *instructorService) List(ctx context.Context) ([]*dto.InstructorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instructors, err := uow.InstructorRepository().FindAll(ctx, specification.CreatedDesc{})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.InstructorResponse, len(instructors))
	for i, ins := range instructors {
		res[i] = toInstructorResponse(ins)
	}
	return res, nil
}

func (s *instructorService) Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	id := uuid.New()
	if req.Id != nil {
		id = *req.Id
	}

	instructor := entity.Instructor{
		Id:        id,
		Name:      req.Name,
		Email:     req.Email,
		Avatar:    req.Avatar,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}

	if err := uow.InstructorRepository().Create(ctx, &instructor); err != nil {
		return nil, err
	}

	return toInstructorResponse(&instructor), nil
}

func (s *instructorService) Update(ctx context.Context, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instructor, err := uow.InstructorRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Email != nil {
		instructor.Email = req.Email
	}
	if req.Avatar != nil {
		instructor.Avatar = req.Avatar
	}
	if req.Color != nil {
		instructor.Color = *req.Color
	}
	now := time.Now()
	instructor.UpdatedAt = &now

	if err := uow.InstructorRepository().Update(ctx, instructor); err != nil {
		return nil, err
	}

	return toInstructorResponse(instructor), nil
}

// Delete removes the instructor and clears the weak reference on dependent
// courses. Courses are never cascade-deleted.
func (s *instructorService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instructor, err := uow.InstructorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if instructor == nil {
		return ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.CourseRepository().ClearInstructor(ctx, id); err != nil {
		return err
	}
	if err := uow.InstructorRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toInstructorResponse(i *entity.Instructor) *dto.InstructorResponse {
	return &dto.InstructorResponse{
		Id:        i.Id,
		Name:      i.Name,
		Email:     i.Email,
		Avatar:    i.Avatar,
		Color:     i.Color,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
