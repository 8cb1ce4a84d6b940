package service

import (
	"context"
	"time"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICourseService interface {
	List(ctx context.Context) ([]*dto.CourseResponse, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GroupNotes(ctx context.Context, req *dto.GroupNotesRequest) (*dto.GroupNotesResponse, error)
}

type courseService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICourseService {
	return &courseService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *courseService) List(ctx context.Context) ([]*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAll(ctx, specification.CreatedDesc{})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CourseResponse, len(courses))
	for i, c := range courses {
		res[i] = toCourseResponse(c)
	}
	return res, nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	id := uuid.New()
	if req.Id != nil {
		id = *req.Id
	}

	course := entity.Course{
		Id:           id,
		Name:         req.Name,
		Description:  req.Description,
		Color:        req.Color,
		InstructorId: req.InstructorId,
		CreatedAt:    time.Now(),
	}

	if err := uow.CourseRepository().Create(ctx, &course); err != nil {
		return nil, err
	}

	return toCourseResponse(&course), nil
}

func (s *courseService) Update(ctx context.Context, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Color != nil {
		course.Color = *req.Color
	}
	if req.InstructorId != nil {
		course.InstructorId = req.InstructorId
	}
	now := time.Now()
	course.UpdatedAt = &now

	if err := uow.CourseRepository().Update(ctx, course); err != nil {
		return nil, err
	}

	return toCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if course == nil {
		return ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Notes outlive their course; only the weak reference is cleared.
	if err := uow.NoteRepository().ClearCourse(ctx, id); err != nil {
		return err
	}
	if err := uow.CourseRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// GroupNotes assigns every note in the selection to the course. Deliberately
// not atomic: each note is attempted, and failures are reported together
// after all attempts settle.
func (s *courseService) GroupNotes(ctx context.Context, req *dto.GroupNotesRequest) (*dto.GroupNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: req.CourseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}

	res := &dto.GroupNotesResponse{}
	for _, noteId := range req.NoteIds {
		note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
		if err == nil && note == nil {
			err = ErrNotFound
		}
		if err == nil {
			now := time.Now()
			note.CourseId = &req.CourseId
			note.UpdatedAt = &now
			err = uow.NoteRepository().Update(ctx, note)
		}
		if err != nil {
			s.logger.Warn("CourseService", "Failed to group note", map[string]interface{}{
				"note_id":   noteId,
				"course_id": req.CourseId,
				"error":     err.Error(),
			})
			res.Failed = append(res.Failed, noteId)
			continue
		}
		res.Grouped = append(res.Grouped, noteId)
	}

	return res, nil
}

func toCourseResponse(c *entity.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		Id:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		Color:        c.Color,
		InstructorId: c.InstructorId,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
