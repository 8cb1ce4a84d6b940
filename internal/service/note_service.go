package service

import (
	"context"
	"time"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"
	"study-canvas-be/pkg/events"
	pktNats "study-canvas-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Move(ctx context.Context, req *dto.MoveNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	broadcaster    CanvasBroadcaster
	logger         logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	broadcaster CanvasBroadcaster,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		broadcaster:    broadcaster,
		logger:         log,
	}
}

func (s *noteService) List(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.WithCourse{},
		specification.CreatedDesc{},
	)
	if err != nil {
		return nil, err
	}

	// Attach concept refs in one pass instead of a query per note.
	links, err := uow.NoteConceptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	concepts, err := uow.ConceptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	conceptById := make(map[uuid.UUID]*entity.Concept, len(concepts))
	for _, c := range concepts {
		conceptById[c.Id] = c
	}
	conceptsByNote := make(map[uuid.UUID][]*entity.Concept)
	for _, l := range links {
		if c, ok := conceptById[l.ConceptId]; ok {
			conceptsByNote[l.NoteId] = append(conceptsByNote[l.NoteId], c)
		}
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		n.Concepts = conceptsByNote[n.Id]
		res[i] = toNoteResponse(n)
	}
	return res, nil
}

func (s *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.WithCourse{},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	links, err := uow.NoteConceptRepository().FindAll(ctx, specification.ByNote{NoteID: id})
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		concept, err := uow.ConceptRepository().FindOne(ctx, specification.ByID{ID: l.ConceptId})
		if err != nil {
			return nil, err
		}
		if concept != nil {
			note.Concepts = append(note.Concepts, concept)
		}
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	id := uuid.New()
	if req.Id != nil {
		id = *req.Id
	}

	note := entity.Note{
		Id:              id,
		Title:           req.Title,
		Content:         req.Content,
		Kind:            req.Kind,
		PositionX:       req.PositionX,
		PositionY:       req.PositionY,
		Width:           req.Width,
		Height:          req.Height,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		MainTakeaway:    req.MainTakeaway,
		CourseId:        req.CourseId,
		CreatedAt:       time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"title":   note.Title,
	})

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	applyNotePatch(note, req)
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NoteUpdated, map[string]interface{}{
		"note_id": note.Id,
	})

	return toNoteResponse(note), nil
}

func (s *noteService) Move(ctx context.Context, req *dto.MoveNoteRequest) (*dto.NoteResponse, error) {
	return s.Update(ctx, &dto.UpdateNoteRequest{
		Id:        req.Id,
		PositionX: &req.PositionX,
		PositionY: &req.PositionY,
	})
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}

	links, err := uow.NoteConceptRepository().FindAll(ctx, specification.ByNote{NoteID: id})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Connections referencing the note die with it.
	if err := uow.ConnectionRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}

	// Concept links die too; each one gives back its frequency count.
	for _, l := range links {
		if err := uow.ConceptRepository().IncrementFrequency(ctx, l.ConceptId, -1); err != nil {
			return err
		}
	}
	if err := uow.NoteConceptRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, events.NoteDeleted, map[string]interface{}{
		"note_id": id,
	})

	return nil
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("NoteService", "Failed to publish event", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(evt)
	}
}

func applyNotePatch(note *entity.Note, req *dto.UpdateNoteRequest) {
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.PositionX != nil {
		note.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		note.PositionY = *req.PositionY
	}
	if req.Width != nil {
		note.Width = *req.Width
	}
	if req.Height != nil {
		note.Height = *req.Height
	}
	if req.BackgroundColor != nil {
		note.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		note.TextColor = *req.TextColor
	}
	if req.MainTakeaway != nil {
		note.MainTakeaway = req.MainTakeaway
	}
	if req.CourseId != nil {
		note.CourseId = req.CourseId
	}
	if req.ClearCourse {
		note.CourseId = nil
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	res := &dto.NoteResponse{
		Id:              n.Id,
		Title:           n.Title,
		Content:         n.Content,
		Kind:            n.Kind,
		PositionX:       n.PositionX,
		PositionY:       n.PositionY,
		Width:           n.Width,
		Height:          n.Height,
		BackgroundColor: n.BackgroundColor,
		TextColor:       n.TextColor,
		MainTakeaway:    n.MainTakeaway,
		CourseId:        n.CourseId,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
	if n.Course != nil {
		res.Course = toCourseResponse(n.Course)
	}
	for _, c := range n.Concepts {
		res.Concepts = append(res.Concepts, dto.ConceptRef{
			Id:       c.Id,
			Name:     c.Name,
			Category: c.Category,
		})
	}
	return res
}
