package service

import (
	"context"
	"encoding/json"
	"time"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"
	"study-canvas-be/pkg/events"

	"github.com/google/uuid"
)

type IConceptService interface {
	List(ctx context.Context) ([]*dto.ConceptResponse, error)
	Create(ctx context.Context, req *dto.CreateConceptRequest) (*dto.ConceptResponse, error)
	Link(ctx context.Context, req *dto.LinkConceptRequest) (*dto.LinkConceptResponse, error)
	Unlink(ctx context.Context, noteId, conceptId uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type conceptService struct {
	uowFactory    unitofwork.RepositoryFactory
	linkPublisher IPublisherService
	broadcaster   CanvasBroadcaster
	logger        logger.ILogger
}

func NewConceptService(
	uowFactory unitofwork.RepositoryFactory,
	linkPublisher IPublisherService,
	broadcaster CanvasBroadcaster,
	log logger.ILogger,
) IConceptService {
	return &conceptService{
		uowFactory:    uowFactory,
		linkPublisher: linkPublisher,
		broadcaster:   broadcaster,
		logger:        log,
	}
}

func (s *conceptService) List(ctx context.Context) ([]*dto.ConceptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	concepts, err := uow.ConceptRepository().FindAll(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	links, err := uow.NoteConceptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	countByConcept := make(map[uuid.UUID]int64, len(concepts))
	for _, l := range links {
		countByConcept[l.ConceptId]++
	}

	res := make([]*dto.ConceptResponse, len(concepts))
	for i, c := range concepts {
		c.NotesCount = countByConcept[c.Id]
		res[i] = toConceptResponse(c)
	}
	return res, nil
}

func (s *conceptService) Create(ctx context.Context, req *dto.CreateConceptRequest) (*dto.ConceptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ConceptRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	id := uuid.New()
	if req.Id != nil {
		id = *req.Id
	}

	concept := entity.Concept{
		Id:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Frequency:   0,
		CreatedAt:   time.Now(),
	}

	if err := uow.ConceptRepository().Create(ctx, &concept); err != nil {
		return nil, err
	}

	return toConceptResponse(&concept), nil
}

// Link tags a note with a concept by name, creating the concept on first use.
// The link insert and the frequency bump commit together.
func (s *conceptService) Link(ctx context.Context, req *dto.LinkConceptRequest) (*dto.LinkConceptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	concept, err := uow.ConceptRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if concept == nil {
		concept = &entity.Concept{
			Id:        uuid.New(),
			Name:      req.Name,
			Category:  req.Category,
			CreatedAt: time.Now(),
		}
		if err := uow.ConceptRepository().Create(ctx, concept); err != nil {
			return nil, err
		}
	}

	existing, err := uow.NoteConceptRepository().FindOne(ctx,
		specification.ByNote{NoteID: req.NoteId},
		specification.ByConcept{ConceptID: concept.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyLinked
	}

	link := entity.NoteConcept{
		NoteId:    req.NoteId,
		ConceptId: concept.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.NoteConceptRepository().Create(ctx, &link); err != nil {
		return nil, err
	}
	if err := uow.ConceptRepository().IncrementFrequency(ctx, concept.Id, 1); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	concept.Frequency++
	s.publishLinkChanged(ctx, concept.Id)

	return &dto.LinkConceptResponse{
		Concept: *toConceptResponse(concept),
		Link: dto.NoteConceptLink{
			NoteId:    link.NoteId,
			ConceptId: link.ConceptId,
			CreatedAt: link.CreatedAt,
		},
	}, nil
}

func (s *conceptService) Unlink(ctx context.Context, noteId, conceptId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	link, err := uow.NoteConceptRepository().FindOne(ctx,
		specification.ByNote{NoteID: noteId},
		specification.ByConcept{ConceptID: conceptId},
	)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrLinkNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteConceptRepository().Delete(ctx, noteId, conceptId); err != nil {
		return err
	}
	if err := uow.ConceptRepository().IncrementFrequency(ctx, conceptId, -1); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishLinkChanged(ctx, conceptId)
	return nil
}

// Delete only succeeds on concepts with no remaining note links.
func (s *conceptService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	concept, err := uow.ConceptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if concept == nil {
		return ErrNotFound
	}

	linkCount, err := uow.NoteConceptRepository().Count(ctx, specification.ByConcept{ConceptID: id})
	if err != nil {
		return err
	}
	if linkCount > 0 {
		return ErrConceptInUse
	}

	return uow.ConceptRepository().Delete(ctx, id)
}

func (s *conceptService) publishLinkChanged(ctx context.Context, conceptId uuid.UUID) {
	evt := events.BaseEvent{
		Type:       events.ConceptLinkChanged,
		Data:       map[string]interface{}{"concept_id": conceptId.String()},
		OccurredAt: time.Now(),
	}

	if s.linkPublisher != nil {
		payload, err := json.Marshal(evt.Data)
		if err == nil {
			err = s.linkPublisher.Publish(ctx, payload)
		}
		if err != nil {
			s.logger.Warn("ConceptService", "Failed to publish link change", map[string]interface{}{
				"concept_id": conceptId,
				"error":      err.Error(),
			})
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(evt)
	}
}

func toConceptResponse(c *entity.Concept) *dto.ConceptResponse {
	return &dto.ConceptResponse{
		Id:          c.Id,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Frequency:   c.Frequency,
		NotesCount:  c.NotesCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
