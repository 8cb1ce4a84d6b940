package service

import (
	"context"
	"encoding/json"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// ConceptLinkTopic carries link change notifications from the concept
// service to the frequency reconciler.
const ConceptLinkTopic = "concept.link.changed"

type IReconcilerService interface {
	Start(ctx context.Context) error
	Reconcile(ctx context.Context, conceptId uuid.UUID) error
}

// reconcilerService re-derives a concept's stored frequency from its actual
// link count whenever a link changes. The transactional increment keeps the
// counter right in the common case; this catches drift after crashes or
// manual edits.
type reconcilerService struct {
	subscriber message.Subscriber
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewReconcilerService(
	subscriber message.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IReconcilerService {
	return &reconcilerService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *reconcilerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, ConceptLinkTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(ctx, msg)
			msg.Ack()
		}
	}()

	s.logger.Info("ReconcilerService", "Concept frequency reconciler started", nil)
	return nil
}

func (s *reconcilerService) handle(ctx context.Context, msg *message.Message) {
	var payload struct {
		ConceptId string `json:"concept_id"`
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Warn("ReconcilerService", "Malformed link change payload", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	conceptId, err := uuid.Parse(payload.ConceptId)
	if err != nil {
		s.logger.Warn("ReconcilerService", "Invalid concept id in payload", map[string]interface{}{
			"concept_id": payload.ConceptId,
		})
		return
	}

	if err := s.Reconcile(ctx, conceptId); err != nil {
		s.logger.Error("ReconcilerService", "Failed to reconcile concept frequency", map[string]interface{}{
			"concept_id": conceptId,
			"error":      err.Error(),
		})
	}
}

// Reconcile overwrites the stored frequency with the live link count when
// the two disagree. Concepts deleted between publish and delivery are a
// no-op.
func (s *reconcilerService) Reconcile(ctx context.Context, conceptId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	concept, err := uow.ConceptRepository().FindOne(ctx, specification.ByID{ID: conceptId})
	if err != nil {
		return err
	}
	if concept == nil {
		return nil
	}

	linkCount, err := uow.NoteConceptRepository().Count(ctx, specification.ByConcept{ConceptID: conceptId})
	if err != nil {
		return err
	}

	if concept.Frequency == int(linkCount) {
		return nil
	}

	s.logger.Warn("ReconcilerService", "Concept frequency drifted, correcting", map[string]interface{}{
		"concept_id": conceptId,
		"stored":     concept.Frequency,
		"actual":     linkCount,
	})
	return uow.ConceptRepository().SetFrequency(ctx, conceptId, int(linkCount))
}
