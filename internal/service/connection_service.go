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

const (
	defaultConnectionColor = "#94a3b8"
	defaultConnectionStyle = "curved"
	defaultStrokeWidth     = 2
)

type IConnectionService interface {
	List(ctx context.Context) ([]*dto.ConnectionResponse, error)
	Create(ctx context.Context, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error)
	Update(ctx context.Context, req *dto.UpdateConnectionRequest) (*dto.ConnectionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type connectionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	broadcaster    CanvasBroadcaster
	logger         logger.ILogger
}

func NewConnectionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	broadcaster CanvasBroadcaster,
	log logger.ILogger,
) IConnectionService {
	return &connectionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		broadcaster:    broadcaster,
		logger:         log,
	}
}

func (s *connectionService) List(ctx context.Context) ([]*dto.ConnectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	connections, err := uow.ConnectionRepository().FindAll(ctx, specification.CreatedDesc{})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConnectionResponse, len(connections))
	for i, c := range connections {
		res[i] = toConnectionResponse(c)
	}
	return res, nil
}

func (s *connectionService) Create(ctx context.Context, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error) {
	if req.FromId == req.ToId {
		return nil, ErrSelfConnection
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	for _, endpoint := range []uuid.UUID{req.FromId, req.ToId} {
		note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: endpoint})
		if err != nil {
			return nil, err
		}
		if note == nil {
			return nil, ErrNotFound
		}
	}

	id := uuid.New()
	if req.Id != nil {
		id = *req.Id
	}

	connection := entity.Connection{
		Id:          id,
		FromId:      req.FromId,
		ToId:        req.ToId,
		Color:       req.Color,
		Style:       req.Style,
		StrokeWidth: req.StrokeWidth,
		CreatedAt:   time.Now(),
	}
	if connection.Color == "" {
		connection.Color = defaultConnectionColor
	}
	if connection.Style == "" {
		connection.Style = defaultConnectionStyle
	}
	if connection.StrokeWidth <= 0 {
		connection.StrokeWidth = defaultStrokeWidth
	}

	if err := uow.ConnectionRepository().Create(ctx, &connection); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.ConnectionCreated, map[string]interface{}{
		"connection_id": connection.Id,
		"from_id":       connection.FromId,
		"to_id":         connection.ToId,
	})

	return toConnectionResponse(&connection), nil
}

func (s *connectionService) Update(ctx context.Context, req *dto.UpdateConnectionRequest) (*dto.ConnectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	connection, err := uow.ConnectionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, ErrNotFound
	}

	if req.Color != nil {
		connection.Color = *req.Color
	}
	if req.Style != nil {
		connection.Style = *req.Style
	}
	if req.StrokeWidth != nil {
		connection.StrokeWidth = *req.StrokeWidth
	}
	now := time.Now()
	connection.UpdatedAt = &now

	if err := uow.ConnectionRepository().Update(ctx, connection); err != nil {
		return nil, err
	}

	return toConnectionResponse(connection), nil
}

func (s *connectionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	connection, err := uow.ConnectionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if connection == nil {
		return ErrNotFound
	}

	if err := uow.ConnectionRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, events.ConnectionDeleted, map[string]interface{}{
		"connection_id": id,
	})

	return nil
}

func (s *connectionService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ConnectionService", "Failed to publish event", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(evt)
	}
}

func toConnectionResponse(c *entity.Connection) *dto.ConnectionResponse {
	return &dto.ConnectionResponse{
		Id:          c.Id,
		FromId:      c.FromId,
		ToId:        c.ToId,
		Color:       c.Color,
		Style:       c.Style,
		StrokeWidth: c.StrokeWidth,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
