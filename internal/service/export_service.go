package service

import (
	"context"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"
	"study-canvas-be/pkg/export"

	"github.com/google/uuid"
)

type IExportService interface {
	ExportNotes(ctx context.Context, req *dto.ExportNotesRequest) ([]byte, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExportService(uowFactory unitofwork.RepositoryFactory) IExportService {
	return &exportService{
		uowFactory: uowFactory,
	}
}

// ExportNotes renders the selected notes as a single PDF. Missing ids are
// skipped silently; an all-missing selection is still an error.
func (s *exportService) ExportNotes(ctx context.Context, req *dto.ExportNotesRequest) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.NoteIds},
		specification.WithCourse{},
		specification.CreatedDesc{},
	)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrNotFound
	}

	concepts, err := uow.ConceptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	conceptById := make(map[uuid.UUID]*entity.Concept, len(concepts))
	for _, c := range concepts {
		conceptById[c.Id] = c
	}

	for _, n := range notes {
		links, err := uow.NoteConceptRepository().FindAll(ctx, specification.ByNote{NoteID: n.Id})
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			if c, ok := conceptById[l.ConceptId]; ok {
				n.Concepts = append(n.Concepts, c)
			}
		}
	}

	return export.RenderNotes(notes)
}
