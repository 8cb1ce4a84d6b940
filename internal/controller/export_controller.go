package controller

import (
	"errors"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/pkg/serverutils"
	"study-canvas-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	ExportNotes(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Post("pdf", c.ExportNotes)
}

func (c *exportController) ExportNotes(ctx *fiber.Ctx) error {
	var req dto.ExportNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	pdf, err := c.exportService.ExportNotes(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no notes found for export")
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="study-notes.pdf"`)
	return ctx.Send(pdf)
}
