package controller

import (
	"errors"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/pkg/serverutils"
	"study-canvas-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConceptController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type conceptController struct {
	conceptService service.IConceptService
}

func NewConceptController(conceptService service.IConceptService) IConceptController {
	return &conceptController{
		conceptService: conceptService,
	}
}

func (c *conceptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/concept/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *conceptController) List(ctx *fiber.Ctx) error {
	res, err := c.conceptService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list concepts", res))
}

func (c *conceptController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConceptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conceptService.Create(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			return fiber.NewError(fiber.StatusConflict, "concept name already exists")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create concept", res))
}

func (c *conceptController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid concept id")
	}

	if err := c.conceptService.Delete(ctx.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "concept not found")
		case errors.Is(err, service.ErrConceptInUse):
			return fiber.NewError(fiber.StatusConflict, "concept still linked to notes")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete concept", nil))
}
