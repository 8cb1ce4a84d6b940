package controller

import (
	"errors"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/pkg/serverutils"
	"study-canvas-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConnectionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type connectionController struct {
	connectionService service.IConnectionService
}

func NewConnectionController(connectionService service.IConnectionService) IConnectionController {
	return &connectionController{
		connectionService: connectionService,
	}
}

func (c *connectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/connection/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *connectionController) List(ctx *fiber.Ctx) error {
	res, err := c.connectionService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list connections", res))
}

func (c *connectionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConnectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.connectionService.Create(ctx.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfConnection):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "connection endpoints must differ")
		case errors.Is(err, service.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "note not found")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create connection", res))
}

func (c *connectionController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid connection id")
	}

	var req dto.UpdateConnectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.connectionService.Update(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "connection not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update connection", res))
}

func (c *connectionController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid connection id")
	}

	if err := c.connectionService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "connection not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete connection", nil))
}
