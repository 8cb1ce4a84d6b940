package controller

import (
	"errors"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/pkg/serverutils"
	"study-canvas-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInstructorController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type instructorController struct {
	instructorService service.IInstructorService
}

func NewInstructorController(instructorService service.IInstructorService) IInstructorController {
	return &instructorController{
		instructorService: instructorService,
	}
}

func (c *instructorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/instructor/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *instructorController) List(ctx *fiber.Ctx) error {
	res, err := c.instructorService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list instructors", res))
}

func (c *instructorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInstructorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.instructorService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create instructor", res))
}

func (c *instructorController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid instructor id")
	}

	var req dto.UpdateInstructorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.instructorService.Update(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "instructor not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update instructor", res))
}

func (c *instructorController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid instructor id")
	}

	if err := c.instructorService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "instructor not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete instructor", nil))
}
