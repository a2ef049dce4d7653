package controller

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, requireSession fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowByTitle(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, requireSession fiber.Handler) {
	h := r.Group("/notes")
	h.Use(requireSession)
	h.Get("", c.List)
	h.Post("", c.Create)
	// Registered before /:id so "title" is not captured as an id
	h.Get("/title/:title", c.ShowByTitle)
	h.Get("/:id", c.Show)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Title and content required")
	}
	if req.Title == "" || req.Content == "" {
		return serverutils.NewBadRequest("Title and content required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return serverutils.NewNotFound("Note not found or forbidden")
	}

	res, err := c.noteService.Show(ctx.Context(), userId, uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) ShowByTitle(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	title := ctx.Params("title")
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}

	res, err := c.noteService.ShowByTitle(ctx.Context(), userId, title)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return serverutils.NewNotFound("Note not found or forbidden")
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}
	req.Id = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return serverutils.NewNotFound("Note not found or forbidden")
	}

	if err := c.noteService.Delete(ctx.Context(), userId, uint(id)); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
