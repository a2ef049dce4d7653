package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/service"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) IContactController {
	return &contactController{
		contactService: contactService,
	}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Create)
}

func (c *contactController) Create(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("All fields are required")
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return serverutils.NewBadRequest("All fields are required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contactService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}
