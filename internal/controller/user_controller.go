package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emmanuelronoh/backend/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	// No session check here, matching the documented contract. Only public
	// fields are ever serialized.
	r.Get("/users", c.List)
}

func (c *userController) List(ctx *fiber.Ctx) error {
	res, err := c.userService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
