package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, requireSession fiber.Handler)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	CheckSession(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, requireSession fiber.Handler) {
	r.Post("/signup", c.Signup)
	r.Post("/login", c.Login)
	r.Delete("/logout", c.Logout)
	r.Get("/check_session", requireSession, c.CheckSession)
	r.Post("/forgot_password", c.ForgotPassword)
	r.Post("/reset_password", c.ResetPassword)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Email and password required")
	}
	if req.Email == "" || req.Password == "" {
		return serverutils.NewBadRequest("Email and password required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Email and password required")
	}
	if req.Email == "" || req.Password == "" {
		return serverutils.NewBadRequest("Email and password required")
	}

	res, creds, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    creds.Token,
		Expires:  creds.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.Context(), ctx.Cookies(serverutils.SessionCookieName)); err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *authController) CheckSession(ctx *fiber.Ctx) error {
	userId := ctx.Locals(serverutils.LocalsUserId).(uint)

	res, err := c.service.CurrentUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Email required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ForgotPassword(ctx.Context(), &req); err != nil {
		return err
	}

	// Same response whether or not the email exists
	return ctx.JSON(fiber.Map{"message": "If the email exists, a reset link has been sent"})
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Token and new password required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ResetPassword(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"message": "Password reset successful"})
}
