package serverutils

import "github.com/gofiber/fiber/v2"

// AppError carries an HTTP status alongside the client-facing message. The
// error handler middleware turns it into an {"error": message} body.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewInternal(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message}
}
