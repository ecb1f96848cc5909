package handlers

import (
	"errors"

	applog "mywallet/internal/log"
	"mywallet/internal/services"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto the HTTP surface: validation errors come
// back as a 422 message array, the identity sentinels keep their plain-text
// bodies, anything else is a 500 with the underlying message.
func fail(c *fiber.Ctx, action string, err error) error {
	if ve, ok := services.AsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ve.Messages)
	}
	switch {
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).SendString(err.Error())
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString(err.Error())
	case errors.Is(err, services.ErrBadCreds), errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
}
