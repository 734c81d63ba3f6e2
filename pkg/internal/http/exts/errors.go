package exts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler sends unauthenticated visitors to the login page and renders
// everything else as a JSON error with the matching status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrUnauthenticated) {
		return RedirectToLogin(c)
	}

	code := fiber.StatusInternalServerError
	message := "internal server error"
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
		message = ferr.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
		message = "internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
