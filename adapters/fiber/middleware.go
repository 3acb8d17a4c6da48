package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/internconnect/internconnect"
	"github.com/internconnect/internconnect/core"
)

// requireAuth rejects requests while no session is active and stores
// the session in the context for downstream handlers.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	session := a.ic.Auth.Current()
	if session == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": internconnect.ErrNoActiveSession.Error(),
		})
	}

	c.Locals("session", session)
	return c.Next()
}

func sessionFrom(c fiber.Ctx) *internconnect.Session {
	s, _ := c.Locals("session").(*internconnect.Session)
	return s
}

// handleServiceError maps typed service outcomes onto HTTP statuses.
// Validation failures keep their ordered message list so forms can
// render field-specific feedback.
func handleServiceError(c fiber.Ctx, err error) error {
	if ve, ok := core.AsValidationError(err); ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error":    "validation failed",
			"messages": ve.Messages,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, internconnect.ErrInvalidCredentials),
		errors.Is(err, internconnect.ErrNoActiveSession):
		status = http.StatusUnauthorized
	case errors.Is(err, internconnect.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, internconnect.ErrAccountNotFound),
		errors.Is(err, internconnect.ErrListingNotFound),
		errors.Is(err, internconnect.ErrApplicationNotFound),
		errors.Is(err, internconnect.ErrCourseNotFound),
		errors.Is(err, internconnect.ErrNotEnrolled):
		status = http.StatusNotFound
	case errors.Is(err, internconnect.ErrAccountExists),
		errors.Is(err, internconnect.ErrListingClosed),
		errors.Is(err, internconnect.ErrAlreadyApplied),
		errors.Is(err, internconnect.ErrAlreadyEnrolled),
		errors.Is(err, internconnect.ErrInvalidTransition):
		status = http.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
