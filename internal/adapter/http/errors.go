package http

import (
	"errors"

	"careertrack/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// respondError maps the service error taxonomy onto HTTP statuses. Raw
// storage errors are logged here and never reach the client body.
func respondError(c *fiber.Ctx, err error) error {
	var (
		ve *domain.ValidationError
		mf *domain.MissingFieldsError
		se *domain.StorageError
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
	case errors.As(err, &mf):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": mf.Error(), "fields": mf.Fields})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please sign in"})
	case errors.As(err, &se):
		log.WithError(err).Error("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "temporary failure, please try again"})
	default:
		log.WithError(err).Error("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
