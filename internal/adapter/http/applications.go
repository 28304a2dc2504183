package http

import (
	"context"

	"careertrack/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationsRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Application, error)
	Create(ctx context.Context, a *domain.Application) error
	Update(ctx context.Context, a *domain.Application) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

func (h *Handler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.applications.ListByUser(c.Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"applications": apps})
}

func (h *Handler) CreateApplication(c *fiber.Ctx) error {
	var a domain.Application
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if a.Company == "" || a.Position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "company and position are required"})
	}
	a.UserID = userID(c)
	if err := h.applications.Create(c.Context(), &a); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *Handler) UpdateApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid application id"})
	}
	var a domain.Application
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	a.ID = id
	a.UserID = userID(c)
	if err := h.applications.Update(c.Context(), &a); err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}

func (h *Handler) DeleteApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid application id"})
	}
	if err := h.applications.Delete(c.Context(), userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
