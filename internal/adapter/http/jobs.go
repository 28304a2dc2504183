package http

import (
	"context"

	"careertrack/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// JobsRepo is the listing/bookmark surface the handlers need.
type JobsRepo interface {
	List(ctx context.Context, limit, offset int) ([]domain.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	SaveForUser(ctx context.Context, userID string, jobID uuid.UUID) error
	UnsaveForUser(ctx context.Context, userID string, jobID uuid.UUID) error
	ListSaved(ctx context.Context, userID string) ([]domain.Job, error)
}

func (h *Handler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.List(c.Context(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	job, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

func (h *Handler) SaveJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	if err := h.jobs.SaveForUser(c.Context(), userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"saved": true})
}

func (h *Handler) UnsaveJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	if err := h.jobs.UnsaveForUser(c.Context(), userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"saved": false})
}

func (h *Handler) ListSavedJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListSaved(c.Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}
