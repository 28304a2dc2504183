package http

import (
	"context"
	"io"

	"careertrack/internal/domain"
	"careertrack/internal/model"

	"github.com/gofiber/fiber/v2"
)

type AchievementsRepo interface {
	Add(ctx context.Context, a *domain.Achievement) error
	ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error)
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	p, err := h.profile.Get(c.Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "photo file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable photo file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable photo file"})
	}

	url, err := h.profile.SetPhoto(c.Context(), userID(c), fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photoUrl": url})
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var e model.Experience
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.profile.AddExperience(c.Context(), userID(c), e); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var e model.Experience
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	e.ID = c.Params("id")
	if err := h.profile.UpdateExperience(c.Context(), userID(c), e); err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	if err := h.profile.RemoveExperience(c.Context(), userID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.profile.AddEducation(c.Context(), userID(c), e); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	e.ID = c.Params("id")
	if err := h.profile.UpdateEducation(c.Context(), userID(c), e); err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	if err := h.profile.RemoveEducation(c.Context(), userID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var s model.Skill
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.profile.AddSkill(c.Context(), userID(c), s); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	if err := h.profile.RemoveSkill(c.Context(), userID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	var p model.Project
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.profile.AddProject(c.Context(), userID(c), p); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) RemoveProject(c *fiber.Ctx) error {
	if err := h.profile.RemoveProject(c.Context(), userID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListAchievements(c *fiber.Ctx) error {
	out, err := h.achievements.ListByUser(c.Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"achievements": out})
}

func (h *Handler) AddAchievement(c *fiber.Ctx) error {
	var a domain.Achievement
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if a.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}
	a.UserID = userID(c)
	if err := h.achievements.Add(c.Context(), &a); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}
