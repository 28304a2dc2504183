package http

import (
	"encoding/json"

	"careertrack/internal/auth"
	"careertrack/internal/model"
	"careertrack/internal/render"
	"careertrack/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Handler wires the resume core (drafts, rendering, export) and the
// surrounding CRUD surface into fiber routes.
type Handler struct {
	drafts       *usecase.DraftService
	exports      *usecase.ExportService
	profile      *usecase.ProfileService
	engine       *render.Engine
	jobs         JobsRepo
	applications ApplicationsRepo
	achievements AchievementsRepo
	schemaPath   string
}

func NewHandler(
	drafts *usecase.DraftService,
	exports *usecase.ExportService,
	profile *usecase.ProfileService,
	engine *render.Engine,
	jobs JobsRepo,
	applications ApplicationsRepo,
	achievements AchievementsRepo,
	schemaPath string,
) *Handler {
	return &Handler{
		drafts:       drafts,
		exports:      exports,
		profile:      profile,
		engine:       engine,
		jobs:         jobs,
		applications: applications,
		achievements: achievements,
		schemaPath:   schemaPath,
	}
}

// RegisterRoutes mounts every route behind the auth middleware.
func (h *Handler) RegisterRoutes(app *fiber.App, verifier auth.Verifier) {
	api := app.Group("/", RequireAuth(verifier))

	api.Get("/resume/templates", h.ListTemplates)
	api.Get("/resume/draft", h.GetDraft)
	api.Put("/resume/draft", h.SaveDraft)
	api.Post("/resume/import", h.ImportResume)
	api.Post("/resume/preview", h.Preview)
	api.Post("/resume/export", h.Export)

	api.Get("/jobs", h.ListJobs)
	api.Get("/jobs/saved", h.ListSavedJobs)
	api.Get("/jobs/:id", h.GetJob)
	api.Post("/jobs/:id/save", h.SaveJob)
	api.Delete("/jobs/:id/save", h.UnsaveJob)

	api.Get("/applications", h.ListApplications)
	api.Post("/applications", h.CreateApplication)
	api.Put("/applications/:id", h.UpdateApplication)
	api.Delete("/applications/:id", h.DeleteApplication)

	api.Get("/profile", h.GetProfile)
	api.Post("/profile/photo", h.UploadPhoto)
	api.Post("/profile/experience", h.AddExperience)
	api.Put("/profile/experience/:id", h.UpdateExperience)
	api.Delete("/profile/experience/:id", h.RemoveExperience)
	api.Post("/profile/education", h.AddEducation)
	api.Put("/profile/education/:id", h.UpdateEducation)
	api.Delete("/profile/education/:id", h.RemoveEducation)
	api.Post("/profile/skills", h.AddSkill)
	api.Delete("/profile/skills/:id", h.RemoveSkill)
	api.Post("/profile/projects", h.AddProject)
	api.Delete("/profile/projects/:id", h.RemoveProject)

	api.Get("/achievements", h.ListAchievements)
	api.Post("/achievements", h.AddAchievement)
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": h.engine.IDs()})
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	data, err := h.drafts.Load(c.Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

func (h *Handler) SaveDraft(c *fiber.Ctx) error {
	var data model.ResumeData
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	ref, err := h.drafts.Save(c.Context(), userID(c), &data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"draftRef": ref})
}

// ImportResume accepts a raw resume document produced outside the
// editor. The payload is checked against the JSON schema before going
// through the normal save path.
func (h *Handler) ImportResume(c *fiber.Ctx) error {
	raw := c.Body()
	if err := model.ValidateResumeJSON(h.schemaPath, raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var data model.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	ref, err := h.drafts.Save(c.Context(), userID(c), &data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"draftRef": ref})
}

type renderReq struct {
	Resume     *model.ResumeData `json:"resume"`
	TemplateID string            `json:"templateId"`
}

// Preview renders the document structure for the client-side preview
// pane. A nil resume previews the saved draft.
func (h *Handler) Preview(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	data := req.Resume
	if data == nil {
		loaded, err := h.drafts.Load(c.Context(), userID(c))
		if err != nil {
			return respondError(c, err)
		}
		data = loaded
	}
	model.FillDefaults(data)
	templateID := req.TemplateID
	if templateID == "" {
		templateID = data.SelectedTemplate
	}
	return c.JSON(h.engine.Render(data, templateID))
}

func (h *Handler) Export(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Resume != nil {
		model.FillDefaults(req.Resume)
	}
	url, err := h.exports.Export(c.Context(), userID(c), req.Resume, req.TemplateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
