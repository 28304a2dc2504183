package usecase

import (
	"context"
	"errors"
	"fmt"

	"careertrack/internal/domain"
	"careertrack/internal/model"
	"careertrack/internal/render"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// BlobStore is the object-storage collaborator: bytes go in under a
// key, a public URL comes out, and objects can be removed by key.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
}

// ExportService renders a resume through its chosen template and stores
// the PDF artifact, returning a public URL.
type ExportService struct {
	drafts   *DraftService
	engine   *render.Engine
	renderer Renderer
	blobs    BlobStore
}

func NewExportService(drafts *DraftService, engine *render.Engine, renderer Renderer, blobs BlobStore) *ExportService {
	return &ExportService{drafts: drafts, engine: engine, renderer: renderer, blobs: blobs}
}

// Export renders data with templateID and uploads the resulting PDF.
// A nil data exports the user's saved draft; an empty templateID uses
// the draft's own selection.
func (s *ExportService) Export(ctx context.Context, userID string, data *model.ResumeData, templateID string) (string, error) {
	if data == nil {
		loaded, err := s.drafts.Load(ctx, userID)
		if err != nil {
			return "", err
		}
		data = loaded
	}
	if templateID == "" {
		templateID = data.SelectedTemplate
	}

	doc := s.engine.Render(data, templateID)
	html, err := s.engine.RenderHTML(doc)
	if err != nil {
		return "", err
	}

	pdf, err := s.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return "", fmt.Errorf("pdf render: %w", err)
	}

	key := fmt.Sprintf("exports/%s/%s.pdf", userID, uuid.New().String())
	if err := s.blobs.Put(ctx, key, "application/pdf", pdf); err != nil {
		var se *domain.StorageError
		if !errors.As(err, &se) {
			err = &domain.StorageError{Op: "put export", Err: err}
		}
		log.WithError(err).Error("failed to upload export")
		return "", err
	}
	return s.blobs.PublicURL(key), nil
}
