package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careertrack/internal/domain"
	"careertrack/internal/render"
)

type fakeRenderer struct {
	lastHTML string
}

func (r *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	r.lastHTML = html
	return []byte("%PDF-fake"), nil
}

type fakeBlobs struct {
	objects map[string][]byte
	removed []string
	fail    error
}

func newFakeBlobs() *fakeBlobs { return &fakeBlobs{objects: map[string][]byte{}} }

func (b *fakeBlobs) Put(_ context.Context, key, _ string, data []byte) error {
	if b.fail != nil {
		return b.fail
	}
	b.objects[key] = data
	return nil
}

func (b *fakeBlobs) Remove(_ context.Context, key string) error {
	b.removed = append(b.removed, key)
	delete(b.objects, key)
	return nil
}

func (b *fakeBlobs) PublicURL(key string) string { return "http://blobs.local/bucket/" + key }

func (b *fakeBlobs) KeyFromURL(url string) (string, bool) {
	const base = "http://blobs.local/bucket/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	return strings.TrimPrefix(url, base), true
}

func newExportFixture(repo *fakeDraftRepo) (*ExportService, *fakeRenderer, *fakeBlobs) {
	r := &fakeRenderer{}
	b := newFakeBlobs()
	s := NewExportService(NewDraftService(repo), render.NewEngine(), r, b)
	return s, r, b
}

func TestExportInlineResume(t *testing.T) {
	s, r, b := newExportFixture(newFakeDraftRepo())
	d := validDraft()
	d.SelectedTemplate = "executive"

	url, err := s.Export(context.Background(), "u1", d, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(url, "http://blobs.local/bucket/exports/u1/") || !strings.HasSuffix(url, ".pdf") {
		t.Errorf("unexpected export url %q", url)
	}
	if len(b.objects) != 1 {
		t.Fatalf("expected one stored object, got %d", len(b.objects))
	}
	if !strings.Contains(r.lastHTML, "A B") {
		t.Error("rendered HTML missing the candidate name")
	}
}

func TestExportLoadsDraftWhenNil(t *testing.T) {
	repo := newFakeDraftRepo()
	svc := NewDraftService(repo)
	if _, err := svc.Save(context.Background(), "u1", validDraft()); err != nil {
		t.Fatalf("seed draft: %v", err)
	}
	s, _, _ := newExportFixture(repo)

	if _, err := s.Export(context.Background(), "u1", nil, ""); err != nil {
		t.Fatalf("export from draft: %v", err)
	}
	if _, err := s.Export(context.Background(), "stranger", nil, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for missing draft, got %v", err)
	}
}

func TestExportWrapsBlobFailure(t *testing.T) {
	s, _, b := newExportFixture(newFakeDraftRepo())
	b.fail = errors.New("bucket gone")

	_, err := s.Export(context.Background(), "u1", validDraft(), "modern")
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("want StorageError, got %v", err)
	}
}
