package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"careertrack/internal/domain"
	"careertrack/internal/model"
)

// fakeDraftRepo emulates the store's upsert semantics in memory.
type fakeDraftRepo struct {
	records map[string]model.ResumeData
	ids     map[string]string
	fail    error
	seq     int
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{records: map[string]model.ResumeData{}, ids: map[string]string{}}
}

func (r *fakeDraftRepo) FindByUser(_ context.Context, userID string) (*model.ResumeData, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	rec, ok := r.records[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *fakeDraftRepo) Upsert(_ context.Context, userID string, data *model.ResumeData) (string, error) {
	if r.fail != nil {
		return "", r.fail
	}
	r.records[userID] = *data
	if _, ok := r.ids[userID]; !ok {
		r.seq++
		r.ids[userID] = fmt.Sprintf("draft-%d", r.seq)
	}
	return r.ids[userID], nil
}

func validDraft() *model.ResumeData {
	return &model.ResumeData{
		PersonalInfo: model.PersonalInfo{FirstName: "A", LastName: "B", Email: "b@x.com"},
	}
}

func TestSaveRejectsMissingPersonalInfo(t *testing.T) {
	s := NewDraftService(newFakeDraftRepo())
	d := validDraft()
	d.PersonalInfo.FirstName = ""
	_, err := s.Save(context.Background(), "u1", d)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestSaveAcceptsLenientDraft(t *testing.T) {
	// phone/location/summary blank and nil sections: still persistable
	s := NewDraftService(newFakeDraftRepo())
	ref, err := s.Save(context.Background(), "u1", validDraft())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if ref == "" {
		t.Error("expected a draft ref")
	}
}

func TestUpsertRoundTrip(t *testing.T) {
	repo := newFakeDraftRepo()
	s := NewDraftService(repo)
	ctx := context.Background()

	d1 := validDraft()
	d1.Skills = []model.Skill{{ID: "s1", Name: "Go", Level: model.LevelExpert}}
	ref1, err := s.Save(ctx, "u1", d1)
	if err != nil {
		t.Fatalf("save d1: %v", err)
	}

	got, err := s.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, d1) {
		t.Errorf("round trip mismatch: got %+v want %+v", got, d1)
	}

	// second save replaces wholesale, never merges
	d2 := validDraft()
	d2.PersonalInfo.Summary = "rewritten"
	d2.Projects = []model.Project{{ID: "p1", Name: "CLI", Description: "tool"}}
	ref2, err := s.Save(ctx, "u1", d2)
	if err != nil {
		t.Fatalf("save d2: %v", err)
	}
	if ref1 != ref2 {
		t.Errorf("draft ref changed across upsert: %q vs %q", ref1, ref2)
	}

	got, err = s.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got.Skills) != 0 {
		t.Error("old skills leaked into the replaced draft")
	}
	if !reflect.DeepEqual(got, d2) {
		t.Errorf("replace mismatch: got %+v want %+v", got, d2)
	}
}

func TestLoadMissingDraft(t *testing.T) {
	s := NewDraftService(newFakeDraftRepo())
	_, err := s.Load(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSaveFillsDefaults(t *testing.T) {
	repo := newFakeDraftRepo()
	s := NewDraftService(repo)
	if _, err := s.Save(context.Background(), "u1", validDraft()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := repo.records["u1"]
	if got.SelectedTemplate != "modern" {
		t.Errorf("selectedTemplate = %q, want modern", got.SelectedTemplate)
	}
	if got.Experience == nil || got.Education == nil || got.Skills == nil || got.Projects == nil {
		t.Error("stored draft has nil sections")
	}
}

func TestSavePropagatesStorageError(t *testing.T) {
	repo := newFakeDraftRepo()
	repo.fail = &domain.StorageError{Op: "upsert draft", Err: errors.New("connection refused")}
	s := NewDraftService(repo)
	_, err := s.Save(context.Background(), "u1", validDraft())
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("want StorageError, got %v", err)
	}
}
