package usecase

import (
	"context"

	"careertrack/internal/model"
)

// DraftRepo is the slice of the store the draft service needs: one
// record per user, find and upsert only.
type DraftRepo interface {
	FindByUser(ctx context.Context, userID string) (*model.ResumeData, error)
	Upsert(ctx context.Context, userID string, data *model.ResumeData) (string, error)
}

// DraftService owns the save/load lifecycle of the single in-progress
// resume each user has. Saves replace the record wholesale; concurrent
// saves from the same user are last-write-wins, which is accepted for a
// single-owner document.
type DraftService struct {
	repo DraftRepo
}

func NewDraftService(repo DraftRepo) *DraftService {
	return &DraftService{repo: repo}
}

// Load fetches the user's draft. Returns domain.ErrNotFound when the
// user has never saved one.
func (s *DraftService) Load(ctx context.Context, userID string) (*model.ResumeData, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Save validates the draft, fills defaults and upserts it, returning
// the opaque id of the stored record.
func (s *DraftService) Save(ctx context.Context, userID string, data *model.ResumeData) (string, error) {
	if err := model.ValidateForSave(data); err != nil {
		return "", err
	}
	model.FillDefaults(data)
	return s.repo.Upsert(ctx, userID, data)
}
