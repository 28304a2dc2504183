package repository

import (
	"context"
	"encoding/json"
	"errors"

	"careertrack/internal/domain"
	"careertrack/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DraftsRepo persists the single resume draft each user has. The
// user_id uniqueness constraint makes the upsert create-or-replace;
// nothing here merges old and new content.
type DraftsRepo struct {
	pool *pgxpool.Pool
}

func NewDraftsRepo(pool *pgxpool.Pool) *DraftsRepo {
	return &DraftsRepo{pool: pool}
}

func (r *DraftsRepo) FindByUser(ctx context.Context, userID string) (*model.ResumeData, error) {
	var (
		personal, experience, education, skills, projects []byte
		selectedTemplate                                  string
	)
	err := r.pool.QueryRow(ctx, `SELECT personal_info, experience, education, skills, projects, selected_template
		FROM resume_drafts WHERE user_id = $1`, userID).
		Scan(&personal, &experience, &education, &skills, &projects, &selectedTemplate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "find draft", Err: err}
	}

	data := &model.ResumeData{SelectedTemplate: selectedTemplate}
	for _, f := range []struct {
		raw []byte
		dst interface{}
	}{
		{personal, &data.PersonalInfo},
		{experience, &data.Experience},
		{education, &data.Education},
		{skills, &data.Skills},
		{projects, &data.Projects},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, &domain.StorageError{Op: "decode draft", Err: err}
		}
	}
	model.FillDefaults(data)
	return data, nil
}

func (r *DraftsRepo) Upsert(ctx context.Context, userID string, data *model.ResumeData) (string, error) {
	personal, err := json.Marshal(data.PersonalInfo)
	if err != nil {
		return "", &domain.StorageError{Op: "encode draft", Err: err}
	}
	experience, _ := json.Marshal(data.Experience)
	education, _ := json.Marshal(data.Education)
	skills, _ := json.Marshal(data.Skills)
	projects, _ := json.Marshal(data.Projects)

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, `INSERT INTO resume_drafts (id, user_id, personal_info, experience, education, skills, projects, selected_template, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
		ON CONFLICT (user_id) DO UPDATE SET personal_info = EXCLUDED.personal_info, experience = EXCLUDED.experience, education = EXCLUDED.education, skills = EXCLUDED.skills, projects = EXCLUDED.projects, selected_template = EXCLUDED.selected_template, updated_at = now()
		RETURNING id`,
		uuid.New(), userID, personal, experience, education, skills, projects, data.SelectedTemplate).Scan(&id)
	if err != nil {
		return "", &domain.StorageError{Op: "upsert draft", Err: err}
	}
	return id.String(), nil
}
