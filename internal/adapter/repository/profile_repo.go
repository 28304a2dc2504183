package repository

import (
	"context"
	"encoding/json"
	"errors"

	"careertrack/internal/domain"
	"careertrack/internal/model"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) FindByUser(ctx context.Context, userID string) (*model.Profile, error) {
	var (
		photoURL                                string
		experience, education, skills, projects []byte
	)
	p := &model.Profile{UserID: userID}
	err := r.pool.QueryRow(ctx, `SELECT photo_url, experience, education, skills, projects, updated_at
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&photoURL, &experience, &education, &skills, &projects, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "find profile", Err: err}
	}

	p.PhotoURL = photoURL
	for _, f := range []struct {
		raw []byte
		dst interface{}
	}{
		{experience, &p.Experience},
		{education, &p.Education},
		{skills, &p.Skills},
		{projects, &p.Projects},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, &domain.StorageError{Op: "decode profile", Err: err}
		}
	}
	return p, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, userID string, p *model.Profile) error {
	experience, _ := json.Marshal(p.Experience)
	education, _ := json.Marshal(p.Education)
	skills, _ := json.Marshal(p.Skills)
	projects, _ := json.Marshal(p.Projects)

	_, err := r.pool.Exec(ctx, `INSERT INTO profiles (user_id, photo_url, experience, education, skills, projects, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,now())
		ON CONFLICT (user_id) DO UPDATE SET photo_url = EXCLUDED.photo_url, experience = EXCLUDED.experience, education = EXCLUDED.education, skills = EXCLUDED.skills, projects = EXCLUDED.projects, updated_at = now()`,
		userID, p.PhotoURL, experience, education, skills, projects)
	if err != nil {
		return &domain.StorageError{Op: "upsert profile", Err: err}
	}
	return nil
}
