package repository

import (
	"context"
	"errors"

	"careertrack/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

const jobColumns = `id, title, company, location, description, salary_range, url, posted_at, created_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.SalaryRange, &j.URL, &j.PostedAt, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobsRepo) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, &domain.StorageError{Op: "list jobs", Err: err}
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan job", Err: err}
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list jobs", Err: err}
	}
	return jobs, nil
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	j, err := scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "get job", Err: err}
	}
	return j, nil
}

// SaveForUser bookmarks a listing; saving twice is a no-op.
func (r *JobsRepo) SaveForUser(ctx context.Context, userID string, jobID uuid.UUID) error {
	if _, err := r.Get(ctx, jobID); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO saved_jobs (user_id, job_id, created_at) VALUES ($1,$2,now())
		ON CONFLICT (user_id, job_id) DO NOTHING`, userID, jobID)
	if err != nil {
		return &domain.StorageError{Op: "save job", Err: err}
	}
	return nil
}

func (r *JobsRepo) UnsaveForUser(ctx context.Context, userID string, jobID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return &domain.StorageError{Op: "unsave job", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JobsRepo) ListSaved(ctx context.Context, userID string) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT j.id, j.title, j.company, j.location, j.description, j.salary_range, j.url, j.posted_at, j.created_at
		FROM jobs j JOIN saved_jobs s ON s.job_id = j.id
		WHERE s.user_id = $1 ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, &domain.StorageError{Op: "list saved jobs", Err: err}
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan saved job", Err: err}
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list saved jobs", Err: err}
	}
	return jobs, nil
}
