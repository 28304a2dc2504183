package repository

import (
	"context"
	"time"

	"careertrack/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ApplicationsRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationsRepo(pool *pgxpool.Pool) *ApplicationsRepo {
	return &ApplicationsRepo{pool: pool}
}

func (r *ApplicationsRepo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, company, position, status, applied_date, notes, created_at, updated_at
		FROM applications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, &domain.StorageError{Op: "list applications", Err: err}
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.Company, &a.Position, &a.Status, &a.AppliedDate, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan application", Err: err}
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list applications", Err: err}
	}
	return apps, nil
}

func (r *ApplicationsRepo) Create(ctx context.Context, a *domain.Application) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	if a.Status == "" {
		a.Status = domain.StatusApplied
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO applications (id, user_id, company, position, status, applied_date, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.UserID, a.Company, a.Position, a.Status, a.AppliedDate, a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return &domain.StorageError{Op: "create application", Err: err}
	}
	return nil
}

// Update replaces the mutable fields of an application the user owns.
func (r *ApplicationsRepo) Update(ctx context.Context, a *domain.Application) error {
	tag, err := r.pool.Exec(ctx, `UPDATE applications
		SET company = $3, position = $4, status = $5, applied_date = $6, notes = $7, updated_at = now()
		WHERE id = $1 AND user_id = $2`,
		a.ID, a.UserID, a.Company, a.Position, a.Status, a.AppliedDate, a.Notes)
	if err != nil {
		return &domain.StorageError{Op: "update application", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ApplicationsRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return &domain.StorageError{Op: "delete application", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
