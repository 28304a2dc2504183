package repository

import (
	"context"
	"time"

	"careertrack/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type AchievementsRepo struct {
	pool *pgxpool.Pool
}

func NewAchievementsRepo(pool *pgxpool.Pool) *AchievementsRepo {
	return &AchievementsRepo{pool: pool}
}

func (r *AchievementsRepo) Add(ctx context.Context, a *domain.Achievement) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	_, err := r.pool.Exec(ctx, `INSERT INTO achievements (id, user_id, title, description, date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.UserID, a.Title, a.Description, a.Date, a.CreatedAt)
	if err != nil {
		return &domain.StorageError{Op: "add achievement", Err: err}
	}
	return nil
}

func (r *AchievementsRepo) ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, description, date, created_at
		FROM achievements WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, &domain.StorageError{Op: "list achievements", Err: err}
	}
	defer rows.Close()

	out := []domain.Achievement{}
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Date, &a.CreatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan achievement", Err: err}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list achievements", Err: err}
	}
	return out, nil
}
