package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Migration is one named schema step applied at startup.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations applies the schema in order. Statements are idempotent
// so a restart is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []Migration{
		{Name: "create_resume_drafts", Up: exec(`
			CREATE TABLE IF NOT EXISTS resume_drafts (
				id UUID PRIMARY KEY,
				user_id TEXT NOT NULL UNIQUE,
				personal_info JSONB NOT NULL DEFAULT '{}'::jsonb,
				experience JSONB NOT NULL DEFAULT '[]'::jsonb,
				education JSONB NOT NULL DEFAULT '[]'::jsonb,
				skills JSONB NOT NULL DEFAULT '[]'::jsonb,
				projects JSONB NOT NULL DEFAULT '[]'::jsonb,
				selected_template TEXT NOT NULL DEFAULT 'modern',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);`)},
		{Name: "create_jobs", Up: exec(`
			CREATE TABLE IF NOT EXISTS jobs (
				id UUID PRIMARY KEY,
				title TEXT NOT NULL,
				company TEXT NOT NULL,
				location TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				salary_range TEXT NOT NULL DEFAULT '',
				url TEXT NOT NULL DEFAULT '',
				posted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);`)},
		{Name: "create_saved_jobs", Up: exec(`
			CREATE TABLE IF NOT EXISTS saved_jobs (
				user_id TEXT NOT NULL,
				job_id UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				PRIMARY KEY (user_id, job_id)
			);`)},
		{Name: "create_applications", Up: exec(`
			CREATE TABLE IF NOT EXISTS applications (
				id UUID PRIMARY KEY,
				user_id TEXT NOT NULL,
				company TEXT NOT NULL,
				position TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'applied',
				applied_date TEXT NOT NULL DEFAULT '',
				notes TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS applications_user_idx ON applications (user_id);`)},
		{Name: "create_profiles", Up: exec(`
			CREATE TABLE IF NOT EXISTS profiles (
				user_id TEXT PRIMARY KEY,
				photo_url TEXT NOT NULL DEFAULT '',
				experience JSONB NOT NULL DEFAULT '[]'::jsonb,
				education JSONB NOT NULL DEFAULT '[]'::jsonb,
				skills JSONB NOT NULL DEFAULT '[]'::jsonb,
				projects JSONB NOT NULL DEFAULT '[]'::jsonb,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);`)},
		{Name: "create_achievements", Up: exec(`
			CREATE TABLE IF NOT EXISTS achievements (
				id UUID PRIMARY KEY,
				user_id TEXT NOT NULL,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				date TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS achievements_user_idx ON achievements (user_id);`)},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.WithError(err).WithField("name", m.Name).Error("migration failed")
			return err
		}
		log.WithField("name", m.Name).Info("migration completed")
	}
	return nil
}

func exec(sql string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, sql)
		return err
	}
}
