package main

import (
	"context"

	httpadapter "careertrack/internal/adapter/http"
	repo "careertrack/internal/adapter/repository"
	"careertrack/internal/auth"
	"careertrack/internal/config"
	"careertrack/internal/infrastructure/migration"
	"careertrack/internal/render"
	"careertrack/internal/usecase"
	infra "careertrack/pkg/infrastructure"
	"careertrack/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// infra setup
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database not available")
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.WithError(err).Fatal("migrations failed")
	}

	blobs, err := storage.New(storage.Config{
		Endpoint:  cfg.BlobEndpoint,
		AccessKey: cfg.BlobAccessKey,
		SecretKey: cfg.BlobSecretKey,
		UseSSL:    cfg.BlobUseSSL,
		Bucket:    cfg.BlobBucket,
		PublicURL: cfg.BlobPublicURL,
	})
	if err != nil {
		log.WithError(err).Fatal("blob store not available")
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		log.WithError(err).Fatal("blob bucket not available")
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	engine := render.NewEngine()

	drafts := usecase.NewDraftService(repo.NewDraftsRepo(pool))
	exports := usecase.NewExportService(drafts, engine, renderer, blobs)
	profile := usecase.NewProfileService(repo.NewProfileRepo(pool), blobs)

	app := fiber.New()
	app.Use(cors.New())

	h := httpadapter.NewHandler(
		drafts,
		exports,
		profile,
		engine,
		repo.NewJobsRepo(pool),
		repo.NewApplicationsRepo(pool),
		repo.NewAchievementsRepo(pool),
		cfg.SchemaPath,
	)
	h.RegisterRoutes(app, verifier)

	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
