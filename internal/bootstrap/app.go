package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/artifacts"
	"resume-builder/internal/generate"
	"resume-builder/internal/jobads"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/openai"
	"resume-builder/internal/profiles"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/storage/object/local"
	"resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/templates"
	"resume-builder/internal/typeset"
)

// App is a fully wired application.
type App struct {
	Config config.Config
	DB     *sql.DB
	Router *gin.Engine
}

// Build wires storage, model client, services and routes from config.
// Without DATABASE_URL everything runs on in-memory repositories, which is
// the local dev and test mode.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if cfg.Env == "production" || cfg.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}

	var database *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := db.RunMigrations(ctx, database); err != nil {
			database.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	} else {
		telemetry.Warn("bootstrap.memory_mode", map[string]any{
			"reason": "DATABASE_URL not set, using in-memory repositories",
		})
	}

	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	model := buildLLMClient(cfg)

	renderer, err := templates.NewRenderer()
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}
	compiler := typeset.NewCompiler(cfg.TexBinary, cfg.ScratchDir)

	var (
		profileRepo  profiles.Repo
		jobAdRepo    jobads.Repo
		artifactRepo artifacts.Repo
	)
	if database != nil {
		profileRepo = &profiles.PGRepo{DB: database}
		jobAdRepo = &jobads.PGRepo{DB: database}
		artifactRepo = &artifacts.PGRepo{DB: database}
	} else {
		memProfiles := profiles.NewMemoryRepo()
		memJobAds := jobads.NewMemoryRepo()
		memArtifacts := artifacts.NewMemoryRepo()
		memArtifacts.ProfileNameFn = func(ctx context.Context, profileID string) (string, bool) {
			p, err := memProfiles.GetByID(ctx, profileID)
			if err != nil {
				return "", false
			}
			return p.Name, true
		}
		memArtifacts.JobAdTitleFn = func(ctx context.Context, jobAdID string) (string, bool) {
			ad, err := memJobAds.GetByID(ctx, jobAdID)
			if err != nil {
				return "", false
			}
			return ad.JobTitle, true
		}
		profileRepo = memProfiles
		jobAdRepo = memJobAds
		artifactRepo = memArtifacts
	}

	cache := buildParseCache(cfg, database)

	profileSvc := profiles.NewService(profileRepo)
	jobAdSvc := &jobads.Service{Repo: jobAdRepo, Cache: cache, LLM: model}
	artifactSvc := &artifacts.Service{
		Repo:  artifactRepo,
		Store: store,
		Guard: profileGuard{repo: profileRepo},
	}
	generateSvc := &generate.Service{
		Profiles:  profileRepo,
		JobAds:    jobAdRepo,
		Renderer:  renderer,
		Compiler:  compiler,
		Artifacts: artifactSvc,
	}

	router := server.NewRouter(cfg.CORSAllowOrigin,
		profiles.NewHandler(profileSvc),
		jobads.NewHandler(jobAdSvc),
		templates.NewHandler(),
		artifacts.NewHandler(artifactSvc),
		generate.NewHandler(generateSvc),
	)

	return &App{Config: cfg, DB: database, Router: router}, nil
}

// Close releases the app's long-lived resources.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return local.New(cfg.LocalStoreDir), nil
}

func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel, cfg.LLMBaseURL)
		if err == nil {
			return client
		}
		telemetry.Warn("bootstrap.llm_placeholder", map[string]any{"error": err.Error()})
	}
	return llm.Placeholder{}
}

func buildParseCache(cfg config.Config, database *sql.DB) jobads.Cache {
	backend := cfg.CacheBackend
	if backend == "" {
		if database != nil {
			backend = "postgres"
		} else {
			backend = "memory"
		}
	}

	switch backend {
	case "redis":
		if cfg.RedisAddr != "" {
			return jobads.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		}
		telemetry.Warn("bootstrap.cache_fallback", map[string]any{
			"reason": "PARSE_CACHE_BACKEND=redis but REDIS_ADDR not set",
		})
	case "postgres":
		if database != nil {
			return &jobads.PGCache{DB: database}
		}
		telemetry.Warn("bootstrap.cache_fallback", map[string]any{
			"reason": "PARSE_CACHE_BACKEND=postgres but no database connection",
		})
	}
	return jobads.NewMemoryCache()
}

// profileGuard derives artifact ownership from profile ownership.
type profileGuard struct {
	repo profiles.Repo
}

func (g profileGuard) Owns(ctx context.Context, userID, profileID string) (bool, error) {
	p, err := g.repo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.UserID == userID, nil
}
