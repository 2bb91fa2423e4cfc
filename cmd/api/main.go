package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/ethan-tjh/portfolio-backend/internal/config"
	"github.com/ethan-tjh/portfolio-backend/internal/domain/admin"
	"github.com/ethan-tjh/portfolio-backend/internal/domain/contact"
	"github.com/ethan-tjh/portfolio-backend/internal/domain/project"
	"github.com/ethan-tjh/portfolio-backend/internal/domain/tag"
	"github.com/ethan-tjh/portfolio-backend/internal/domain/upload"
	"github.com/ethan-tjh/portfolio-backend/internal/middleware"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/email"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/imaging"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/jwt"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("db_driver", cfg.DatabaseDriver).
		Msg("Starting portfolio API")

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	accessor := database.NewAccessor(db,
		database.WithTimeout(cfg.DBQueryTimeout),
		database.WithRetryAttempts(cfg.DBRetryAttempts),
	)

	redisClient, err := database.NewRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	mailer := email.NewService(email.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
	})
	defer mailer.Close()

	files, err := storage.New(context.Background(), storage.Config{
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		S3Endpoint:   cfg.S3Endpoint,
		S3AccessKey:  cfg.S3AccessKey,
		S3SecretKey:  cfg.S3SecretKey,
		S3PublicURL:  cfg.S3PublicURL,
		LocalPath:    cfg.UploadDir,
		LocalBaseURL: cfg.PublicBaseURL + "/files",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise file storage")
	}
	if !cfg.UseS3() {
		log.Info().Str("dir", cfg.UploadDir).Msg("Storing uploads on local disk")
	}

	router := newRouter(&app{
		cfg:      cfg,
		accessor: accessor,
		redis:    redisClient,
		jwt:      jwt.NewService(cfg.JWTSecret, cfg.JWTTTL, jwt.NewRedisRevoker(redisClient)),
		mailer:   mailer,
		files:    files,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// app holds the long-lived dependencies shared by every handler
type app struct {
	cfg      *config.Config
	accessor *database.Accessor
	redis    *redis.Client
	jwt      *jwt.Service
	mailer   *email.Service
	files    storage.Storage
}

func newRouter(a *app) http.Handler {
	projectService := project.NewService(
		project.NewRepository(a.accessor),
		project.NewProjection(a.accessor),
	)
	projectHandler := project.NewHandler(projectService)
	tagHandler := tag.NewHandler(tag.NewRepository(a.accessor))
	adminHandler := admin.NewHandler(admin.NewService(admin.NewRepository(a.accessor), a.jwt))
	contactHandler := contact.NewHandler(contact.NewService(a.mailer, contact.Config{
		Receiver:    a.cfg.EmailReceiver,
		Sender:      a.cfg.EmailFrom,
		OwnerName:   a.cfg.OwnerName,
		RelaySender: a.cfg.EmailFromName,
	}))
	uploadHandler := upload.NewHandler(upload.NewService(
		a.files,
		imaging.NewProcessor(imaging.DefaultConfig()),
		a.cfg.UploadMaxSize,
	))

	contactLimiter := middleware.NewRedisLimiter(a.redis, "contact", a.cfg.ContactRateLimit, a.cfg.ContactRateWindow)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORSHandler(a.cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := a.accessor.DB().PingContext(ctx); err != nil {
			response.ServiceUnavailable(w, "Database unreachable")
			return
		}
		response.OK(w, map[string]string{"status": "ok"})
	})

	if local, ok := a.files.(*storage.LocalStorage); ok {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(local.BasePath()))))
	}

	projectHandler.PublicRoutes(r)
	tagHandler.Routes(r)
	adminHandler.PublicRoutes(r)
	contactHandler.Routes(r, middleware.RateLimit(contactLimiter))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(a.jwt))

		projectHandler.AdminRoutes(r)
		adminHandler.AdminRoutes(r)
		uploadHandler.AdminRoutes(r)
	})

	return r
}
