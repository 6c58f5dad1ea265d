package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/activity"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/alumni"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/auth"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/config"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/db"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/events"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/health"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/kafka"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/kv"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/logger"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/memories"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/messaging"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/metrics"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/middleware"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/profile"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/storage/s3"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

type App struct {
	config   *config.Config
	router   chi.Router
	server   *http.Server
	logger   *slog.Logger
	recorder *activity.Recorder
}

func New() *App {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses JSON format
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	app := &App{
		config: cfg,
		router: chi.NewRouter(),
		logger: slogLogger,
	}

	database := db.New(cfg.Database)

	ctx := context.Background()
	if err := db.RunMigrations(ctx, database, (*auth.User)(nil), (*auth.RefreshToken)(nil)); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	appMetrics, err := metrics.New(otel.Meter(ServiceName))
	if err != nil {
		slogLogger.Warn("failed to initialize metrics", "error", err)
		appMetrics = metrics.NewMock()
	}

	// Apply CORS middleware globally
	app.router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Health endpoints (no auth required)
	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(app.router)

	// Activity events fan out over NATS and Kafka; either broker being
	// down only loses the event stream, never the request.
	var publishers []activity.Publisher

	natsProducer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, slogLogger)
	if err != nil {
		slogLogger.Warn("failed to initialize NATS producer", "error", err)
	} else {
		publishers = append(publishers, natsProducer)
	}

	kafkaProducer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, slogLogger)
	if err != nil {
		slogLogger.Warn("failed to initialize kafka producer", "error", err)
	} else {
		publishers = append(publishers, kafkaProducer)
	}

	app.recorder = activity.NewRecorder(slogLogger, publishers...)

	// Auth setup
	userRepo := auth.NewUserRepository(database)
	tokenRepo := auth.NewTokenRepository(database)
	authService := auth.NewService(userRepo, tokenRepo)
	authHandler := auth.NewHandler(authService, slogLogger, appMetrics, app.recorder)
	authHandler.RegisterRoutes(app.router)

	// Profile blobs live in Redis; fall back to process memory when Redis
	// is unreachable so local development still works.
	var blobStore kv.Store
	redisStore, err := kv.NewRedisStore(cfg.Redis)
	if err != nil {
		slogLogger.Warn("failed to connect to redis, using in-memory store", "error", err)
		blobStore = kv.NewMemoryStore()
	} else {
		blobStore = redisStore
	}
	profileStore := profile.NewStore(blobStore, slogLogger)
	profileHandler := profile.NewHandler(profileStore, slogLogger, appMetrics, app.recorder)

	// Directory, events and gallery stores start from the sample data set.
	alumniStore := alumni.NewStore(alumni.SampleRecords())
	alumniHandler := alumni.NewHandler(alumniStore, slogLogger, appMetrics, app.recorder)

	eventStore := events.NewStore(events.SampleRecords())
	eventHandler := events.NewHandler(eventStore, slogLogger)

	// Memory-lane media lands in MinIO; in-memory storage is the local
	// fallback.
	var mediaStorage memories.BlobStorage
	objectStorage, err := s3.New(cfg.Storage)
	if err != nil {
		slogLogger.Warn("failed to initialize object storage, using in-memory blobs", "error", err)
		mediaStorage = memories.NewMemoryBlobStorage()
	} else {
		if err := objectStorage.EnsureBucket(ctx); err != nil {
			log.Fatal("failed to ensure media bucket:", err)
		}
		mediaStorage = objectStorage
	}

	memoryStore := memories.NewStore(memories.SampleMemories())
	memoryService := memories.NewService(memoryStore, mediaStorage, slogLogger)
	memoryHandler := memories.NewHandler(memoryStore, memoryService, slogLogger, appMetrics, app.recorder)

	// Create protected routes group for /api endpoints
	app.router.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(slogLogger))
		alumniHandler.RegisterRoutes(r)
		eventHandler.RegisterRoutes(r)
		profileHandler.RegisterRoutes(r)
		memoryHandler.RegisterRoutes(r)
	})

	slogLogger.Info("application initialized successfully")

	return app
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")
	a.recorder.Close()
	return a.server.Shutdown(ctx)
}
