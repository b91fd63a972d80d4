package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/source"
	adapterstorage "github.com/marcos-nsantos/detection-map-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/information"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/upload"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Server.RunMigrations {
		applied, err := database.RunMigrations(ctx, pool, cfg.Server.MigrationsPath)
		if err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Strings("versions", applied))
	}

	if version, err := database.PostGISVersion(ctx, pool); err != nil {
		logger.Warn("postgis not available, bounding box queries will fail", zap.Error(err))
	} else {
		logger.Info("postgis available", zap.String("version", version))
	}

	// Repositories
	infoRepo := postgres.NewInformationRepo(pool, logger)
	imageRepo := postgres.NewImageRepo(pool)

	// Optional infrastructure
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	var imageStorage adapterstorage.ImageStorage
	var s3Storage *storage.S3Storage
	if cfg.S3.Enabled() {
		s3Storage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 storage", zap.Error(err))
		}
		if err := s3Storage.Check(ctx); err != nil {
			logger.Warn("s3 bucket not reachable, uploads may fail", zap.Error(err))
		}
		imageStorage = s3Storage
	} else {
		logger.Info("S3_BUCKET not set, image routes disabled")
	}

	featureSource, err := buildFeatureSource(cfg, infoRepo, redisClient, metrics, logger)
	if err != nil {
		logger.Fatal("failed to build feature source", zap.Error(err))
	}

	// Use cases
	fitter := viewport.NewFitter(logger, metrics)
	mapSvc := mapview.NewService(featureSource, fitter, mapSettings(cfg.Map), logger)
	infoSvc := information.NewService(infoRepo, imageRepo, imageStorage, cfg.S3.SignedURLExpiry, logger)

	// Handlers
	informationHandler := handler.NewInformationHandler(infoSvc)
	mapHandler := handler.NewMapHandler(mapSvc)

	var uploadHandler *handler.UploadHandler
	if s3Storage != nil {
		imageProcessor := storage.NewImageProcessor(cfg.Image.MaxSide, cfg.Image.JPEGQuality)
		uploadSvc := upload.NewService(imageRepo, infoRepo, s3Storage, imageProcessor, cfg.S3.SignedURLExpiry, logger)
		uploadHandler = handler.NewUploadHandler(uploadSvc, cfg.Image.MaxUploadSize)
	}

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		InformationHandler: informationHandler,
		MapHandler:         mapHandler,
		UploadHandler:      uploadHandler,
		RateLimiter:        rateLimiter,
		HTTPObserver:       metrics,
		Gatherer:           registry,
		CORS:               cfg.CORS,
		Logger:             logger,
		Environment:        cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

// buildFeatureSource assembles upstream -> demo fallback -> cache.
func buildFeatureSource(
	cfg *config.Config,
	infoRepo *postgres.InformationRepo,
	redisClient *redis.Client,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (mapview.FeatureSource, error) {
	var src source.Source
	switch cfg.Source.Mode {
	case config.SourceRemote:
		src = source.NewRemoteSource(cfg.Source.RemoteURL, cfg.Source.RemoteTimeout, logger, metrics)
	default:
		src = source.NewDatabaseSource(infoRepo, metrics)
	}

	if cfg.Source.DemoFallback {
		fallback, err := source.NewFallbackSource(src, logger, metrics)
		if err != nil {
			return nil, err
		}
		src = fallback
	}

	if redisClient != nil && cfg.Source.CacheTTL > 0 {
		src = source.NewCachedSource(src, cache.NewStore(redisClient, "detection-map:"), cfg.Source.CacheTTL, logger, metrics)
	}

	return src, nil
}

func mapSettings(cfg config.MapConfig) mapview.Settings {
	return mapview.Settings{
		Options: viewport.Options{
			Padding:           valueobject.Padding{cfg.PaddingX, cfg.PaddingY},
			MaxZoom:           cfg.MaxZoom,
			ZoomBoost:         cfg.ZoomBoost,
			AnimationDuration: cfg.AnimationDuration,
		},
		InitialCenter: valueobject.NewLatLon(cfg.InitialLat, cfg.InitialLon),
		InitialZoom:   cfg.InitialZoom,
	}
}
