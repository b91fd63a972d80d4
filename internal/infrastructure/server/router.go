package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine             *gin.Engine
	informationHandler *handler.InformationHandler
	mapHandler         *handler.MapHandler
	uploadHandler      *handler.UploadHandler
	rateLimiter        *middleware.RateLimiter
	httpObserver       middleware.HTTPObserver
	gatherer           prometheus.Gatherer
	cors               config.CORSConfig
	logger             *zap.Logger
}

// RouterConfig wires handlers and middleware. UploadHandler, RateLimiter,
// HTTPObserver and Gatherer are optional; their routes and middleware are
// skipped when nil.
type RouterConfig struct {
	InformationHandler *handler.InformationHandler
	MapHandler         *handler.MapHandler
	UploadHandler      *handler.UploadHandler
	RateLimiter        *middleware.RateLimiter
	HTTPObserver       middleware.HTTPObserver
	Gatherer           prometheus.Gatherer
	CORS               config.CORSConfig
	Logger             *zap.Logger
	Environment        string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:             engine,
		informationHandler: cfg.InformationHandler,
		mapHandler:         cfg.MapHandler,
		uploadHandler:      cfg.UploadHandler,
		rateLimiter:        cfg.RateLimiter,
		httpObserver:       cfg.HTTPObserver,
		gatherer:           cfg.Gatherer,
		cors:               cfg.CORS,
		logger:             cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, "/health", "/metrics"))
	r.engine.Use(middleware.CORS(r.cors))
	if r.httpObserver != nil {
		r.engine.Use(middleware.Metrics(r.httpObserver))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/", r.informationHandler.Root)
	r.engine.GET("/health", r.informationHandler.Health)

	if r.gatherer != nil {
		r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		information := api.Group("/information")
		{
			information.POST("", r.informationHandler.Create)
			information.GET("", r.informationHandler.List)
			information.GET("/:id", r.informationHandler.Get)
			if r.uploadHandler != nil {
				information.POST("/:id/images", r.uploadHandler.Upload)
			}
		}

		mapGroup := api.Group("/map")
		{
			mapGroup.GET("/view", r.mapHandler.View)
			mapGroup.GET("/tiles", r.mapHandler.Tiles)
		}

		if r.uploadHandler != nil {
			api.DELETE("/images/:id", r.uploadHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
