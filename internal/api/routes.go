package api

import (
	"net/http"

	"github.com/gabrieldubiela/DocControl/internal/api/handlers"
	"github.com/gabrieldubiela/DocControl/internal/api/middleware"
	"github.com/gabrieldubiela/DocControl/internal/auth"
	"github.com/gabrieldubiela/DocControl/internal/config"
	"github.com/gabrieldubiela/DocControl/internal/services"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Router struct {
	engine           *gin.Engine
	logger           *zap.Logger
	metrics          *metrics.Collector
	authHandler      *handlers.AuthHandler
	docHandler       *handlers.DocumentHandler
	modelHandler     *handlers.ModelHandler
	signatureHandler *handlers.SignatureHandler
	authMiddleware   *middleware.AuthMiddleware
	filesDir         string
}

func NewRouter(
	cfg *config.Configuration,
	logger *zap.Logger,
	collector *metrics.Collector,
	tokens *auth.TokenManager,
	documents *services.DocumentService,
	templates *services.TemplateService,
	signatures *services.SignatureService,
	generation *services.GenerationService,
	renderer handlers.PDFRenderer,
	filesDir string,
	db *gorm.DB,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	reqMiddleware := middleware.NewRequestMiddleware(logger)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	engine.Use(reqMiddleware.ProcessRequest())
	engine.Use(reqMiddleware.RecoverPanic())
	engine.Use(reqMiddleware.TrackLoginAttempts())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	return &Router{
		engine:           engine,
		logger:           logger,
		metrics:          collector,
		authHandler:      handlers.NewAuthHandler(db, tokens, logger),
		docHandler:       handlers.NewDocumentHandler(documents, templates, generation, renderer, logger),
		modelHandler:     handlers.NewModelHandler(templates, logger),
		signatureHandler: handlers.NewSignatureHandler(signatures, logger),
		authMiddleware:   authMiddleware,
		filesDir:         filesDir,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "API está funcionando"})
	})

	r.engine.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"counters":  r.metrics.Counters(),
			"latencies": r.metrics.Latencies(),
			"sizes":     r.metrics.Sizes(),
		})
	})

	if r.filesDir != "" {
		r.engine.Static("/files", r.filesDir)
	}

	api := r.engine.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", r.authHandler.Register)
		authRoutes.POST("/login", r.authHandler.Login)
	}

	documents := api.Group("/documents")
	documents.Use(r.authMiddleware.RequireAuth())
	{
		documents.GET("", r.docHandler.List)
		documents.POST("", r.docHandler.Create)
		documents.POST("/generate-content", r.docHandler.GenerateContent)
		documents.POST("/:id/generate-pdf", r.docHandler.GeneratePDF)
	}

	modelos := api.Group("/models")
	modelos.Use(r.authMiddleware.RequireAuth())
	{
		modelos.GET("", r.modelHandler.List)
		modelos.POST("", r.modelHandler.Create)
		modelos.PUT("/:id", r.modelHandler.Update)
		modelos.DELETE("/:id", r.modelHandler.Delete)
	}

	signatures := api.Group("/signatures")
	signatures.Use(r.authMiddleware.RequireAuth())
	{
		signatures.POST("/:documentId", r.signatureHandler.Sign)
		signatures.GET("/:documentId", r.signatureHandler.List)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	r.logger.Info("Starting HTTP server", zap.String("address", addr))
	return r.engine.Run(addr)
}
