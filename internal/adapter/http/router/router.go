package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awaissaddiqui/Flask-Server/internal/adapter/http/handler"
	"github.com/awaissaddiqui/Flask-Server/internal/adapter/http/middleware"
	"github.com/awaissaddiqui/Flask-Server/internal/domain/service"
	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/metrics"
	"github.com/awaissaddiqui/Flask-Server/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(classifier service.Classifier, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(m))

	// Wrong methods and trailing-slash variants of known paths are not found too
	router.HandleMethodNotAllowed = false
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.NoRoute(handler.NotFound)

	// Health endpoints
	healthHandler := handler.NewHealthHandler(classifier)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Initialize usecases
	satisfactionUC := usecase.NewSatisfactionUsecase(classifier, m)

	// Initialize handlers
	satisfactionHandler := handler.NewSatisfactionHandler(satisfactionUC)

	router.POST("/predict_satisfaction", satisfactionHandler.PredictSatisfaction)

	return router
}
