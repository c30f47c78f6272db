package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/kings-labs/elp-api/internal/middleware"
	"github.com/kings-labs/elp-api/internal/service"
	"github.com/kings-labs/elp-api/pkg/config"
	"github.com/kings-labs/elp-api/pkg/logger"
	corsmiddleware "github.com/kings-labs/elp-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kings-labs/elp-api/pkg/middleware/requestid"
)

// Handlers groups the endpoint handlers the router mounts.
type Handlers struct {
	Auth           *AuthHandler
	Requests       *RequestHandler
	CourseRequests *CourseRequestHandler
	TutorDemands   *TutorDemandHandler
	Classes        *ClassHandler
	Messages       *MessageHandler
}

// NewRouter assembles the gin engine with the legacy route table. The open
// routes (/login, /private_messages, the pending reset) match the system this
// one replaces; everything else the bot calls sits behind the bearer guard.
func NewRouter(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/login", h.Auth.Login)
	r.GET("/private_messages", h.Messages.Drain)
	r.PUT("/change_course_requests_status_to_new", h.CourseRequests.ResetPending)

	guarded := r.Group("/", middleware.JWTAuth(auth))
	guarded.GET("/new_course_requests", h.CourseRequests.ListNew)
	guarded.GET("/course_requests_number", h.CourseRequests.Count)
	guarded.POST("/cancellation_request", h.Requests.CreateCancellation)
	guarded.POST("/rescheduling_request", h.Requests.CreateRescheduling)
	guarded.POST("/feedback_creation", h.Requests.CreateFeedback)
	guarded.POST("/tutor_demand", h.TutorDemands.Submit)
	guarded.GET("/tutor_classes/:discord_id", h.Classes.TutorClasses)
	if cfg.Exports.Enabled {
		guarded.GET("/weekly_classes/export", h.Classes.WeeklyExport)
	}

	return r
}
