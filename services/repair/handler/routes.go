package handler

import (
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/middleware"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/services/repair/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Handler coordinates all protocol handlers for the repair service
type Handler struct {
	jobHandler   *http.JobHandler
	otpHandler   *http.OTPHandler
	adminHandler *http.AdminHandler
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers. redisClient backs the
// send-otp rate limiter and may be nil.
func NewHandler(
	jobHandler *http.JobHandler,
	otpHandler *http.OTPHandler,
	adminHandler *http.AdminHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		jobHandler:   jobHandler,
		otpHandler:   otpHandler,
		adminHandler: adminHandler,
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	optionalToken := middleware.RepairTokenMiddleware(h.cfg.JWT, false)
	requiredToken := middleware.RepairTokenMiddleware(h.cfg.JWT, true)
	sendLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Resource:    "send-otp",
		Limit:       h.cfg.OTP.SendLimit,
		Period:      time.Duration(h.cfg.OTP.SendWindowSeconds) * time.Second,
	})

	// Repairman portal
	repairGroup := e.Group("/repair")
	repairGroup.POST("/send-otp", h.otpHandler.SendOTP, sendLimiter, optionalToken)
	repairGroup.POST("/verify-otp", h.otpHandler.VerifyOTP, optionalToken)
	repairGroup.GET("/leads/:id", h.jobHandler.GetJob, optionalToken)
	repairGroup.POST("/leads/:id/start", h.jobHandler.StartJob, requiredToken)
	repairGroup.POST("/leads/:id/close", h.jobHandler.CloseJob, requiredToken)

	// Admin dashboard
	adminKey := middleware.ValidateAPIKey(h.cfg.Admin.APIKey)
	adminGroup := e.Group("/repairmen")
	adminGroup.GET("", h.adminHandler.ListRepairmen, adminKey)
	adminGroup.POST("", h.adminHandler.CreateRepairman, adminKey)
	adminGroup.DELETE("/:id", h.adminHandler.DeleteRepairman, adminKey)
	repairGroup.PATCH("/leads/:id/repairman", h.adminHandler.AssignRepairman, adminKey)
}
