package http

import (
	"net/http"

	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/middleware"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
	"github.com/canyfix/repairdesk/services/repair"
	"github.com/labstack/echo/v4"
)

// JobHandler serves the repairman portal's job endpoints
type JobHandler struct {
	repairUC repair.RepairUC
}

// NewJobHandler creates a new job handler
func NewJobHandler(repairUC repair.RepairUC) *JobHandler {
	return &JobHandler{
		repairUC: repairUC,
	}
}

// GetJob returns a job, masked unless the request carries a token for it
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}
	middleware.SetJobID(c, jobID)

	job, err := h.repairUC.GetJob(c.Request().Context(), jobID, middleware.GetRepairClaims(c))
	if err != nil {
		return respondError(c, err, "Failed to retrieve job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job retrieved successfully", job)
}

// StartJob moves the job to Work In Progress
func (h *JobHandler) StartJob(c echo.Context) error {
	jobID, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}
	middleware.SetJobID(c, jobID)

	job, err := h.repairUC.StartJob(c.Request().Context(), jobID, middleware.GetRepairClaims(c))
	if err != nil {
		return respondError(c, err, "Failed to start job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job started successfully", job)
}

// CloseJob completes the job with the customer's one-time code
func (h *JobHandler) CloseJob(c echo.Context) error {
	jobID, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}
	middleware.SetJobID(c, jobID)

	var req models.CloseJobRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for job close",
			logger.ErrorField(err),
			logger.Int64("lead_id", jobID))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.CustomerOTP == "" {
		return utils.BadRequestResponse(c, "customer_otp is required")
	}

	job, err := h.repairUC.CloseJob(c.Request().Context(), jobID, middleware.GetRepairClaims(c), req.CustomerOTP)
	if err != nil {
		return respondError(c, err, "Failed to close job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job closed successfully", job)
}
