package http

import (
	"net/http"

	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
	"github.com/canyfix/repairdesk/services/repair"
	"github.com/labstack/echo/v4"
)

// AdminHandler serves the dashboard's repairman management endpoints
type AdminHandler struct {
	repairUC repair.RepairUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(repairUC repair.RepairUC) *AdminHandler {
	return &AdminHandler{
		repairUC: repairUC,
	}
}

// ListRepairmen returns every registered repairman
func (h *AdminHandler) ListRepairmen(c echo.Context) error {
	repairmen, err := h.repairUC.ListRepairmen(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list repairmen")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Repairmen retrieved successfully", repairmen)
}

// CreateRepairman registers a repairman
func (h *AdminHandler) CreateRepairman(c echo.Context) error {
	var req models.RepairmanCreate
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for repairman creation", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	repairman, err := h.repairUC.CreateRepairman(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to create repairman")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Repairman created successfully", repairman)
}

// DeleteRepairman removes a repairman
func (h *AdminHandler) DeleteRepairman(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid repairman ID")
	}

	if err := h.repairUC.DeleteRepairman(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Failed to delete repairman")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Repairman deleted successfully", nil)
}

// AssignRepairman sets the repairman responsible for a job
func (h *AdminHandler) AssignRepairman(c echo.Context) error {
	jobID, ok := parseID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}

	var req models.AssignRepairmanRequest
	if err := c.Bind(&req); err != nil || req.RepairmanID <= 0 {
		return utils.BadRequestResponse(c, "repairman_id is required")
	}

	job, err := h.repairUC.AssignRepairman(c.Request().Context(), jobID, req.RepairmanID)
	if err != nil {
		return respondError(c, err, "Failed to assign repairman")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Repairman assigned successfully", job)
}
