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

// OTPHandler handles one-time code requests
type OTPHandler struct {
	repairUC repair.RepairUC
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(repairUC repair.RepairUC) *OTPHandler {
	return &OTPHandler{
		repairUC: repairUC,
	}
}

// SendOTP handles requests for a login or job close code
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for send OTP", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "phone_number is required")
	}

	if err := h.repairUC.SendOTP(c.Request().Context(), &req, middleware.GetRepairClaims(c)); err != nil {
		return respondError(c, err, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP checks a code. A wrong or expired code is reported in the body
// with success false rather than as an error status.
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for verify OTP", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "phone_number and code are required")
	}

	resp, err := h.repairUC.VerifyOTP(c.Request().Context(), &req, middleware.GetRepairClaims(c))
	if err != nil {
		return respondError(c, err, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}
