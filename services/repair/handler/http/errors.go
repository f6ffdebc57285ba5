package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/middleware"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
	"github.com/labstack/echo/v4"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{models.ErrInvalidPhone, http.StatusBadRequest},
	{models.ErrInvalidOTPPurpose, http.StatusBadRequest},
	{models.ErrLeadIDRequired, http.StatusBadRequest},
	{models.ErrRepairmanNameRequired, http.StatusBadRequest},
	{models.ErrUnauthorized, http.StatusUnauthorized},
	{models.ErrForbiddenScope, http.StatusForbidden},
	{models.ErrJobNotFound, http.StatusNotFound},
	{models.ErrRepairmanNotFound, http.StatusNotFound},
	{models.ErrJobNotStartable, http.StatusConflict},
	{models.ErrJobNotInProgress, http.StatusConflict},
	{models.ErrStatusChanged, http.StatusConflict},
	{models.ErrRepairmanExists, http.StatusConflict},
	{models.ErrPhoneMismatch, http.StatusUnprocessableEntity},
	{models.ErrInvalidOTP, http.StatusUnprocessableEntity},
	{models.ErrOTPNotFound, http.StatusUnprocessableEntity},
	{models.ErrTooManyOTPAttempts, http.StatusTooManyRequests},
}

// respondError maps domain errors to their status code. Anything unknown is
// logged and reported as a 500 with a generic message.
func respondError(c echo.Context, err error, failure string) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			logger.Warn(failure,
				logger.String("path", c.Path()),
				logger.String("reason", e.err.Error()))
			return utils.ErrorResponseHandler(c, e.status, e.err.Error())
		}
	}

	logger.Error(failure,
		logger.String("path", c.Path()),
		logger.ErrorField(err))
	middleware.NoticeError(c, err)
	return utils.InternalServerErrorResponse(c, failure)
}

// parseID reads a positive numeric path parameter
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
