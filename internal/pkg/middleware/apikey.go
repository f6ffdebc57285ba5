package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/utils"
	"github.com/labstack/echo/v4"
)

// ValidateAPIKey middleware guards the admin endpoints with the configured key.
// An empty configured key rejects every request.
func ValidateAPIKey(expectedKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(constants.HeaderAPIKey)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if expectedKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
				logger.Warn("Rejected admin request with invalid API key",
					logger.String("path", c.Path()),
					logger.String("client_ip", c.RealIP()))
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
