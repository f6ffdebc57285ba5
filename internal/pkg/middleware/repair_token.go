package middleware

import (
	"github.com/canyfix/repairdesk/internal/pkg/constants"
	jwtpkg "github.com/canyfix/repairdesk/internal/pkg/jwt"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/canyfix/repairdesk/internal/utils"
	"github.com/labstack/echo/v4"
)

// RepairTokenMiddleware validates the X-Repair-Token header and stores the
// claims on the context. When required is false a missing or invalid token
// lets the request through anonymously, so callers see the masked job.
func RepairTokenMiddleware(config models.JWTConfig, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(constants.HeaderRepairToken)
			if tokenString == "" {
				if required {
					return utils.UnauthorizedResponse(c, "Repair token is required")
				}
				return next(c)
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config)
			if err != nil {
				logger.Debug("Repair token rejected",
					logger.String("path", c.Path()),
					logger.Err(err))
				if required {
					return utils.UnauthorizedResponse(c, "Invalid or expired repair token")
				}
				return next(c)
			}

			c.Set(constants.CtxRepairClaims, claims)
			c.Set(constants.CtxUserID, claims.RepairmanID)
			AddAttribute(c, "repairman.id", claims.RepairmanID)

			return next(c)
		}
	}
}

// GetRepairClaims returns the verified claims, or nil for anonymous requests
func GetRepairClaims(c echo.Context) *jwtpkg.Claims {
	if claims, ok := c.Get(constants.CtxRepairClaims).(*jwtpkg.Claims); ok {
		return claims
	}
	return nil
}
