package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/nexus-api/internal/api/metrics"
	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the decoded identity into the
// echo context under "user_id" and "role". Expired tokens get their own
// message so clients know to re-authenticate rather than retry.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDenialsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDenialsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthDenialsTotal.WithLabelValues("expired_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token has expired")
				}
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
