package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/nexus-api/internal/api/metrics"
)

// RBAC enforces role-based access control. The allowed set is exact: there is
// no role hierarchy, so a route gated on Project Lead rejects Admins too.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}
