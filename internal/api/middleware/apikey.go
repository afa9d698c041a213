package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/influencer-summit/summit-api/internal/api/metrics"
	"github.com/influencer-summit/summit-api/internal/core/ports"
)

// HeaderAPIKey carries the admin credential.
const HeaderAPIKey = "x-api-key"

// APIKey rejects requests whose x-api-key header does not match the admin
// key. Rejection happens before the next handler runs, so no storage is read.
func APIKey(authorizer ports.AdminAuthorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authorizer.Authorize(c.Request().Header.Get(HeaderAPIKey)); err != nil {
				metrics.AdminAuthFailuresTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
