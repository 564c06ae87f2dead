package middleware

import (
	"github.com/alimikegami/point-of-sales/storefront-service/internal/repository"
	"github.com/labstack/echo/v4"
)

// ForwardAuthorization makes the caller's Authorization header available to upstream
// reads. Nothing is validated here.
func ForwardAuthorization(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if value := c.Request().Header.Get(echo.HeaderAuthorization); value != "" {
			ctx := repository.WithAuthorization(c.Request().Context(), value)
			c.SetRequest(c.Request().WithContext(ctx))
		}
		return next(c)
	}
}
