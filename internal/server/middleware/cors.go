package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

// CORS return echo middleware that handle cors with regexp pattern
func CORS(pattern *regexp.Regexp) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			respHeader := c.Response().Header()
			respHeader.Add(echo.HeaderVary, echo.HeaderOrigin)
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" || !pattern.MatchString(origin) {
				return next(c)
			}
			respHeader.Set(echo.HeaderAccessControlAllowOrigin, origin)
			if c.Request().Method == http.MethodOptions {
				respHeader.Set(echo.HeaderAccessControlAllowHeaders, "*, Content-Type, "+XRequestID)
				respHeader.Set(echo.HeaderAccessControlAllowMethods, "OPTIONS, POST, PUT, DELETE, GET")
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}
