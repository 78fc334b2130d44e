package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouteSkipper skips middleware for the given route templates, e.g. "/ready".
func RouteSkipper(routes ...string) middleware.Skipper {
	skipped := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		skipped[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := skipped[ec.Path()]
		return ok
	}
}
