package api

import (
	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, metrics *Metrics, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validator, err := NewRequestValidator()
	if err != nil {
		return nil, err
	}
	e.Validator = validator

	// Skip logging and metrics for readiness probe and metrics routes
	skipper := RouteSkipper("/ready", "/metrics")

	e.Use(middleware.Recover())
	e.Use(skipMiddleware(skipper, echozap.ZapLogger(logger)))
	e.Use(metrics.Middleware(skipper))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.GET("/metrics", metrics.Handler())
	RegisterHandlers(e, handler)

	return e, nil
}

func skipMiddleware(skipper middleware.Skipper, mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}
