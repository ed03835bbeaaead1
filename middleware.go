package pubsite

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const staticPrefix = "/static/"

var secureConfig = middleware.SecureConfig{
	XSSProtection:         "1; mode=block",
	ContentTypeNosniff:    "nosniff",
	XFrameOptions:         "DENY",
	ReferrerPolicy:        "strict-origin-when-cross-origin",
	ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'",
	HSTSMaxAge:            31536000,
}

func isStatic(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, staticPrefix)
}

func (a *App) setupMiddleware() {
	e := a.Echo
	e.HTTPErrorHandler = a.httpErrorHandler

	// Runs before routing so /posts/ matches /posts.
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:  true,
			LogURI:     true,
			LogStatus:  true,
			LogLatency: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
				return nil
			},
		}),
		middleware.Recover(),
	)

	if a.Config.MetricsAddr != "" {
		e.Use(a.metrics.middleware())
	}

	e.Use(
		middleware.GzipWithConfig(middleware.GzipConfig{Level: 5, Skipper: isStatic}),
		middleware.SecureWithConfig(secureConfig),
		cacheControl,
	)
}

// cacheControl keeps static assets for an hour and makes pages revalidate
// on every visit.
func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		value := "no-cache"
		if isStatic(c) {
			value = "public, max-age=3600"
		}
		c.Response().Header().Set(echo.HeaderCacheControl, value)
		return next(c)
	}
}
