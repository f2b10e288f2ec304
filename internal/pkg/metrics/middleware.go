package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware records request count and duration for every route.
// The metrics endpoint itself is skipped to avoid recursion.
func EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			// Use the route pattern, not the raw path, to keep label cardinality bounded
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			RecordHTTPMetrics(serviceName, c.Request().Method, path, status, duration)
			return err
		}
	}
}
