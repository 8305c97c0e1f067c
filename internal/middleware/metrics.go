package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/letshang/api/internal/observability"
)

// unmatchedRoute labels requests that fell through to the 404 catch-all, so arbitrary
// client paths cannot blow up the metric's label cardinality.
const unmatchedRoute = "unmatched"

// Metrics returns a middleware that records request counts and latencies by route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		resolveError(c, c.Next())

		status := c.Response().StatusCode()
		route := c.Route().Path
		if status == fiber.StatusNotFound {
			route = unmatchedRoute
		}
		observability.RecordRequest(c.Method(), route, status, time.Since(start))
		return nil
	}
}
