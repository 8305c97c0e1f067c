// Package middleware contains HTTP middleware functions for the Let's hang API.
// Middleware sits between the HTTP server and route handlers — it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like request logging and metrics.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger returns a middleware that writes one structured log line per request:
// method, path, final status code, latency, client IP, and request ID.
func RequestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Resolve handler errors here so the status we log is the one the client receives.
		resolveError(c, c.Next())

		status := c.Response().StatusCode()
		event := logger.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			event = logger.Error()
		case status >= fiber.StatusBadRequest:
			event = logger.Warn()
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Interface("request_id", c.Locals("requestid")).
			Msg("request")

		return nil
	}
}

// resolveError hands err to the app's ErrorHandler so the response is final before
// the calling middleware inspects it. Fiber would otherwise only do this after the
// whole middleware chain has returned.
func resolveError(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
