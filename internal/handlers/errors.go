package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Clients only ever see one of these two error bodies. Internal detail (driver
// messages, SQL, stack traces) goes to the server log and nowhere else.
const (
	msgInternalError = "Internal server error"
	msgRouteNotFound = "Route not found"
)

// ErrorResponse is the body of every error answer except 404.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotFoundResponse is the body of a 404 answer.
type NotFoundResponse struct {
	Error           string   `json:"error"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// NotFound returns the catch-all handler registered after every other route.
func NotFound(availableRoutes []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(NotFoundResponse{
			Error:           msgRouteNotFound,
			AvailableRoutes: availableRoutes,
		})
	}
}

// ErrorHandler is installed as fiber.Config.ErrorHandler and is the single place
// where handler errors become HTTP responses:
//   - *fiber.Error 404        → the NotFound body
//   - any other *fiber.Error  → its status code and message
//   - everything else         → logged, then a generic 500
func ErrorHandler(logger zerolog.Logger, availableRoutes []string) fiber.ErrorHandler {
	notFound := NotFound(availableRoutes)

	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return notFound(c)
			}
			return c.Status(fe.Code).JSON(ErrorResponse{Error: fe.Message})
		}

		logger.Error().
			Stack().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals("requestid")).
			Msg("request failed")

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternalError})
	}
}
