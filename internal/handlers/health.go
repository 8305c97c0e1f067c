// Package handlers contains the HTTP route handler functions for the Let's hang API.
// Each handler corresponds to one API endpoint and is responsible for reading the
// request, performing any store query, and writing a JSON response.
//
// Handlers that need the store follow the "handler factory" pattern: they take their
// dependencies as arguments and return a fiber.Handler, so nothing is kept in globals.
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// APIVersion is reported by the health and welcome payloads.
const APIVersion = "1.0.0"

// isoMillis matches the ISO-8601 shape clients already parse: millisecond precision, UTC, "Z" suffix.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Version   string `json:"version"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"` // logical name -> path
}

// TestEchoResponse is the body of GET /api/test.
type TestEchoResponse struct {
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Data      TestEchoStatus `json:"data"`
}

// TestEchoStatus holds placeholder counters; nothing here is read from the store.
type TestEchoStatus struct {
	Users      int    `json:"users"`
	Activities int    `json:"activities"`
	Status     string `json:"status"`
}

// GetHealth handles GET /health.
// It is intentionally lightweight — no database queries, no authentication — so
// load balancers and container probes can call it as often as they like.
func GetHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "OK",
		Timestamp: timestamp(time.Now()),
		Message:   "🚀 Let's hang API is running!",
		Version:   APIVersion,
	})
}

// GetRoot returns a handler for GET / listing the endpoints mounted on this server.
func GetRoot(endpoints map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(RootResponse{
			Message:   "Welcome to Let's hang API! 🎉",
			Version:   APIVersion,
			Endpoints: endpoints,
		})
	}
}

// GetTestEcho handles GET /api/test, a smoke-test endpoint for deployments.
func GetTestEcho(c *fiber.Ctx) error {
	return c.JSON(TestEchoResponse{
		Message:   "API is working perfectly!",
		Timestamp: timestamp(time.Now()),
		Data: TestEchoStatus{
			Users:      0,
			Activities: 0,
			Status:     "ready for deployment",
		},
	})
}

// timestamp formats t the way every payload in this API reports time.
func timestamp(t time.Time) string {
	return t.UTC().Format(isoMillis)
}
