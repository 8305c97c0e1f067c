// Package server assembles the Fiber application: global middleware, the route
// table, the error handler, and the 404 catch-all.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/letshang/api/internal/handlers"
	"github.com/letshang/api/internal/middleware"
)

// Options are the dependencies of the HTTP app.
// Activities and Users are nil when the server runs without a store: the activities
// route is then not mounted and /api/users answers with the static stub.
type Options struct {
	Logger       zerolog.Logger
	Activities   handlers.ActivityLister
	Users        handlers.UserLister
	StoreTimeout time.Duration
}

// route is one public GET endpoint. Its name is the key used in the welcome payload.
type route struct {
	name    string
	path    string
	handler fiber.Handler
}

// New builds the Fiber app for opts.
func New(opts Options) *fiber.App {
	routes := publicRoutes(opts)

	// availableRoutes is what the 404 body advertises; endpoints is what GET / lists.
	availableRoutes := []string{"/"}
	endpoints := make(map[string]string, len(routes))
	for _, r := range routes {
		availableRoutes = append(availableRoutes, r.path)
		endpoints[r.name] = r.path
	}

	app := fiber.New(fiber.Config{
		AppName:               "Let's hang API",
		ErrorHandler:          handlers.ErrorHandler(opts.Logger, availableRoutes),
		DisableStartupMessage: true,
	})

	// --- Global middleware ---
	// These run on every request before any route handler, in the order registered.
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(opts.Logger))
	app.Use(middleware.Metrics())
	// recover sits inside the logger so a panicking handler is still logged as a 500.
	app.Use(recover.New())

	// Operator surface: Prometheus scrape endpoint. Not advertised to API clients.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", handlers.GetRoot(endpoints))
	for _, r := range routes {
		app.Get(r.path, r.handler)
	}

	// Registered last so it only sees requests no route above matched.
	app.Use(handlers.NotFound(availableRoutes))

	return app
}

func publicRoutes(opts Options) []route {
	routes := []route{
		{name: "health", path: "/health", handler: handlers.GetHealth},
		{name: "test", path: "/api/test", handler: handlers.GetTestEcho},
	}

	if opts.Users != nil {
		routes = append(routes, route{name: "users", path: "/api/users", handler: handlers.ListUsers(opts.Users, opts.StoreTimeout)})
	} else {
		routes = append(routes, route{name: "users", path: "/api/users", handler: handlers.UsersStub})
	}

	if opts.Activities != nil {
		routes = append(routes, route{name: "activities", path: "/api/activities", handler: handlers.ListActivities(opts.Activities, opts.StoreTimeout)})
	}

	return routes
}
