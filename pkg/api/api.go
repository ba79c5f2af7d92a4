// Package api exposes the interpreter over HTTP: a single run endpoint that
// executes a script with a fresh environment and returns its output.
package api

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tinkerlang/tinker/pkg/runtime"
)

// Server is the HTTP playground server.
type Server struct {
	app *fiber.App
}

// New creates the server and registers its routes.
func New() *Server {
	srv := &Server{}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Post("/run", srv.runScript)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

type runRequest struct {
	Source string `json:"source"`
}

// runScript executes the posted script. Each request gets its own
// environment; nothing is shared across requests.
func (s *Server) runScript(c *fiber.Ctx) error {
	var req runRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": fiber.Map{
				"stage":   "request",
				"message": "request body must be JSON with a 'source' field",
			},
		})
	}
	if req.Source == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": fiber.Map{
				"stage":   "request",
				"message": "source must not be empty",
			},
		})
	}

	var out bytes.Buffer
	result, err := runtime.Run(req.Source, &out)
	if err != nil {
		return c.Status(422).JSON(fiber.Map{
			"error": fiber.Map{
				"stage":   runtime.Stage(err),
				"message": err.Error(),
			},
			// Output already produced before an eval error is kept.
			"output": out.String(),
		})
	}

	return c.JSON(fiber.Map{
		"result": result,
		"output": out.String(),
	})
}
