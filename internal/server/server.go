package server

import (
	"log"

	"study-canvas-be/internal/bootstrap"
	"study-canvas-be/internal/config"
	"study-canvas-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	// The canvas runs unauthenticated by default; shared deployments turn
	// the JWT gate on.
	if cfg.App.AuthEnabled {
		api.Use(serverutils.JwtMiddleware)
	}

	c.NoteController.RegisterRoutes(api)
	c.CourseController.RegisterRoutes(api)
	c.InstructorController.RegisterRoutes(api)
	c.ConceptController.RegisterRoutes(api)
	c.ConnectionController.RegisterRoutes(api)
	c.ExportController.RegisterRoutes(api)
	c.PreferenceController.RegisterRoutes(api)

	c.FeedHandler.RegisterRoutes(api)
}
