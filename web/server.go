package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/lolirock238/vitual-backend/repository"
	"github.com/lolirock238/vitual-backend/web/handlers"
)

// Server represents the web server
type Server struct {
	app *fiber.App
	log *logrus.Logger
}

// NewServer creates a new Fiber server around the given handlers.
// uploadDir is mounted read-only under publicPrefix so stored assets are
// retrievable by the references the asset store hands out.
func NewServer(h *handlers.Handler, uploadDir, publicPrefix string, log *logrus.Logger) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Static asset boundary for uploaded images
	app.Static(publicPrefix, uploadDir)

	setupRoutes(app, h)

	return &Server{app: app, log: log}
}

// Start starts the server
func (s *Server) Start(port string) error {
	s.log.Infof("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler translates classified errors into structured JSON failures.
// Every error response carries a machine-readable kind and a message.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		kind := "internal"
		message := err.Error()

		var appErr *repository.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			kind = string(appErr.Kind)
			switch appErr.Kind {
			case repository.KindValidation, repository.KindInvalidPayload:
				code = fiber.StatusBadRequest
			case repository.KindNotFound:
				code = fiber.StatusNotFound
			case repository.KindConflict:
				code = fiber.StatusConflict
			case repository.KindStorageWrite:
				code = fiber.StatusInternalServerError
			}
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.WithError(err).Errorf("%s %s failed", c.Method(), c.Path())
			// The detail stays in the log; clients only learn that
			// something unclassified went wrong.
			if kind == "internal" {
				message = "internal server error"
			}
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"kind":    kind,
				"message": message,
			},
		})
	}
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Home)
	app.Get("/health", h.Health)

	categories := app.Group("/categories")
	categories.Post("/", h.CategoryCreate)
	categories.Get("/", h.CategoryList)
	categories.Put("/:id", h.CategoryUpdate)
	categories.Delete("/:id", h.CategoryDelete)

	items := app.Group("/items")
	items.Post("/", h.ItemCreate)
	items.Get("/", h.ItemList)
	items.Get("/:id", h.ItemGet)
	items.Put("/:id", h.ItemUpdate)
	items.Delete("/:id", h.ItemDelete)

	outfits := app.Group("/outfits")
	outfits.Post("/", h.OutfitCreate)
	outfits.Get("/", h.OutfitList)
	outfits.Get("/:id", h.OutfitGet)
	outfits.Put("/:id", h.OutfitUpdate)
	outfits.Delete("/:id", h.OutfitDelete)

	app.Post("/item_images", h.ItemImageCreate)
	app.Get("/item_images", h.ItemImageList)

	app.Post("/outfit_items", h.OutfitItemCreate)
	app.Get("/outfit_items", h.OutfitItemList)
}
