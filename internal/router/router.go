package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/englishroom/portal-api/internal/config"
	"github.com/englishroom/portal-api/internal/handler"
	"github.com/englishroom/portal-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AssignmentHandler *handler.AssignmentHandler
	ClassworkHandler  *handler.ClassworkHandler
	PaperHandler      *handler.PaperHandler
	GalleryHandler    *handler.GalleryHandler
	AuthHandler       *handler.AuthHandler
	AdminGuard        fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Reads are
// public; every write sits behind the admin session guard.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/resources/pbl", handler.PBLReadingList())

	deps.AuthHandler.Register(api.Group("/auth"))
	deps.AssignmentHandler.Register(api.Group("/assignments"))
	deps.ClassworkHandler.Register(api.Group("/classwork"))
	deps.PaperHandler.Register(api.Group("/papers"))
	deps.GalleryHandler.Register(api.Group("/gallery"))

	admin := api.Group("/admin", deps.AdminGuard)
	deps.AuthHandler.RegisterAdmin(admin.Group("/auth"))
	deps.AssignmentHandler.RegisterAdmin(admin.Group("/assignments"))
	deps.ClassworkHandler.RegisterAdmin(admin.Group("/classwork"))
	deps.PaperHandler.RegisterAdmin(admin.Group("/papers"))
	deps.GalleryHandler.RegisterAdmin(admin.Group("/gallery"))
}
