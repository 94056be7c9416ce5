package static

import (
	"net/http"

	"static-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// Handler serves files from the document root.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the method guard and rewrite middleware followed by
// the file server. The rewrite must run before any file or directory lookup.
//
// Files are opened on every request; Router.Static is avoided because its
// handle cache keeps serving edited or deleted files.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandleMethods)
	app.Use(h.HandleRewrite)
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(h.service.Root()),
		Browse: true,
		Index:  "/index.html",
	}))
}

// HandleMethods rejects every method the file server does not implement.
func (h *Handler) HandleMethods(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead:
		return c.Next()
	}
	c.Set(fiber.HeaderAllow, "GET, HEAD")
	return fiber.ErrMethodNotAllowed
}

// HandleRewrite substitutes the landing page for the rewritten targets.
func (h *Handler) HandleRewrite(c *fiber.Ctx) error {
	if target, ok := Rewrite(c.Method(), c.OriginalURL()); ok {
		logger.WithRayID(h.service.logger, c).Debug("Rewriting request",
			zap.String("from", c.OriginalURL()),
			zap.String("to", target))
		c.Path(target)
	}
	return c.Next()
}
