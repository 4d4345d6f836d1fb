package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/service"
	"github.com/englishroom/portal-api/internal/utils"
)

// GalleryHandler wires session photo gallery routes.
type GalleryHandler struct {
	service service.GalleryService
	logger  zerolog.Logger
}

// NewGalleryHandler constructs the handler.
func NewGalleryHandler(service service.GalleryService, logger zerolog.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		logger:  logger.With().Str("component", "gallery_handler").Logger(),
	}
}

// Register attaches the public read route.
func (h *GalleryHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterAdmin attaches the write route, expected behind the admin guard.
func (h *GalleryHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
}

func (h *GalleryHandler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		return handleListError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "gallery items retrieved", items)
}

func (h *GalleryHandler) create(c *fiber.Ctx) error {
	payload := dto.GalleryCreateRequest{
		Title:   c.FormValue("title"),
		Caption: c.FormValue("caption"),
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	item, err := h.service.Create(c.Context(), payload, image)
	if err != nil {
		return handleSubmissionError(c, h.logger, err)
	}

	return utils.SendCreated(c, "session photo created", item)
}
