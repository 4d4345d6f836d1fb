package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/service"
	"github.com/englishroom/portal-api/internal/utils"
)

// ClassworkHandler wires classwork HTTP routes.
type ClassworkHandler struct {
	service service.ClassworkService
	logger  zerolog.Logger
}

// NewClassworkHandler constructs the handler.
func NewClassworkHandler(service service.ClassworkService, logger zerolog.Logger) *ClassworkHandler {
	return &ClassworkHandler{
		service: service,
		logger:  logger.With().Str("component", "classwork_handler").Logger(),
	}
}

// Register attaches the public read route.
func (h *ClassworkHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterAdmin attaches the write route, expected behind the admin guard.
func (h *ClassworkHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
}

func (h *ClassworkHandler) list(c *fiber.Ctx) error {
	classworks, err := h.service.List(c.Context())
	if err != nil {
		return handleListError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "classwork retrieved", classworks)
}

func (h *ClassworkHandler) create(c *fiber.Ctx) error {
	payload := dto.ClassworkCreateRequest{
		Title:   c.FormValue("title"),
		Details: c.FormValue("details"),
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["files"]
	}

	classwork, err := h.service.Create(c.Context(), payload, files)
	if err != nil {
		return handleSubmissionError(c, h.logger, err)
	}

	return utils.SendCreated(c, "classwork created", classwork)
}
