package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/service"
	"github.com/englishroom/portal-api/internal/utils"
)

// PaperHandler wires past-year question paper routes.
type PaperHandler struct {
	service service.PaperService
	logger  zerolog.Logger
}

// NewPaperHandler constructs the handler.
func NewPaperHandler(service service.PaperService, logger zerolog.Logger) *PaperHandler {
	return &PaperHandler{
		service: service,
		logger:  logger.With().Str("component", "paper_handler").Logger(),
	}
}

// Register attaches the public read route.
func (h *PaperHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterAdmin attaches the upload route, expected behind the admin guard.
func (h *PaperHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.upload)
}

func (h *PaperHandler) list(c *fiber.Ctx) error {
	papers, err := h.service.List(c.Context())
	if err != nil {
		return handleListError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "papers retrieved", papers)
}

func (h *PaperHandler) upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	paper, err := h.service.Upload(c.Context(), file)
	if err != nil {
		return handleSubmissionError(c, h.logger, err)
	}

	return utils.SendCreated(c, "paper uploaded", paper)
}
