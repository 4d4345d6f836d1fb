package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/service"
	"github.com/englishroom/portal-api/internal/utils"
	"github.com/englishroom/portal-api/pkg/storage"
)

// handleSubmissionError maps workflow failures onto the response envelope:
// local validation problems are 400s with no backend involvement, path
// collisions are conflicts, and everything else is a remote failure surfaced
// with the backend's own message.
func handleSubmissionError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	case service.IsValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrObjectExists):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	default:
		logger.Error().Err(err).Msg("remote call failed")
		return utils.SendError(c, fiber.StatusBadGateway, remoteMessage(err))
	}
}

// handleListError surfaces a failed read with the backend's message.
func handleListError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	logger.Error().Err(err).Msg("listing failed")
	return utils.SendError(c, fiber.StatusBadGateway, remoteMessage(err))
}

func remoteMessage(err error) string {
	if err == nil {
		return "Unknown error"
	}
	message := strings.TrimSpace(err.Error())
	if message == "" {
		return "Unknown error"
	}
	return message
}
