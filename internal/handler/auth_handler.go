package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/middleware"
	"github.com/englishroom/portal-api/internal/service"
	"github.com/englishroom/portal-api/internal/utils"
)

// Fixed message shown for a wrong password, kept stable for clients.
const incorrectPasswordMessage = "Incorrect password. Please try again."

// AuthHandler wires the admin gate routes.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches the public auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
	router.Get("/session", h.session)
}

// RegisterAdmin attaches sign-out behind the admin guard.
func (h *AuthHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/logout", h.logout)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Login(c.Context(), payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrPasswordMismatch) {
			return utils.SendError(c, fiber.StatusUnauthorized, incorrectPasswordMessage)
		}
		h.logger.Error().Err(err).Msg("login failed")
		return utils.SendError(c, fiber.StatusBadGateway, remoteMessage(err))
	}

	return utils.SendSuccess(c, "signed in", result)
}

// session reports whether the presented token still maps to a live admin
// session. A missing or dead token is not an error; the client uses this on
// reload to decide which surface to show.
func (h *AuthHandler) session(c *fiber.Ctx) error {
	token := middleware.BearerToken(c)
	if token == "" {
		return utils.SendSuccess(c, "session checked", dto.SessionResponse{Authenticated: false})
	}

	if _, err := h.service.Verify(c.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrSessionRevoked) {
			return utils.SendSuccess(c, "session checked", dto.SessionResponse{Authenticated: false})
		}
		h.logger.Error().Err(err).Msg("session check failed")
		return utils.SendError(c, fiber.StatusBadGateway, remoteMessage(err))
	}

	return utils.SendSuccess(c, "session checked", dto.SessionResponse{Authenticated: true})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	sessionID, _ := c.Locals("session_id").(string)
	if sessionID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "no active session")
	}

	if err := h.service.Logout(c.Context(), sessionID); err != nil {
		h.logger.Error().Err(err).Msg("logout failed")
		return utils.SendError(c, fiber.StatusBadGateway, remoteMessage(err))
	}

	return utils.SendSuccess(c, "signed out", nil)
}
