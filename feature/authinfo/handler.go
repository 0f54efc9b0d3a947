package authinfo

import (
	"fiber-extras/core/logger"
	"fiber-extras/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthPath is served without authorization.
const HealthPath = "/health"

// Handler handles health and auth-info requests.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes registers the routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(HealthPath, h.HandleHealth)
	app.Get("/auth-info", h.HandleAuthInfo)
}

// HandleHealth reports liveness.
// @Summary Health
// @Tags health
// @Success 204 "No Content"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAuthInfo returns the authorization context of the caller.
// @Summary Authorization Context
// @Description Returns the JSON document the authority answered for the caller's credential.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Authorization context"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 403 {object} map[string]string "Not authenticated"
// @Router /auth-info [get]
func (h *Handler) HandleAuthInfo(c *fiber.Ctx) error {
	data, ok := auth.FromLocals(c)
	if !ok {
		logger.WithRayID(h.logger, c).Warn("Auth info requested without authorization")
		return c.JSON(fiber.Map{})
	}
	if len(data) == 0 {
		data = []byte("null")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
