package auth

import (
	"encoding/json"
	"errors"

	"fiber-extras/core/logger"
	"fiber-extras/core/security"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalsKey is where the authorization context is stored for downstream handlers.
const LocalsKey = "authorizer"

// Config defines the config for the auth middleware.
type Config struct {
	// Authorizer decides each request. Required.
	Authorizer *security.Authorizer
	// Logger receives denials. Defaults to a no-op logger.
	Logger *zap.Logger
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool
}

// New creates a new auth middleware handler.
func New(config Config) fiber.Handler {
	if config.Authorizer == nil {
		panic("auth: Authorizer is required")
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	scheme := config.Authorizer.Scheme()

	return func(c *fiber.Ctx) error {
		if config.Next != nil && config.Next(c) {
			return c.Next()
		}

		token, ok := scheme.Extract(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"detail": "Not authenticated"})
		}

		ctxData, err := config.Authorizer.Authorize(c.UserContext(), security.RequestInfoFromCtx(c), token)
		if err != nil {
			if !errors.Is(err, security.ErrUnauthorized) {
				logger.WithRayID(config.Logger, c).Error("Authorization failed", zap.Error(err))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
		}

		c.Locals(LocalsKey, ctxData)
		return c.Next()
	}
}

// FromLocals returns the authorization context stored by the middleware.
func FromLocals(c *fiber.Ctx) (json.RawMessage, bool) {
	v, ok := c.Locals(LocalsKey).(json.RawMessage)
	return v, ok
}
