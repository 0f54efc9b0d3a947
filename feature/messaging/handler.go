package messaging

import (
	"encoding/json"
	"errors"

	"fiber-extras/core/logger"
	"fiber-extras/core/middleware/rayid"
	"fiber-extras/core/pubsub"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles publish requests.
type Handler struct {
	publisher pubsub.Publisher
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(publisher pubsub.Publisher, logger *zap.Logger) *Handler {
	return &Handler{publisher: publisher, logger: logger}
}

// RegisterRoutes registers the messaging routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/messages/:topic", h.HandlePublish)
}

// HandlePublish publishes the body to a topic.
// @Summary Publish Message
// @Description Publishes the JSON body to the topic. Query parameters are sent as attributes.
// @Tags messaging
// @Accept json
// @Produce json
// @Param topic path string true "Topic"
// @Success 202 {object} map[string]string "Message ID"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Publish failed"
// @Router /messages/{topic} [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	topic := c.Params("topic")

	body := c.Body()
	if !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body must be valid JSON"})
	}

	attrs := c.Queries()
	if rid := rayid.Get(c); rid != "" {
		attrs["ray_id"] = rid
	}

	// The body buffer is reused by fasthttp once the handler returns.
	message := json.RawMessage(append([]byte(nil), body...))

	id, err := h.publisher.Publish(c.UserContext(), topic, message, attrs)
	if err != nil {
		if errors.Is(err, pubsub.ErrEmptyRecipient) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Publish failed", zap.String("topic", topic), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "publish failed"})
	}

	l.Info("Message published", zap.String("topic", topic), zap.String("id", id))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"id": id})
}
