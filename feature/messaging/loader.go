package messaging

import (
	"fiber-extras/core/pubsub"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates a new messaging feature. It is disabled without a publisher.
func NewFeature(publisher pubsub.Publisher, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(publisher, logger), enabled: publisher != nil}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "messaging"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
