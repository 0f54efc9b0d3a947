package items

import (
	"fiber-extras/core/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	migrate bool
	handler *Handler
}

// NewFeature creates a new items feature. It is disabled without a database.
func NewFeature(db *gorm.DB, migrate bool, logger *zap.Logger) *Feature {
	return &Feature{db: db, migrate: migrate, handler: NewHandler(logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "items"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the schema when requested and registers the routes behind a
// session middleware.
func (f *Feature) Load(app fiber.Router) error {
	if f.migrate {
		if err := f.db.AutoMigrate(&Item{}); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app, database.Session(f.db))
	return nil
}
