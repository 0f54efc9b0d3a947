package items

import (
	"errors"
	"strings"

	"fiber-extras/core/database"
	"fiber-extras/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handler handles item requests.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes registers the item routes behind the given middleware.
func (h *Handler) RegisterRoutes(app fiber.Router, middleware ...fiber.Handler) {
	group := app.Group("/items", middleware...)
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
}

// HandleCreate creates an item.
// @Summary Create Item
// @Tags items
// @Accept json
// @Produce json
// @Param item body Item true "Item"
// @Success 201 {object} Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /items [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	db, ok := database.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "database unavailable"})
	}

	var item Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	item.Key = strings.TrimSpace(item.Key)
	if item.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	if err := db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "item already exists"})
		}
		logger.WithRayID(h.logger, c).Error("Failed to create item", zap.String("key", item.Key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleList lists items.
// @Summary List Items
// @Tags items
// @Produce json
// @Success 200 {array} Item
// @Router /items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	db, ok := database.FromLocals(c)
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "database unavailable"})
	}

	items := []Item{}
	if err := db.Order("created_at").Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&items).Error; err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list items", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}
