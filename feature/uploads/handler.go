package uploads

import (
	"fiber-extras/core/logger"
	"fiber-extras/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormField is the multipart field carrying the file.
const FormField = "file"

// Handler handles upload requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/uploads")
	group.Post("/*", h.HandleUpload)
	group.Get("/*", h.HandleDownload)
	group.Delete("/*", h.HandleDelete)
}

// HandleUpload stores a multipart file.
// @Summary Upload Object
// @Description Stores the multipart "file" field under the given object path.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param path path string true "Object path"
// @Param file formData file true "File"
// @Success 201 {object} map[string]interface{} "Upload info"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /uploads/{path} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := objectName(c.Params("*"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object path is required"})
	}

	fh, err := c.FormFile(FormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}

	f, err := fh.Open()
	if err != nil {
		l.Error("Failed to open upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	info, err := h.service.Store(c.UserContext(), name, f, fh.Size, fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		l.Error("Upload failed", zap.String("object", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Object stored", zap.String("object", name), zap.Int64("size", info.Size))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"bucket": info.Bucket,
		"key":    info.Key,
		"size":   info.Size,
		"etag":   info.ETag,
	})
}

// HandleDownload streams an object.
// @Summary Download Object
// @Tags uploads
// @Produce octet-stream
// @Param path path string true "Object path"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Not Found"
// @Router /uploads/{path} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name := objectName(c.Params("*"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object path is required"})
	}

	rc, err := h.service.Open(c.UserContext(), name)
	if err != nil {
		return h.fail(c, name, err)
	}

	// Minio objects are lazy; the first read surfaces a missing key.
	data, err := readAll(rc)
	if err != nil {
		return h.fail(c, name, err)
	}

	c.Set(fiber.HeaderContentType, contentTypeOf(name))
	return c.Send(data)
}

// HandleDelete removes an object.
// @Summary Delete Object
// @Tags uploads
// @Param path path string true "Object path"
// @Success 204 "No Content"
// @Router /uploads/{path} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	name := objectName(c.Params("*"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object path is required"})
	}

	if err := h.service.Delete(c.UserContext(), name); err != nil {
		return h.fail(c, name, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, name string, err error) error {
	if storage.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found"})
	}
	logger.WithRayID(h.service.logger, c).Error("Storage operation failed", zap.String("object", name), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
