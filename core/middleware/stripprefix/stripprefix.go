package stripprefix

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// New returns a middleware that removes prefix from request paths of the form
// prefix + "/...". The exact prefix path and unrelated paths pass unchanged.
//
// It must be registered with app.Use before any route so the router matches
// against the rewritten path.
func New(prefix string) fiber.Handler {
	prefix = strings.TrimRight(prefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return func(c *fiber.Ctx) error {
		if prefix == "" {
			return c.Next()
		}

		path := c.Path()
		if strings.HasPrefix(path, prefix+"/") {
			c.Path(path[len(prefix):])
		}
		return c.Next()
	}
}
