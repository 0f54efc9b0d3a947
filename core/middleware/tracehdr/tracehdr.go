package tracehdr

import (
	"github.com/gofiber/fiber/v2"
)

// Headers are the trace propagation headers removed from inbound requests.
var Headers = []string{"x-cloud-trace-context", "traceparent"}

// New returns a middleware that drops trace propagation headers before the rest
// of the chain sees the request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, h := range Headers {
			c.Request().Header.Del(h)
		}
		return c.Next()
	}
}
