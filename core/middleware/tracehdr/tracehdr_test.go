package tracehdr_test

import (
	"net/http/httptest"
	"testing"

	"fiber-extras/core/middleware/tracehdr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceHeadersAreStripped(t *testing.T) {
	headers := map[string]string{}

	app := fiber.New()
	app.Use(tracehdr.New())
	app.Get("/", func(c *fiber.Ctx) error {
		for _, h := range []string{"X-Cloud-Trace-Context", "Traceparent", "X-Request-Source"} {
			if v := c.Get(h); v != "" {
				headers[h] = v
			}
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Cloud-Trace-Context", "105445aa7843bc8bf206b12000100000/1;o=1")
	req.Header.Set("Traceparent", "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01")
	req.Header.Set("X-Request-Source", "test")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.NotContains(t, headers, "X-Cloud-Trace-Context")
	assert.NotContains(t, headers, "Traceparent")
	assert.Equal(t, "test", headers["X-Request-Source"])
}
