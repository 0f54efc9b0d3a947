package security

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequestInfo describes the inbound request to the remote authority.
type RequestInfo struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	QueryParams map[string]string `json:"query_params"`
	Headers     map[string]string `json:"headers"`
	Cookies     map[string]string `json:"cookies"`
}

// RequestInfoFromCtx snapshots the current Fiber request. Header names are
// lowercased; for repeated keys the last value wins.
func RequestInfoFromCtx(c *fiber.Ctx) RequestInfo {
	info := RequestInfo{
		Method:      c.Method(),
		Path:        c.Path(),
		QueryParams: map[string]string{},
		Headers:     map[string]string{},
		Cookies:     map[string]string{},
	}

	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		info.QueryParams[string(k)] = string(v)
	})
	c.Request().Header.VisitAll(func(k, v []byte) {
		info.Headers[strings.ToLower(string(k))] = string(v)
	})
	c.Request().Header.VisitAllCookie(func(k, v []byte) {
		info.Cookies[string(k)] = string(v)
	})

	return info
}
