package security

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SchemeKind is where a credential token is read from.
type SchemeKind int

const (
	SchemeHeader SchemeKind = iota + 1
	SchemeCookie
	SchemeQuery
)

// String returns the config spelling of the kind.
func (k SchemeKind) String() string {
	switch k {
	case SchemeHeader:
		return "header"
	case SchemeCookie:
		return "cookie"
	case SchemeQuery:
		return "query"
	default:
		return "unknown"
	}
}

// DefaultScheme reads the whole Authorization header.
var DefaultScheme = HeaderScheme(fiber.HeaderAuthorization)

// Scheme selects one extraction mechanism and the parameter name it reads.
type Scheme struct {
	Kind SchemeKind
	Name string
}

// HeaderScheme reads the token from the named request header.
func HeaderScheme(name string) Scheme { return Scheme{Kind: SchemeHeader, Name: name} }

// CookieScheme reads the token from the named cookie.
func CookieScheme(name string) Scheme { return Scheme{Kind: SchemeCookie, Name: name} }

// QueryScheme reads the token from the named query parameter.
func QueryScheme(name string) Scheme { return Scheme{Kind: SchemeQuery, Name: name} }

// ParseScheme builds a Scheme from its config form ("header", "cookie" or "query").
func ParseScheme(kind, name string) (Scheme, error) {
	var s Scheme
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "header", "":
		s = HeaderScheme(name)
	case "cookie":
		s = CookieScheme(name)
	case "query":
		s = QueryScheme(name)
	default:
		return Scheme{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidScheme, kind)
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}

// Validate checks that the scheme can extract anything at all.
func (s Scheme) Validate() error {
	switch s.Kind {
	case SchemeHeader, SchemeCookie, SchemeQuery:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidScheme, s.Kind)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: empty %s name", ErrInvalidScheme, s.Kind)
	}
	return nil
}

// Extract returns the credential token carried by the request, if any.
func (s Scheme) Extract(c *fiber.Ctx) (string, bool) {
	var token string
	switch s.Kind {
	case SchemeHeader:
		token = c.Get(s.Name)
	case SchemeCookie:
		token = c.Cookies(s.Name)
	case SchemeQuery:
		token = c.Query(s.Name)
	}
	if token == "" {
		return "", false
	}
	return token, true
}

// String renders the scheme as kind:name.
func (s Scheme) String() string {
	return s.Kind.String() + ":" + s.Name
}
