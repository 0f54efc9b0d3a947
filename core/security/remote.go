package security

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthorityResponse is the raw answer of the authorization endpoint.
type AuthorityResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the authority granted the request.
func (r *AuthorityResponse) OK() bool {
	return r.StatusCode == fiber.StatusOK
}

// AuthorityOption configures the outbound call.
type AuthorityOption func(*RemoteAuthority)

// WithHeader adds a header sent on every call.
func WithHeader(key, value string) AuthorityOption {
	return func(r *RemoteAuthority) { r.headers[key] = value }
}

// WithHeaders adds several headers sent on every call.
func WithHeaders(headers map[string]string) AuthorityOption {
	return func(r *RemoteAuthority) {
		for k, v := range headers {
			r.headers[k] = v
		}
	}
}

// WithTimeout bounds a single exchange. Zero leaves it unbounded.
func WithTimeout(d time.Duration) AuthorityOption {
	return func(r *RemoteAuthority) { r.timeout = d }
}

// RemoteAuthority posts JSON payloads to one authorization endpoint.
type RemoteAuthority struct {
	url     string
	headers map[string]string
	timeout time.Duration
}

// NewRemoteAuthority validates rawURL and applies opts.
func NewRemoteAuthority(rawURL string, opts ...AuthorityOption) (*RemoteAuthority, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	r := &RemoteAuthority{
		url:     rawURL,
		headers: map[string]string{},
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// URL returns the endpoint.
func (r *RemoteAuthority) URL() string {
	return r.url
}

// Authorize performs one POST exchange. Any HTTP status is a valid response;
// only transport-level failures return an error. A client agent is acquired
// for the call and released before returning.
func (r *RemoteAuthority) Authorize(ctx context.Context, payload any) (*AuthorityResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(r.url)
	for k, v := range r.headers {
		a.Set(k, v)
	}
	a.JSON(payload)

	if timeout := r.effectiveTimeout(ctx); timeout > 0 {
		a.Timeout(timeout)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, fmt.Errorf("failed to prepare authorization request: %w", err)
	}

	// Bytes releases the agent.
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("authorization request failed: %w", errors.Join(errs...))
	}

	return &AuthorityResponse{StatusCode: code, Body: body}, nil
}

// effectiveTimeout is the configured timeout, shortened by the context deadline.
func (r *RemoteAuthority) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			remaining = time.Nanosecond
		}
		if timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}
