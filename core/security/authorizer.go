package security

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultKeyPrefix namespaces decision keys in a shared cache.
const DefaultKeyPrefix = "authorizer:"

// Option configures an Authorizer.
type Option func(*Authorizer)

// WithScheme sets where the credential token is read from.
func WithScheme(s Scheme) Option {
	return func(a *Authorizer) { a.scheme = s }
}

// WithCache enables decision caching. A nil cache disables it.
func WithCache(c Cache) Option {
	return func(a *Authorizer) {
		if c == nil {
			c = NopCache{}
		}
		a.cache = c
	}
}

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(a *Authorizer) { a.prefix = prefix }
}

// WithLogger sets the logger used for cache and transport failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Authorizer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAuthorityHeader forwards a header on every call to the authority.
func WithAuthorityHeader(key, value string) Option {
	return func(a *Authorizer) { a.authorityOpts = append(a.authorityOpts, WithHeader(key, value)) }
}

// WithAuthorityHeaders forwards several headers on every call to the authority.
func WithAuthorityHeaders(headers map[string]string) Option {
	return func(a *Authorizer) { a.authorityOpts = append(a.authorityOpts, WithHeaders(headers)) }
}

// WithAuthorityTimeout bounds each call to the authority.
func WithAuthorityTimeout(d time.Duration) Option {
	return func(a *Authorizer) { a.authorityOpts = append(a.authorityOpts, WithTimeout(d)) }
}

// Authorizer gates requests on a remote authority, caching its decisions.
type Authorizer struct {
	authority     *RemoteAuthority
	authorityOpts []AuthorityOption
	scheme        Scheme
	cache         Cache
	prefix        string
	logger        *zap.Logger
}

// NewAuthorizer validates the configuration eagerly.
func NewAuthorizer(rawURL string, opts ...Option) (*Authorizer, error) {
	a := &Authorizer{
		scheme: DefaultScheme,
		cache:  NopCache{},
		prefix: DefaultKeyPrefix,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(a)
	}

	if err := a.scheme.Validate(); err != nil {
		return nil, err
	}

	authority, err := NewRemoteAuthority(rawURL, a.authorityOpts...)
	if err != nil {
		return nil, err
	}
	a.authority = authority

	return a, nil
}

// Scheme returns the configured credential scheme.
func (a *Authorizer) Scheme() Scheme {
	return a.scheme
}

// Authorize decides whether the request described by info may proceed for token.
// On success it returns the authorization context produced by the authority.
// Every failure is ErrUnauthorized.
func (a *Authorizer) Authorize(ctx context.Context, info RequestInfo, token string) (json.RawMessage, error) {
	entry := NewCacheEntry(token, a.prefix, a.cache, a.logger)

	if d, ok := entry.Get(ctx); ok {
		if !d.Authorized {
			return nil, ErrUnauthorized
		}
		return d.Context, nil
	}

	resp, err := a.authority.Authorize(ctx, info)
	if err != nil {
		a.logger.Error("Authorization request failed",
			zap.String("url", a.authority.URL()),
			zap.String("key", entry.Key()),
			zap.Error(err))
		return nil, ErrUnauthorized
	}

	decision, err := decisionFrom(resp)
	if err != nil {
		a.logger.Error("Authorization response is malformed",
			zap.String("url", a.authority.URL()),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return nil, ErrUnauthorized
	}

	entry.Set(ctx, decision)

	if !decision.Authorized {
		a.logger.Warn("Authorization denied",
			zap.String("key", entry.Key()),
			zap.Int("status", resp.StatusCode))
		return nil, ErrUnauthorized
	}

	return decision.Context, nil
}

// decisionFrom maps an authority response to a decision. A grant must carry a
// JSON body; a denial keeps its body only when it is valid JSON.
func decisionFrom(resp *AuthorityResponse) (Decision, error) {
	if !resp.OK() {
		d := Decision{Authorized: false}
		if json.Valid(resp.Body) {
			d.Context = json.RawMessage(resp.Body)
		}
		return d, nil
	}
	if !json.Valid(resp.Body) {
		return Decision{}, fmt.Errorf("response body is not JSON (%d bytes)", len(resp.Body))
	}
	return Decision{Authorized: true, Context: json.RawMessage(resp.Body)}, nil
}
