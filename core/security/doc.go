// Package security implements remote authorization with an optional decision cache.
//
// An Authorizer turns an inbound request into a cache key derived from the caller's
// credential token, replays a cached decision when one exists, and otherwise asks a
// remote authority over HTTP. Every failure surfaces as ErrUnauthorized; the reason
// is only visible in the logs.
//
// # Components
//
//   - Cache: string key/value capability consumed by the authorizer (see core/cache
//     for the Redis and in-memory backends). NopCache is used when none is configured.
//   - CacheEntry: key derivation and best-effort read/write of a Decision.
//   - Scheme: where the credential token is read from (header, cookie or query).
//   - RemoteAuthority: the single POST exchange with the authorization endpoint.
//   - Authorizer: the orchestration of the above.
//
// # Usage
//
//	az, err := security.NewAuthorizer("http://auth.internal/check",
//	    security.WithScheme(security.QueryScheme("token")),
//	    security.WithCache(cache.NewMemory()),
//	    security.WithAuthorityHeader("x-api-key", apiKey),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctxValue, err := az.Authorize(ctx, security.RequestInfoFromCtx(c), token)
package security
