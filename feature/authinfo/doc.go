// Package authinfo exposes the service health and the caller's authorization context.
//
// # HTTP Endpoints
//
//   - GET /health : Liveness probe, always 204. Not protected.
//   - GET /auth-info : Echoes the context returned by the authority for the caller.
package authinfo
