// Package middleware groups the Fiber middleware shared by every feature.
//
// # Components
//
//   - auth: Resolves the request credential and asks a security.Authorizer
//     whether the request may proceed. The decision context is exposed to
//     handlers through auth.FromLocals.
//   - rayid: Tags every request with a ray ID (X-Ray-ID) for log correlation.
//   - tracehdr: Drops x-cloud-trace-context and traceparent from inbound requests.
//   - stripprefix: Serves an application mounted under a path prefix.
//
// Register rayid first so every later log line carries the ID, and stripprefix
// before any route.
package middleware
