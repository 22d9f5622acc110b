// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Validates the X-Api-Key header on protected route groups.
//   - RayID: Assigns a unique request id (RayID) to every incoming request
//     and exposes it through the context and response headers, so that log
//     lines of one request can be correlated across handlers.
//
// Both are registered globally during application setup; Auth is a no-op
// when no API key is configured.
package middleware
