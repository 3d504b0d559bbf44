// Package middleware contains HTTP middleware for the lookup server.
//
// # Components
//
//   - Auth: API key validation (X-API-Key header) to protect endpoints.
//   - RayID: a unique Request ID (RayID) for every incoming request, stored in the
//     context and echoed in the X-Ray-ID response header for tracing.
package middleware
