// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: tags every request with a Request ID (RayID), stored in the
//     context locals and echoed in the X-Ray-ID response header.
//   - Access: writes one structured log entry per request with its method,
//     path, status, client IP and RayID.
//
// Both are registered globally, RayID first, ahead of any feature routes.
package middleware
