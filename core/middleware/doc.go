// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Validates the X-API-Key header (or a Bearer token) against the configured key.
//     Path prefixes listed in Config.Skip, such as the Swagger UI, stay public. An empty
//     key disables the check for local development.
//   - RayID: Reuses an incoming X-Ray-ID header or generates one, stores it in the
//     request locals and echoes it in the response so ingestion logs can be correlated.
//
// Register RayID first so every later log line carries the request id.
package middleware
