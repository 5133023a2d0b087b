// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting feature routes.
//   - rayid: assigns every request a Ray ID, stored in Locals and echoed in
//     the X-Ray-ID response header so log lines can be correlated.
//
// Register rayid first so every later handler can log the Ray ID.
package middleware
