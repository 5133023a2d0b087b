// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber application; this package only defines the
// listen port and the API key that protects every feature route.
package server
