// Package server holds the HTTP server configuration.
//
// The start command serves the snapshot ingestion endpoint and the integrity checks.
// This package defines the listen port, the API key guarding ingestion and the maximum
// accepted snapshot size.
package server
