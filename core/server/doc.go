// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the supported game data document sources.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the document source
// (storage or database) the catalog pipeline reads from.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to pick the document source implementation.
package server
