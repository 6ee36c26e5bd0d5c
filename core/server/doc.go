// Package server holds the HTTP server configuration.
//
// The start command reads Port, ApiKey and the body limit from here; the API key
// is enforced by the auth middleware when set.
package server
