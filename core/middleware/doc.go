// Package middleware groups the HTTP middleware of the checkatron server.
//
//   - auth: API key check (X-API-Key header or api_key query parameter).
//   - rayid: per-request id stored in fiber locals and echoed in X-Ray-ID.
package middleware
