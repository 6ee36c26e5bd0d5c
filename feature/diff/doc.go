// Package diff is the comparison feature: it turns two schema listings and a key
// list into one CREATE TABLE ... AS statement that records per-column status codes.
//
// # Endpoints
//
//   - POST /diff: generate the statement from a JSON request.
//   - GET /diff/codes: the status code legend.
//
// The same Service backs the generate command, which reads the listings from
// files, stdin or object storage and publishes the statement to a file, stdout or
// an s3:// location.
//
// Raw WHERE fragments are trusted SQL and are inserted verbatim. They are scanned
// with libinjection and suspicious ones are reported as warnings, never rejected.
package diff
