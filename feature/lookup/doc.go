// Package lookup serves the compiled element -> attributes table over HTTP.
//
// The table is read through a sink.Reader (file, storage or database) and reused
// for the configured TTL; concurrent reloads are collapsed into one read.
//
// # HTTP Endpoints
//
//   - GET /attributes : The whole table, "*" included.
//   - GET /attributes/:element : Global and element-specific attributes of one element.
package lookup
