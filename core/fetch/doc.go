// Package fetch provides the document transport used by the source adapters.
//
// A single GET per document, with connection, TLS and header timeouts taken from
// configuration and a hard cap on the body size. Non-200 responses are returned as
// *HTTPError. Nothing is retried or cached.
package fetch
