// Package server holds the configuration of the lookup HTTP server started by the
// "start" command: listen port, API key, the backend the compiled table is read
// from, and how long a loaded table is reused.
package server
