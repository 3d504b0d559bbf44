// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for the CLI and the lookup server. Build runs tag
// their entries with a run id; HTTP requests carry the RayID set by the rayid
// middleware.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log = logger.WithRunID(log, runID)
//	log.Info("Build started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
