// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware and attaches it to the log
// entry. ForHost scopes a logger to one polled device so every reconciliation trace for
// a snapshot carries the hostname.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	l := logger.ForHost(log, "sw1")
//	l.Debug("Updating Device table")
package logger
