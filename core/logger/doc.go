// Package logger provides a structured logging facility based on Zap.
//
// Both the CLI and the HTTP server log through the same constructor, so
// startup failures and request entries share one format.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (human readable) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Serving at port", zap.Int("port", 8080))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
package logger
