// Package logging provides centralized structured logging configuration for
// the world generator.
//
// This package wraps logrus to provide consistent logging across the
// generation pipeline. It supports environment-based configuration and
// contextual per-pass loggers.
//
// # Configuration
//
// The logger can be configured via environment variables:
//   - LOG_LEVEL: Sets the minimum log level (debug, info, warn, error, fatal). Default: info
//   - LOG_FORMAT: Sets the output format (json, text). Default: text
//
// # Usage
//
//	logger := logging.NewLogger(logging.Config{
//	    Level:     logging.InfoLevel,
//	    Format:    logging.TextFormat,
//	    AddCaller: true,
//	})
//
//	logging.GeneratorLogger(logger, 42, 256, false).Info("generation complete")
//
// # Performance
//
// Generation passes run synchronously and can touch O(size^2) cells; avoid
// per-cell logging above Debug level.
package logging
