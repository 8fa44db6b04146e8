// Package logging provides a minimal logging facade for the Senzing SDK
// wrapper.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is
// intentionally small to allow applications to provide custom
// implementations for testing, redaction, or integration with existing
// logging systems.
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Redaction Support
//
// Senzing settings documents embed datastore credentials in their
// connection strings. The helpers keep those out of log output:
//
//	logger.Info(ctx, "environment created",
//	    logging.Connection("connection", settings.SQL.Connection),
//	)
//	// Logs: connection="postgresql://[redacted]@db:5432/er"
//
//	// Mark any other attribute as removed
//	logger.Debug(ctx, "settings loaded", logging.Redacted("settings"))
package logging
