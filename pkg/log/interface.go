// Package log provides a structured logging interface for reduced-basis
// computations.
//
// This package defines a minimal, slog-compatible logging interface that allows
// for flexible implementation switching while providing structured logging
// tailored to model-order-reduction workflows. The interface is designed to
// integrate seamlessly with Go's standard log/slog package and popular logging
// libraries like zerolog, logrus, and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - RB-specific structured attributes (operations, parameter counts, errors)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "reducedbasis",
//	)
//	logger.Info("Offline training started",
//	    log.OperationKey, log.OperationTrain,
//	    log.ParamCountKey, 4,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// This interface provides the core logging methods with structured field
// support, allowing rich contextual information to be included with log
// messages. It is implementation-agnostic, enabling easy switching between
// logging backends while maintaining a consistent API.
//
// The interface supports method chaining through the With method, allowing
// creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	//
	// Example:
	//   logger.Debug("Evaluating sampled point",
	//       log.ParamCountKey, 3,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//   logger.Info("Greedy iteration complete",
	//       log.IterationKey, 12,
	//       log.ErrorBoundKey, 3.2e-5,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	//
	// Example:
	//   logger.Warn("Deprecated accessor used",
	//       "api", "Parameters.ParameterNames",
	//   )
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as the first field, stack trace
	// information may be automatically included.
	//
	// Example:
	//   logger.Error("Parameter lookup failed",
	//       err,
	//       log.ParamNameKey, "conductivity",
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	// All subsequent log messages from the returned logger automatically
	// include these fields.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given
	// level. Use it to avoid expensive attribute construction for records
	// that would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
