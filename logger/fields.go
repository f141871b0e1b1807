package logger

import (
	"go.uber.org/zap"
)

// Standard field names for structured logging.
const (
	FieldURL        = "url"
	FieldPath       = "path"
	FieldFile       = "file"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"

	FieldModule   = "module"
	FieldModel    = "model"
	FieldProperty = "property"
	FieldCount    = "count"
)

// ComponentLogger returns a named logger for a specific component.
//
//	type Fetcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewFetcher() *Fetcher {
//	    return &Fetcher{logger: logger.ComponentLogger("fetch")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
