package swc

import (
	"github.com/rs/zerolog"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. It has the same shape as resty's logger, so the one value is
// shared by the SDK and the underlying HTTP client. Supply an implementation
// via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// ZerologLogger adapts a zerolog.Logger to [RequestLogger].
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger tags every entry with component=swc.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger.With().Str("component", "swc").Logger()}
}

func (l *ZerologLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l *ZerologLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *ZerologLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
