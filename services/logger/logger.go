package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface trên zerolog
type DefaultLogger struct {
	zl zerolog.Logger
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	zlLevel := zerolog.DebugLevel
	switch level {
	case InfoLevel:
		zlLevel = zerolog.InfoLevel
	case ErrorLevel:
		zlLevel = zerolog.ErrorLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(zlLevel).
		With().Timestamp().Logger()

	return &DefaultLogger{zl: zl}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}
