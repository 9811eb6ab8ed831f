package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	mu           sync.Mutex
)

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		defaultLevel := "info"
		if os.Getenv("DEBUG") == "true" {
			defaultLevel = "debug"
		} else if os.Getenv("LOG_LEVEL") != "" {
			defaultLevel = os.Getenv("LOG_LEVEL")
		}

		globalLogger = New(Config{
			Level:  defaultLevel,
			Format: "json",
			Output: "stderr",
		})
	}
	return globalLogger
}

// SetLogger replaces the global logger instance
func SetLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
	SetGlobalLogger(logger)
}

// Info logs an info message
func Info(msg string) {
	GetLogger().Info(msg)
}

// Error logs an error message
func Error(msg string) {
	GetLogger().Error(msg)
}

// WithField adds a field to the logger
func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

// WithFields adds multiple fields to the logger
func WithFields(fields map[string]interface{}) *Logger {
	return GetLogger().WithFields(fields)
}

// WithError adds an error to the logger
func WithError(err error) *Logger {
	return GetLogger().WithError(err)
}
