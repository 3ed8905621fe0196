package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with portal-specific helpers
type Logger struct {
	*logrus.Logger
}

// New creates a new logger instance
func New(level string) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	log.SetOutput(os.Stdout)

	return &Logger{Logger: log}
}

// WithFields creates a new logger entry with the specified fields
func (l *Logger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.Logger.WithFields(fields)
}

// WithField creates a new logger entry with a single field
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithError creates a new logger entry with an error field
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithError(err)
}

// WithComponent creates a new logger entry with component name field
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.Logger.WithField("component", component)
}

// WithSession creates a new logger entry with session ID field
func (l *Logger) WithSession(sessionID string) *logrus.Entry {
	return l.Logger.WithField("session_id", sessionID)
}

// NavigationEvent logs a screen transition with structured fields
func (l *Logger) NavigationEvent(from, to, trigger string) {
	l.Logger.WithFields(logrus.Fields{
		"navigation": true,
		"from":       from,
		"to":         to,
		"trigger":    trigger,
	}).Debug("Screen transition")
}

// RefusedOperation logs a non-fatal refused operation
func (l *Logger) RefusedOperation(operation, code string, details map[string]interface{}) {
	l.Logger.WithFields(logrus.Fields{
		"refused":   true,
		"operation": operation,
		"code":      code,
		"details":   details,
	}).Warn("Operation refused")
}
