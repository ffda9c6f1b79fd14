// Package diag provides the process-wide structured logger for
// congen's command-line tools.
package diag

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger
var baseLogger *zap.Logger

// Init initializes the package-level logger. In debug mode it uses
// zap's human-readable development encoder; otherwise JSON production
// logging.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// GetSugaredLogger returns the sugared logger instance, falling back to
// a production logger if Init was never called.
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		log = baseLogger.Sugar()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func Debug(args ...interface{}) { GetSugaredLogger().Debug(args...) }

func Debugf(template string, args ...interface{}) { GetSugaredLogger().Debugf(template, args...) }

func Debugw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) { GetSugaredLogger().Info(args...) }

func Infof(template string, args ...interface{}) { GetSugaredLogger().Infof(template, args...) }

func Infow(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Warn(args ...interface{}) { GetSugaredLogger().Warn(args...) }

func Warnf(template string, args ...interface{}) { GetSugaredLogger().Warnf(template, args...) }

func Error(args ...interface{}) { GetSugaredLogger().Error(args...) }

func Errorf(template string, args ...interface{}) { GetSugaredLogger().Errorf(template, args...) }

func Fatal(args ...interface{}) {
	GetSugaredLogger().Error(args...)
	Sync()
	os.Exit(1)
}

func Fatalf(template string, args ...interface{}) {
	GetSugaredLogger().Errorf(template, args...)
	Sync()
	os.Exit(1)
}
