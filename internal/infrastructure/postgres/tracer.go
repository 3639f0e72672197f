package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"
)

// NewQueryTracer logs every pgx query through logger. The trace level follows
// the logger level so debug builds see statements and args.
func NewQueryTracer(logger *logrus.Logger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger:   tracelog.LoggerFunc(logrusAdapter(logger)),
		LogLevel: traceLevel(logger.GetLevel()),
	}
}

func logrusAdapter(logger *logrus.Logger) func(context.Context, tracelog.LogLevel, string, map[string]any) {
	return func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		entry := logger.WithContext(ctx).WithFields(logrus.Fields(data)).WithField("component", "pgx")
		switch level {
		case tracelog.LogLevelTrace:
			entry.Trace(msg)
		case tracelog.LogLevelDebug:
			entry.Debug(msg)
		case tracelog.LogLevelInfo:
			entry.Info(msg)
		case tracelog.LogLevelWarn:
			entry.Warn(msg)
		case tracelog.LogLevelError:
			entry.Error(msg)
		}
	}
}

func traceLevel(l logrus.Level) tracelog.LogLevel {
	switch l {
	case logrus.TraceLevel:
		return tracelog.LogLevelTrace
	case logrus.DebugLevel:
		return tracelog.LogLevelDebug
	case logrus.InfoLevel:
		return tracelog.LogLevelInfo
	case logrus.WarnLevel:
		return tracelog.LogLevelWarn
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
