package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a key-value pair attached to every log line written with the context.
type Field struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields adds a set of observability fields to the context.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// GetRealClientIP prefers the proxy viewer address and falls back to gin's ClientIP.
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if colonIdx := strings.LastIndex(viewerAddr, ":"); colonIdx > 0 {
			return viewerAddr[:colonIdx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// Middleware adds request-scoped observability fields and logs every processed request.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(ctx, "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(500)
			}

			if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
				return
			}
			l.Info(WithFields(ctx,
				Field{"status", c.Writer.Status()},
				Field{"latency_ns", time.Since(start).Nanoseconds()},
			), "Request processed")
		}()
		c.Next()
	}
}

// Logger represents a custom logger with Zap integration.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a production logger.
func NewLogger() *Logger {
	zapLogger, _ := zap.NewProduction()
	return NewLoggerFromZap(zapLogger)
}

// NewLoggerFromZap wraps an existing zap logger, mostly so tests can observe output.
func NewLoggerFromZap(zapLogger *zap.Logger) *Logger {
	zapLogger = zapLogger.WithOptions(zap.AddCallerSkip(1))
	zapLogger = zapLogger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{zapLogger: zapLogger}
}

func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	zapFields := make([]zapcore.Field, len(fields))

	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return l.zapLogger.With(zapFields...)
}

// Info logs an informational message with context-based fields.
func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

// InfoWithError logs an informational message with context and an error.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Info(msg, zap.Error(err))
}

// Error logs an error message with context-based fields.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

// Warn logs a warning message with context-based fields.
func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

// Debug logs a debug message with context-based fields.
func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

// Fatal logs a fatal message with context-based fields.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
