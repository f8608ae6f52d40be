// Package logger wraps a process-wide zap sugared logger with ctx-first
// helpers. When the context carries a request id it is attached to the entry.
package logger

import (
	"context"

	"github.com/ogzhnclk/northwind-api/internal/pkg/constants"
	"go.uber.org/zap"
)

var global *zap.SugaredLogger

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

// Init replaces the default production logger, e.g. with a development one.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func Sync() {
	_ = global.Sync()
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		return global.With("request_id", reqID)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	fromCtx(ctx).Error(args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	fromCtx(ctx).Fatal(args...)
}
