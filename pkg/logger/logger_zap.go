package logger

import (
	"context"
	"io"
	"os"

	"github.com/golangid/attendo/pkg/shared"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// InitZap logger with default writer to stdout
func InitZap(opts ...OptionFunc) {
	opt := Option{
		MultiWriter: []io.Writer{os.Stdout},
		Level:       zapcore.DebugLevel,
	}

	for _, o := range opts {
		o(&opt)
	}

	encCfg := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey: "message",

		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	var coreOpt []zapcore.Core
	for _, w := range opt.MultiWriter {
		coreOpt = append(coreOpt, zapcore.NewCore(encCfg, zapcore.AddSync(w), opt.Level))
	}
	core := zapcore.NewTee(coreOpt...)

	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()
}

// Sync flush buffered log entries, called before process exit
func Sync() {
	if logger != nil {
		logger.Sync()
	}
}

// Log func
func Log(level zapcore.Level, message string, context string, scope string) {
	if logger == nil {
		return
	}
	entry := logger.With(
		zap.String("context", context),
		zap.String("scope", scope),
	)

	setEntryType(level, entry, message)
}

// LogCtx log with request id taken from context
func LogCtx(ctx context.Context, level zapcore.Level, message string, scope string) {
	if logger == nil {
		return
	}
	entry := logger.With(zap.String("scope", scope))
	if requestID := shared.GetRequestIDFromContext(ctx); requestID != "" {
		entry = entry.With(zap.String("request_id", requestID))
	}

	setEntryType(level, entry, message)
}

// LogWithField func
func LogWithField(level zapcore.Level, fields map[string]interface{}) {
	if logger == nil {
		return
	}

	var message interface{}
	var args []interface{}
	for k, v := range fields {
		if k == "message" {
			message = v
			continue
		}
		args = append(args, []interface{}{k, v}...)
	}
	entry := logger.With(args...)
	setEntryType(level, entry, message)
}

// LogE error
func LogE(message string) {
	setEntryType(zapcore.ErrorLevel, logger, message)
}

// LogI info
func LogI(message string) {
	setEntryType(zapcore.InfoLevel, logger, message)
}

// LogIfError log error if not nil
func LogIfError(err error) {
	if err != nil {
		setEntryType(zapcore.ErrorLevel, logger, err.Error())
	}
}

func setEntryType(level zapcore.Level, entry *zap.SugaredLogger, msg interface{}) {

	switch level {
	case zapcore.DebugLevel:
		entry.Debug(msg)
	case zapcore.InfoLevel:
		entry.Info(msg)
	case zapcore.WarnLevel:
		entry.Warn(msg)
	case zapcore.ErrorLevel:
		entry.Error(msg)
	case zapcore.FatalLevel:
		entry.Fatal(msg)
	case zapcore.PanicLevel:
		entry.Panic(msg)
	}
}
