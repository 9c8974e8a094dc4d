package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	logger *zap.Logger
}

type ZapOptions struct {
	Output io.Writer
}

func NewZapLogger() Logger {
	return NewZapLoggerWithOptions(ZapOptions{})
}

func NewZapLoggerWithOptions(opts ZapOptions) Logger {
	// The label travels as the logger name; time, level and caller are left out.
	encoderConfig := zapcore.EncoderConfig{
		NameKey:    "logger",
		MessageKey: "msg",
		EncodeName: func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + name + "]")
		},
		ConsoleSeparator: " - ",
		LineEnding:       zapcore.DefaultLineEnding,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(outputOrStdout(opts.Output))),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)

	return &ZapLogger{
		logger: zap.New(core),
	}
}

func (l *ZapLogger) Print(level, msg string) {
	l.logger.Named(level).Info(msg)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
