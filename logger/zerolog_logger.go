package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type ZerologLogger struct {
	logger zerolog.Logger
}

type ZerologOptions struct {
	Output io.Writer
	// JSON writes raw zerolog events instead of console lines.
	JSON bool
}

func NewZerologLogger() Logger {
	return NewZerologLoggerWithOptions(ZerologOptions{})
}

func NewZerologLoggerWithOptions(opts ZerologOptions) Logger {
	out := zerolog.SyncWriter(outputOrStdout(opts.Output))

	if opts.JSON {
		return &ZerologLogger{logger: zerolog.New(out)}
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			return fmt.Sprintf("[%v]", i)
		},
		FormatMessage: func(i any) string {
			// zerolog omits the message field for empty messages
			if i == nil {
				return "- "
			}
			return fmt.Sprintf("- %v", i)
		},
	}

	return &ZerologLogger{
		logger: zerolog.New(console),
	}
}

func (l *ZerologLogger) Print(level, msg string) {
	l.logger.Log().Str(zerolog.LevelFieldName, level).Msg(msg)
}
