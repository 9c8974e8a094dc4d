package logger

import (
	"fmt"
	"io"
	"sync"
)

type StdLogger struct {
	out io.Writer
	mu  sync.Mutex
}

type StdOptions struct {
	Output io.Writer
}

func NewStdLogger() Logger {
	return NewStdLoggerWithOptions(StdOptions{})
}

func NewStdLoggerWithOptions(opts StdOptions) Logger {
	return &StdLogger{
		out: outputOrStdout(opts.Output),
	}
}

func (l *StdLogger) Print(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[%s] - %s\n", level, msg)
}
