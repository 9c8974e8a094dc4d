package logger

import (
	"io"
	"os"
)

// Logger writes one console line per call, formatted as "[level] - msg".
type Logger interface {
	Print(level, msg string)
}

func outputOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
