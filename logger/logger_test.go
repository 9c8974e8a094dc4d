package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func printers(buf *bytes.Buffer) map[string]Logger {
	return map[string]Logger{
		"std":     NewStdLoggerWithOptions(StdOptions{Output: buf}),
		"slog":    NewSlogLoggerWithOptions(SlogOptions{Output: buf}),
		"zerolog": NewZerologLoggerWithOptions(ZerologOptions{Output: buf}),
		"zap":     NewZapLoggerWithOptions(ZapOptions{Output: buf}),
	}
}

func TestLogger_Print(t *testing.T) {
	tests := []struct {
		name  string
		level string
		msg   string
		want  string
	}{
		{
			name:  "info message",
			level: "LOG",
			msg:   "This is an info message.",
			want:  "[LOG] - This is an info message.\n",
		},
		{
			name:  "custom level",
			level: "WARN",
			msg:   "No onions!",
			want:  "[WARN] - No onions!\n",
		},
		{
			name:  "empty message",
			level: "LOG",
			msg:   "",
			want:  "[LOG] - \n",
		},
		{
			name:  "quotes and brackets",
			level: "LOG",
			msg:   `it's "[quoted]"`,
			want:  "[LOG] - it's \"[quoted]\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			for name, l := range printers(&buf) {
				buf.Reset()
				l.Print(tt.level, tt.msg)
				if got := buf.String(); got != tt.want {
					t.Errorf("%s: Print() wrote %q, want %q", name, got, tt.want)
				}
			}
		})
	}
}

func TestZerologLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerWithOptions(ZerologOptions{Output: &buf, JSON: true})

	l.Print("LOG", "No onions!")

	var evt map[string]any
	if err := json.Unmarshal(buf.Bytes(), &evt); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if evt["level"] != "LOG" {
		t.Errorf("level = %v, want LOG", evt["level"])
	}
	if evt["message"] != "No onions!" {
		t.Errorf("message = %v, want %q", evt["message"], "No onions!")
	}
}

func TestSlogLogger_CustomHandler(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLoggerWithOptions(SlogOptions{
		Handler: slog.NewTextHandler(&buf, nil),
	})

	l.Print("LOG", "No onions!")

	out := buf.String()
	if !strings.Contains(out, `msg="No onions!"`) {
		t.Errorf("output %q is missing the message", out)
	}
	if !strings.Contains(out, LevelKey+"=LOG") {
		t.Errorf("output %q is missing the label", out)
	}
}

func TestLogger_ConcurrentLinesDoNotInterleave(t *testing.T) {
	const numGoroutines = 20
	const linesPerGoroutine = 25

	for name, newLogger := range map[string]func(*bytes.Buffer) Logger{
		"std":  func(b *bytes.Buffer) Logger { return NewStdLoggerWithOptions(StdOptions{Output: b}) },
		"slog": func(b *bytes.Buffer) Logger { return NewSlogLoggerWithOptions(SlogOptions{Output: b}) },
		"zap":  func(b *bytes.Buffer) Logger { return NewZapLoggerWithOptions(ZapOptions{Output: b}) },
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf)

			var wg sync.WaitGroup
			wg.Add(numGoroutines)
			for i := range numGoroutines {
				go func(workerID int) {
					defer wg.Done()
					for j := range linesPerGoroutine {
						l.Print("LOG", fmt.Sprintf("worker %d line %d", workerID, j))
					}
				}(i)
			}
			wg.Wait()

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != numGoroutines*linesPerGoroutine {
				t.Fatalf("got %d lines, want %d", len(lines), numGoroutines*linesPerGoroutine)
			}
			for _, line := range lines {
				if !strings.HasPrefix(line, "[LOG] - worker ") {
					t.Errorf("malformed line %q", line)
				}
			}
		})
	}
}
