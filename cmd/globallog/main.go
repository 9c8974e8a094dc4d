package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/will-x86/globallog"
	"github.com/will-x86/globallog/config"
)

const usage = `usage: globallog [flags] <command> [args]

commands:
  demo                  replay the salat example
  print <msg>...        print each message
  record <key> <msg>... record each message under key
  get <key>             show the history of key
  keys                  list recorded keys

flags:
`

// errKeyMissing maps to exit status 1 without an extra error line.
var errKeyMissing = errors.New("key not recorded")

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Stdout, os.Args); err != nil {
		if !errors.Is(err, errKeyMissing) {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	flags := config.Flags(args[0])
	flags.SetOutput(w)
	flags.Usage = func() {
		fmt.Fprint(w, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return errors.Wrap(err, "error parsing flags")
	}

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	reg := prometheus.NewRegistry()
	log, err := globallog.Open(cfg, w, reg)
	if err != nil {
		return errors.Wrap(err, "error creating global log")
	}
	defer log.Close()

	if err := dispatch(ctx, w, log, flags.Args()); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		return writeMetrics(w, reg)
	}
	return nil
}

func dispatch(ctx context.Context, w io.Writer, log *globallog.GlobalLog, args []string) error {
	if len(args) == 0 {
		return errors.New("missing command, see --help")
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "demo":
		return demo(ctx, w, log)
	case "print":
		for _, msg := range args {
			log.Print(msg)
		}
		return nil
	case "record":
		if len(args) < 2 {
			return errors.New("record needs a key and at least one message")
		}
		key := args[0]
		for _, msg := range args[1:] {
			if err := log.Record(key, msg); err != nil {
				return errors.Wrapf(err, "error recording under %q", key)
			}
		}
		return nil
	case "get":
		if len(args) != 1 {
			return errors.New("get needs exactly one key")
		}
		line, err := log.Get(args[0])
		if errors.Is(err, globallog.ErrKeyNotFound) {
			fmt.Fprintf(w, "no messages recorded for %q\n", args[0])
			return errKeyMissing
		}
		if err != nil {
			return errors.Wrap(err, "error reading history")
		}
		fmt.Fprintln(w, line)
		return nil
	case "keys":
		keys, err := log.Keys()
		if err != nil {
			return errors.Wrap(err, "error listing keys")
		}
		if len(keys) > 0 {
			fmt.Fprintln(w, strings.Join(keys, "\n"))
		}
		return nil
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
}

// demo mirrors three modules sharing one log while all tagging their
// messages with the same key.
func demo(ctx context.Context, w io.Writer, log *globallog.GlobalLog) error {
	logger1 := log.For("salat")

	logger1.Log("This is an info message.")
	if err := logger1.Message("This in an info message."); err != nil {
		return err
	}
	if err := printHistory(w, logger1); err != nil {
		return err
	}

	logger2 := log.For("salat")

	logger2.Log("This is an error message.")
	if err := logger2.Message("This is an error message."); err != nil {
		return err
	}
	logger1.Log("This message also shows as an error.")
	if err := logger1.Message("This message also shows as an error."); err != nil {
		return err
	}
	if err := printHistory(w, logger2); err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	myLogger := log.For("salat")
	if err := myLogger.Message("No onions!"); err != nil {
		return err
	}
	return printHistory(w, myLogger)
}

func printHistory(w io.Writer, h *globallog.Handle) error {
	line, err := h.History()
	if err != nil {
		return errors.Wrap(err, "error reading history")
	}
	fmt.Fprintln(w, line)
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "error gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "error writing metrics")
		}
	}
	return nil
}
