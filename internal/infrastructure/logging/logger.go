package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. format is "console" or
// "json"; level is one of debug, info, warn, error.
func Setup(level, format string) zerolog.Logger {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var w io.Writer = os.Stderr
	if format != "json" {
		w = ConsoleWriter(os.Stderr)
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger
}

// ConsoleWriter returns a human readable zerolog writer, colored only when
// f is a terminal.
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isatty.IsTerminal(f.Fd())

	w := zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.DateTime}
	if !noColor {
		w.FormatPrepare = func(m map[string]any) error {
			// one-line request logs
			if sys, ok := m["sys"]; ok && sys == "http" {
				m["message"] = fmt.Sprintf("%v %-5v %v", m["status"], m["method"], m["path"])
				delete(m, "sys")
				delete(m, "status")
				delete(m, "method")
				delete(m, "path")
			}
			return nil
		}
	}
	return w
}
