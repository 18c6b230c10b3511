package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

type ZeroLogger struct {
	log zerolog.Logger
}

// New builds a console logger for local environments and a JSON logger otherwise.
// Args are alternating key/value pairs.
func New(environment, level string) Logger {
	var out io.Writer = os.Stdout
	if environment == "local" || environment == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		zerolog.TimeFieldFormat = time.RFC3339
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return &ZeroLogger{log: zerolog.New(out).Level(lvl).With().Timestamp().Logger()}
}

func NewWithWriter(w io.Writer) Logger {
	return &ZeroLogger{log: zerolog.New(w).With().Timestamp().Logger()}
}

func Nop() Logger {
	return &ZeroLogger{log: zerolog.Nop()}
}

func (l *ZeroLogger) Info(msg string, args ...any) {
	write(l.log.Info(), msg, args)
}

func (l *ZeroLogger) Warn(msg string, args ...any) {
	write(l.log.Warn(), msg, args)
}

func (l *ZeroLogger) Error(msg string, args ...any) {
	write(l.log.Error(), msg, args)
}

func (l *ZeroLogger) Debug(msg string, args ...any) {
	write(l.log.Debug(), msg, args)
}

func write(e *zerolog.Event, msg string, args []any) {
	if len(args) > 0 {
		if len(args)%2 != 0 {
			args = append(args, "(missing)")
		}
		e = e.Fields(args)
	}
	e.Msg(msg)
}
