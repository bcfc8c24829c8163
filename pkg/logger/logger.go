package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Development gets a console writer and
// debug level; everything else logs JSON at info level.
func Init(environment string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if environment == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
		level = zerolog.DebugLevel
	}

	log = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// apply attaches variadic arguments to an event. Arguments are read as
// alternating key/value pairs; bare errors become the error field.
func apply(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			ev = ev.Err(v)
		case string:
			if i+1 < len(args) {
				ev = ev.Interface(v, args[i+1])
				i++
			} else {
				ev = ev.Str("detail", v)
			}
		default:
			ev = ev.Str(fmt.Sprintf("arg%d", i), fmt.Sprint(v))
		}
	}
	return ev
}

func Debug(msg string, args ...any) {
	apply(log.Debug(), args).Msg(msg)
}

func Info(msg string, args ...any) {
	apply(log.Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	apply(log.Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	apply(log.Error(), args).Msg(msg)
}

func Fatal(msg string, args ...any) {
	apply(log.Fatal(), args).Msg(msg)
}
