package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config represents the logger config.
type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger replaces the package-level logger with one built
// from config. Safe to call more than once; the last call wins.
func InitGlobalLogger(cfg *Config) {
	var w = zerolog.New(os.Stderr)
	if cfg.Pretty {
		w = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log = w.Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug(msg string, keyvals ...any) {
	emit(log.Debug(), msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	emit(log.Info(), msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	emit(log.Warn(), msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	emit(log.Error(), msg, keyvals)
}

func emit(e *zerolog.Event, msg string, keyvals []any) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keyvals[i+1])
	}
	e.Msg(msg)
}
