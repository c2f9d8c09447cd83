package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the process logger. File enables a rotated log file in
// addition to the console writer on stderr.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Console    io.Writer
}

var (
	mu     sync.RWMutex
	logger = newLogger(zerolog.ConsoleWriter{Out: os.Stderr}, zerolog.WarnLevel)
)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// Init replaces the process logger. Unknown levels fall back to warn so
// prompts are not drowned in output.
func Init(opts Options) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console}}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		})
	}

	l := newLogger(zerolog.MultiLevelWriter(writers...), parseLevel(opts.Level))

	mu.Lock()
	logger = l
	mu.Unlock()
}

// SetLoggerForTest swaps the logger, typically for one writing into a buffer.
func SetLoggerForTest(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns a copy of the current logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs msg at debug level with alternating key/value pairs.
func Debug(msg string, kv ...any) {
	l := Logger()
	withFields(l.Debug(), kv).Msg(msg)
}

// Info logs msg at info level.
func Info(msg string, kv ...any) {
	l := Logger()
	withFields(l.Info(), kv).Msg(msg)
}

// Warn logs msg at warn level.
func Warn(msg string, kv ...any) {
	l := Logger()
	withFields(l.Warn(), kv).Msg(msg)
}

// Error logs msg at error level. Error values are logged under their key.
func Error(msg string, kv ...any) {
	l := Logger()
	withFields(l.Error(), kv).Msg(msg)
}

// withFields attaches alternating key/value pairs. A trailing key without a
// value is logged under "extra".
func withFields(ev *zerolog.Event, kv []any) *zerolog.Event {
	if ev == nil {
		return nil
	}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			ev = ev.Interface("extra", kv[i])
			break
		}
		if err, ok := kv[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	return ev
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
