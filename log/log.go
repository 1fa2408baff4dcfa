package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	diagLog  zerolog.Logger
	logMu    sync.Mutex
	logReady bool
	pid      int
)

// Init starts diagnostic logging to w. Stdout is left to the command's own
// console lines, so callers normally pass os.Stderr.
func Init(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	pid = os.Getpid()

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	diagLog = zerolog.Nop()
	logReady = false
}

func Info(msg string) {
	logMu.Lock()
	defer logMu.Unlock()
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warn(msg string) {
	logMu.Lock()
	defer logMu.Unlock()
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func IconWritten(path string, size, bytes int, elapsed time.Duration) {
	logMu.Lock()
	defer logMu.Unlock()
	if !logReady {
		return
	}
	diagLog.Info().
		Str("file", path).
		Int("size", size).
		Int("bytes", bytes).
		Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Msg("icon_written")
}

func CheckFailed(path, probe string, err error) {
	logMu.Lock()
	defer logMu.Unlock()
	if !logReady {
		return
	}
	diagLog.Warn().
		Str("file", path).
		Str("probe", probe).
		Err(err).
		Msg("check_failed")
}
