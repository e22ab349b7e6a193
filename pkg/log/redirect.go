package log

import (
	stdlog "log"
	"strings"
)

// RedirectStdLog routes the standard library's global logger through l at
// info level. Pebble writes background event output through stdlib log.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{l: l})
}

type stdLogWriter struct{ l Logger }

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.l.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
