package synadm

import (
	"log/slog"
	"strings"
)

// commandLogWriter is an io.Writer that forwards the stderr of an admin
// command to the application's slog.Logger at debug level, tagged with
// the subcommand that produced it.
type commandLogWriter struct {
	logger  *slog.Logger
	command string
}

func (w *commandLogWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	msg := strings.TrimRight(string(p), "\r\n")
	if msg != "" {
		w.logger.Debug(msg, "command", w.command, "stream", "stderr")
	}

	return len(p), nil
}
