package debug

import (
	"log/slog"
	"os"
)

// Log is the package-wide structured logger. It strips the timestamp and
// the routine INFO label so tracing output reads as plain lines when
// piped alongside the command's own stdout.
var Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
			return slog.Attr{}
		}
		return a
	},
}))
