package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// Setup installs the process-wide logger.
//
// Pigment stays silent unless debug logging was asked for: the default
// logger discards everything, so library code can log unconditionally.
// With debug enabled, a Debug-level text handler writes to a rotating file
// at path. The returned closer is nil when logging is disabled.
func Setup(debug bool, path string) (io.Closer, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil, nil
	}

	out, err := NewRotatingFile(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return out, nil
}
