package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/frascr/frascr"
)

// setupLogging installs a text logger at the level for verbose, writing to
// path or standard error. The returned function closes the log file.
func setupLogging(verbose int, path string, stderr io.Writer) (func() error, error) {
	w := stderr
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w, closer = f, f.Close
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: frascr.VerbosityLevel(verbose)})
	frascr.SetLogger(slog.New(h))
	return closer, nil
}
