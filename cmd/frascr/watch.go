package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/frascr/frascr/config"
)

// settle is how long the configuration must stay quiet before a re-render.
// Editors often write a file in several steps.
const settle = 250 * time.Millisecond

// watch renders once, then again after every change to a configuration
// file, until ctx is done. Render failures are reported and the watch
// continues.
func watch(ctx context.Context, cmd *cobra.Command, f *renderFlags, args []string) error {
	if len(f.files) == 0 {
		return fmt.Errorf("%w: --watch needs at least one -f file", config.ErrConfig)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	// watch directories, not files, so replace-by-rename saves are seen
	targets := make(map[string]bool, len(f.files))
	for _, p := range f.files {
		abs, err := absPath(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	report := func() {
		if err := renderOnce(ctx, cmd, f, args); err != nil && ctx.Err() == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "frascr: %s\n", describe(err))
		}
	}
	report()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(settle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "frascr: watch: %v\n", err)
		case <-timer.C:
			report()
		}
	}
}

func absPath(p string) (string, error) {
	p, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(p)
}
