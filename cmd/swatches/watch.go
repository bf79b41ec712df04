package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/BeatGlow/swatch"
	"github.com/BeatGlow/swatch/palette"
)

// watch renders the codes in file, and renders them again after every change
// to file until ctx is done. Failed renders are logged and don't stop watching.
func watch(ctx context.Context, file string, config *swatch.Config, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch the directory.
	if err = watcher.Add(filepath.Dir(file)); err != nil {
		return err
	}

	c := *config
	render := func() {
		codes, err := palette.ReadFile(file)
		if err != nil {
			logger.Printf("warning: %v", err)
			return
		}
		if err = swatch.Render(codes, &c); err != nil {
			logger.Printf("error: %v", err)
			return
		}
		logger.Printf("rendered %d swatches to %s", len(codes), c.Output)

		// Only open a viewer once.
		c.Display = false
	}
	render()

	target := filepath.Clean(file)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// A rename moves the file away, render warns until it is back.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				render()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("warning: file watcher: %v", err)
		}
	}
}
