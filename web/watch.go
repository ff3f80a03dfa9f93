package web

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/hypertodo/hypertodo/log"
)

// Watch reloads the template set whenever a file in the override
// directory changes. It blocks until ctx is cancelled, so run it in
// its own goroutine. A no-op when no override directory is configured
// or it does not exist.
func (r *Renderer) Watch(ctx context.Context) error {
	if r.cfg.TemplateDir == "" {
		return nil
	}
	if _, err := os.Stat(r.cfg.TemplateDir); err != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(r.cfg.TemplateDir); err != nil {
		return err
	}

	log.Info().Str("dir", r.cfg.TemplateDir).Msg("watching templates")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := r.Reload(); err != nil {
				// Keep serving the last good set
				log.Error().Err(err).Str("file", event.Name).Msg("template reload failed")
				continue
			}
			log.Info().Str("file", event.Name).Msg("templates reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("template watcher error")
		}
	}
}
