package stream

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig calls fn with the reloaded config each time the file at path
// is written or replaced, until ctx is done. Files that fail to load are
// logged and skipped.
func WatchConfig(ctx context.Context, path string, fn func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory so that editors which replace the file by
	// renaming over it are seen.
	err = watcher.Add(filepath.Dir(path))
	if err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			c, err := LoadConfig(path)
			if err != nil {
				log.Printf("reload config: %v", err)
				continue
			}
			log.Printf("reloaded config from %s", path)
			fn(c)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch config: %v", err)
		}
	}
}
