package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mistenkt/Detox/pkg/console"
	"github.com/mistenkt/Detox/pkg/constants"
	"github.com/mistenkt/Detox/pkg/loader"
)

// WatchConfiguration re-validates the configuration file whenever it
// changes on disk. An empty path locates a config in the working
// directory first.
func WatchConfiguration(path string, opts ValidateOptions) error {
	if path == "" {
		located, err := loader.Locate(".")
		if err != nil {
			return fmt.Errorf("no configuration file found to watch in the current directory")
		}
		path = located
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("specified configuration file does not exist: %s", path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save
	// and a direct file watch dies with the old inode.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching %s for changes...", console.ToRelativePath(path))))
	fmt.Println(console.FormatInfoMessage("Press Ctrl+C to stop."))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Debouncing setup
	const debounceDelay = 300 * time.Millisecond
	var debounceTimer *time.Timer

	revalidate := func() {
		if err := validateOne(path, opts); err != nil {
			fmt.Println(console.FormatWarningMessage("Validation failed; waiting for changes..."))
		}
	}
	revalidate()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if !isConfigFile(event.Name, path) {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove):
				fmt.Println(console.FormatWarningMessage(fmt.Sprintf("%s was removed", console.ToRelativePath(event.Name))))
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, revalidate)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			fmt.Println(console.FormatWarningMessage(fmt.Sprintf("Watcher error: %v", err)))

		case <-sigChan:
			fmt.Println()
			fmt.Println(console.FormatInfoMessage("Stopped watching."))
			return nil
		}
	}
}

// isConfigFile reports whether a watcher event concerns the watched
// file or any other config candidate in the same directory.
func isConfigFile(eventPath, watchedPath string) bool {
	if eventPath == watchedPath {
		return true
	}
	base := filepath.Base(eventPath)
	for _, name := range constants.ConfigFileNames {
		if base == name {
			return true
		}
	}
	return base == constants.ManifestFileName
}
