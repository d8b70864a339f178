package watcher

import "context"

// FileWatcher monitors one file for changes with debouncing.
type FileWatcher interface {
	// Start begins watching, calling callback once per burst of changes.
	Start(ctx context.Context, callback func(path string)) error

	// Stop stops the file watcher and cleans up resources. Safe to call more than once.
	Stop() error
}
