// Package app binds record stores to their default data files, loading them
// on start and persisting after every change.
package app

import (
	"fmt"
	"log/slog"

	"github.com/tiwariParth/go-records-cli/internal/storage"
	"github.com/tiwariParth/go-records-cli/internal/storage/file"
)

// openIfExists loads path into store when the file is present. A missing
// data file simply means nothing has been saved yet.
func openIfExists(store storage.RecordStore, path string, logger *slog.Logger) error {
	if !file.Exists(path) {
		logger.Debug("data file not created yet", "path", path)
		return nil
	}
	if err := store.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func persist(store storage.RecordStore, path string) error {
	if err := store.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// importFile replaces store with the contents of path and persists the result
// to dataFile, overwriting whatever dataFile held.
func importFile(store storage.RecordStore, path, dataFile string, logger *slog.Logger) error {
	if err := store.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if file.Exists(dataFile) {
		logger.Warn("overwriting data file", "path", dataFile, "source", path, "count", store.Len())
	}
	return persist(store, dataFile)
}
