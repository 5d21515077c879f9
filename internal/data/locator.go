package data

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	primaryName  = "maxminddb.mmdb"
	fallbackName = "maxminddb.dat"
)

// Locator finds and opens the database below an install root.
type Locator struct {
	Root string
	// Open defaults to OpenMmdb.
	Open OpenFunc
}

// NewLocator returns a Locator for root that opens files with OpenMmdb.
func NewLocator(root string) *Locator {
	return &Locator{Root: root, Open: OpenMmdb}
}

// Candidates returns the database paths in probe order.
func (l *Locator) Candidates() []string {
	return []string{
		filepath.Join(l.Root, primaryName),
		filepath.Join(l.Root, "data", fallbackName),
	}
}

// Locate opens the first candidate that exists. It returns a
// *NotInstalledError when none exists and a *CorruptError when the file is
// present but cannot be opened.
func (l *Locator) Locate() (*Handle, error) {
	candidates := l.Candidates()
	for _, path := range candidates {
		if !exists(path) {
			continue
		}

		open := l.Open
		if open == nil {
			open = OpenMmdb
		}
		db, err := open(path)
		if err != nil {
			slog.Warn("failed to open MMDB", "path", path, "error", err)
			return nil, &CorruptError{Path: path, Err: err}
		}

		slog.Info("MMDB loaded", "path", path)
		return NewHandle(db, path), nil
	}
	return nil, &NotInstalledError{Candidates: candidates}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
