package data

import (
	"sync/atomic"

	"github.com/oschwald/maxminddb-golang"
)

// OpenFunc opens the database file at path.
type OpenFunc func(path string) (Database, error)

// OpenMmdb opens path as a memory-mapped MaxMind DB. Lookups never touch the
// disk again after it returns.
func OpenMmdb(path string) (Database, error) {
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Handle is a reference-counted, immutable view of an opened database. The
// creator holds the first reference; the database is closed when the last
// reference is released.
type Handle struct {
	db   Database
	path string
	refs atomic.Int64
}

// NewHandle wraps db, taking ownership of it.
func NewHandle(db Database, path string) *Handle {
	h := &Handle{db: db, path: path}
	h.refs.Store(1)
	return h
}

// DB returns the database. Only valid while a reference is held.
func (h *Handle) DB() Database { return h.db }

// Path returns the file the handle was opened from.
func (h *Handle) Path() string { return h.path }

// Acquire takes an additional reference.
func (h *Handle) Acquire() *Handle {
	h.refs.Add(1)
	return h
}

// Release drops one reference, closing the database on the last one.
func (h *Handle) Release() error {
	switch n := h.refs.Add(-1); {
	case n == 0:
		return h.db.Close()
	case n < 0:
		panic("data: handle released more times than acquired")
	}
	return nil
}
