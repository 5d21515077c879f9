// Package session owns the database state of one execution context.
//
// A Session opens its database lazily on first use and caches the outcome,
// success or failure, until Refresh is called. Sessions never share state;
// a host that runs several independent workers gives each its own Session.
package session

import (
	"log/slog"
	"net"
	"net/netip"
	"sync"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/record"
	"github.com/TomasB/geolookup/internal/value"
)

// Opener produces a fresh handle or a database error.
type Opener interface {
	Locate() (*data.Handle, error)
}

// state is Ready when handle is set and Failed when err is set.
type state struct {
	handle *data.Handle
	err    error
}

// Session is safe for concurrent use. Lookups hold a reference to the handle
// they started with, so a concurrent Refresh never closes a database that is
// still being read.
type Session struct {
	opener Opener

	mu sync.RWMutex
	st *state
}

// New returns a Session that opens databases through opener. Nothing is
// opened until the first call that needs the database.
func New(opener Opener) *Session {
	return &Session{opener: opener}
}

func (s *Session) open() *state {
	h, err := s.opener.Locate()
	if err != nil {
		return &state{err: err}
	}
	return &state{handle: h}
}

// Current returns a referenced handle for this session, opening the database
// on first use. The caller must Release the handle when done. A cached
// failure is returned as is until Refresh succeeds.
func (s *Session) Current() (*data.Handle, error) {
	s.mu.RLock()
	st := s.st
	if st != nil {
		defer s.mu.RUnlock()
		return st.acquire()
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st == nil {
		s.st = s.open()
		if s.st.err != nil {
			slog.Warn("database unavailable", "error", s.st.err)
		}
	}
	return s.st.acquire()
}

func (st *state) acquire() (*data.Handle, error) {
	if st.err != nil {
		return nil, st.err
	}
	return st.handle.Acquire(), nil
}

// Refresh reopens the database and replaces the session state with the
// outcome. On failure the session is left Failed, even if it was Ready
// before, and the error is returned.
func (s *Session) Refresh() error {
	next := s.open()

	s.mu.Lock()
	prev := s.st
	s.st = next
	s.mu.Unlock()

	if prev != nil && prev.handle != nil {
		if err := prev.handle.Release(); err != nil {
			slog.Warn("failed to close previous database", "path", prev.handle.Path(), "error", err)
		}
	}

	if next.err != nil {
		slog.Warn("database refresh failed", "error", next.err)
		return next.err
	}
	slog.Info("database refreshed", "path", next.handle.Path())
	return nil
}

// Ready reports the outcome of the current state, opening the database if
// this is the first access.
func (s *Session) Ready() error {
	h, err := s.Current()
	if err != nil {
		return err
	}
	return h.Release()
}

// Lookup decodes the record of type t for addr and returns its value tree.
// An address with no entry in the database yields a record whose fields are
// all null.
func (s *Session) Lookup(addr netip.Addr, t record.Type) (value.Value, error) {
	h, err := s.Current()
	if err != nil {
		return value.Null(), err
	}
	defer h.Release()

	v, err := t.Lookup()(h.DB(), net.IP(addr.AsSlice()))
	if err != nil {
		return value.Null(), &data.LookupError{Err: err}
	}
	return v, nil
}

// Close drops the session's reference to its database. In-flight lookups
// keep theirs. The session must not be used afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	prev := s.st
	s.st = &state{err: errClosed}
	s.mu.Unlock()

	if prev != nil && prev.handle != nil {
		return prev.handle.Release()
	}
	return nil
}
