package data

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInstalled matches any *NotInstalledError via errors.Is.
var ErrNotInstalled = errors.New("maxminddb database not installed")

// NotInstalledError reports that none of the candidate database files exist.
type NotInstalledError struct {
	Candidates []string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf(
		"You didn't install the MaxMindDB database! I expected to find one in %s, you can get it from here: https://maxmind.com",
		strings.Join(e.Candidates, " or "),
	)
}

func (e *NotInstalledError) Is(target error) bool {
	return target == ErrNotInstalled
}

// CorruptError reports a database file that exists but could not be opened.
// Its message is the engine's message, unchanged.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string { return e.Err.Error() }

func (e *CorruptError) Unwrap() error { return e.Err }

// LookupError wraps an engine failure during a lookup on an open database.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string { return e.Err.Error() }

func (e *LookupError) Unwrap() error { return e.Err }

// IsDatabaseError reports whether err originates from opening or querying the
// database, as opposed to bad caller input.
func IsDatabaseError(err error) bool {
	var (
		notInstalled *NotInstalledError
		corrupt      *CorruptError
		lookup       *LookupError
	)
	return errors.As(err, &notInstalled) || errors.As(err, &corrupt) || errors.As(err, &lookup)
}
