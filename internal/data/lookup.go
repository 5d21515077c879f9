package data

import (
	"net"

	"github.com/TomasB/geolookup/internal/value"
)

// Database is the read-only query surface of an opened MaxMind DB file.
// *maxminddb.Reader satisfies it.
type Database interface {
	// Lookup decodes the record for ip into result. An address without a
	// matching entry leaves result untouched and returns nil.
	Lookup(ip net.IP, result any) error

	// Close releases the underlying mapping. No lookup may run afterwards.
	Close() error
}

// Geolocator is the host-facing surface of one execution context.
type Geolocator interface {
	// Query looks up ip for the record type with the given numeric code.
	Query(ip string, code int64) (value.Value, error)

	// Country returns the best country name for locale. The bool reports
	// whether any name was available.
	Country(ip, locale string) (string, bool, error)

	// Refresh reopens the database, replacing the current state.
	Refresh() error
}
