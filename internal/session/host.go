package session

import (
	"errors"
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/record"
	"github.com/TomasB/geolookup/internal/value"
)

var errClosed = errors.New("session closed")

var _ data.Geolocator = (*Session)(nil)

// Query parses ip and the record type code, then performs the lookup.
func (s *Session) Query(ip string, code int64) (value.Value, error) {
	addr, err := record.ParseAddress(ip)
	if err != nil {
		return value.Null(), err
	}
	t, err := record.ParseType(code)
	if err != nil {
		return value.Null(), err
	}
	return s.Lookup(addr, t)
}

// Country returns the country name of ip in locale, falling back through
// "en", "en-US" and the first available locale. An empty locale means "en".
// The bool is false when the database has no country name for ip.
func (s *Session) Country(ip, locale string) (string, bool, error) {
	addr, err := record.ParseAddress(ip)
	if err != nil {
		return "", false, err
	}
	if locale == "" {
		locale = record.DefaultLocale
	}

	h, err := s.Current()
	if err != nil {
		return "", false, err
	}
	defer h.Release()

	var rec geoip2.Country
	if err := h.DB().Lookup(net.IP(addr.AsSlice()), &rec); err != nil {
		return "", false, &data.LookupError{Err: err}
	}

	name, ok := record.BestName(rec.Country.Names, locale)
	return name, ok, nil
}
