package record

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseErrorKind classifies bad caller input.
type ParseErrorKind int

const (
	InvalidAddress ParseErrorKind = iota
	UnknownRecordType
)

// ParseError reports caller input that can never succeed as given.
type ParseError struct {
	Kind   ParseErrorKind
	Input  string
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidAddress:
		return "Invalid IP address: " + e.Detail
	default:
		return "Unknown or invalid GeoIP record type: " + e.Input
	}
}

// ParseAddress parses an IPv4 or IPv6 address. Zoned addresses are rejected.
func ParseAddress(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, &ParseError{Kind: InvalidAddress, Input: s, Detail: err.Error()}
	}
	if addr.Zone() != "" {
		return netip.Addr{}, &ParseError{
			Kind:   InvalidAddress,
			Input:  s,
			Detail: fmt.Sprintf("ParseAddr(%q): zones are not supported", s),
		}
	}
	return addr, nil
}

// ParseType validates a numeric record type code.
func ParseType(code int64) (Type, error) {
	if code < 0 || code >= int64(typeCount) {
		return 0, &ParseError{Kind: UnknownRecordType, Input: fmt.Sprint(code)}
	}
	return Type(code), nil
}

// ParseTypeName accepts either a record type name (case-insensitive) or its
// decimal code.
func ParseTypeName(s string) (Type, error) {
	for t := Type(0); t < typeCount; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	if code, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ParseType(code)
	}
	return 0, &ParseError{Kind: UnknownRecordType, Input: s}
}
