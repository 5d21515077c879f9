// Package record holds the closed set of MaxMind record types, their decoded
// models and the schema that turns each model into a value tree.
package record

import "fmt"

// Type selects the shape of a lookup. Codes are stable and contiguous from 0.
type Type int

const (
	TypeAnonymousIP Type = iota
	TypeASN
	TypeCity
	TypeConnectionType
	TypeCountry
	TypeDensityIncome
	TypeDomain
	TypeISP

	typeCount
)

// String returns the host-visible name of t.
func (t Type) String() string {
	if t.Valid() {
		return registry[t].name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Code returns the integer code exposed to hosts.
func (t Type) Code() int64 { return int64(t) }

// Valid reports whether t is a member of the closed enumeration.
func (t Type) Valid() bool { return t >= 0 && t < typeCount }

// Info pairs a record type name with its code.
type Info struct {
	Name string `json:"name"`
	Code int64  `json:"code"`
}

// Types lists every record type in code order.
func Types() []Info {
	out := make([]Info, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, Info{Name: t.String(), Code: t.Code()})
	}
	return out
}
