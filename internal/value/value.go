// Package value defines the host-agnostic tree returned by lookups.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInteger:  "integer",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Field is one named entry of a mapping.
type Field struct {
	Name  string
	Value Value
}

// Value is a tagged variant: null, bool, integer, float, string, an ordered
// sequence of values or an ordered mapping of named fields. The zero Value is
// null.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	items  []Value
	fields []Field
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps i.
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float wraps f.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Seq builds a sequence. A nil or empty argument list yields an empty
// sequence, never null.
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Map builds a mapping whose iteration order is the argument order.
func Map(fields ...Field) Value {
	if fields == nil {
		fields = []Field{}
	}
	return Value{kind: KindMapping, fields: fields}
}

// F is shorthand for constructing a Field.
func F(name string, v Value) Field { return Field{Name: name, Value: v} }

// Names converts a locale → name table into a mapping ordered by locale code.
// A nil table is null; an empty one is an empty mapping.
func Names(names map[string]string) Value {
	if names == nil {
		return Null()
	}
	locales := make([]string, 0, len(names))
	for locale := range names {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	fields := make([]Field, 0, len(locales))
	for _, locale := range locales {
		fields = append(fields, F(locale, String(names[locale])))
	}
	return Map(fields...)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; 0 for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload; 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload; "" for other kinds.
func (v Value) Str() string { return v.s }

// Items returns the elements of a sequence, or nil for other kinds.
func (v Value) Items() []Value { return v.items }

// Fields returns the fields of a mapping in order, or nil for other kinds.
func (v Value) Fields() []Field { return v.fields }

// Keys returns the field names of a mapping in order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		keys = append(keys, f.Name)
	}
	return keys
}

// Get returns the named field of a mapping.
func (v Value) Get(name string) (Value, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Null(), false
}

// Path follows a chain of field names through nested mappings.
func (v Value) Path(names ...string) (Value, bool) {
	cur := v
	for _, name := range names {
		next, ok := cur.Get(name)
		if !ok {
			return Null(), false
		}
		cur = next
	}
	return cur, true
}

// Interface converts v into plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Mapping order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.fields))
		for _, f := range v.fields {
			out[f.Name] = f.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON renders v as JSON, keeping mapping fields in their order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := f.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		raw, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Errorf("marshal %s value: %w", v.kind, err)
		}
		buf.Write(raw)
	}
	return nil
}
