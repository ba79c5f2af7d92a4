// Package types defines the runtime value model used throughout the Tinker
// interpreter: number (64-bit int), text, boolean, and array, plus the
// internal null used as the no-value result of pure statements.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValueType represents the type of a Tinker runtime value.
type ValueType int

const (
	TypeNull   ValueType = iota // statement "no value" marker, never script-visible
	TypeBool                    // bool
	TypeNumber                  // int64
	TypeText                    // string
	TypeArray                   // []Value
)

// String returns the type name used in error messages.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value represents a Tinker runtime value. It uses a tagged union approach
// for efficiency; values are immutable once constructed.
type Value struct {
	typ      ValueType
	boolVal  bool
	numVal   int64
	textVal  string
	arrayVal []Value
}

// Null is the singleton no-value result. Expressions never produce it; only
// purely side-effecting statements do.
var Null = Value{typ: TypeNull}

// NewBool creates a boolean value.
func NewBool(v bool) Value {
	return Value{typ: TypeBool, boolVal: v}
}

// NewNumber creates a number value (64-bit signed integer).
func NewNumber(v int64) Value {
	return Value{typ: TypeNumber, numVal: v}
}

// NewText creates a text value.
func NewText(v string) Value {
	return Value{typ: TypeText, textVal: v}
}

// NewArray creates an array value from a slice of values. The slice is owned
// by the value afterwards; callers building derived arrays copy first.
func NewArray(v []Value) Value {
	return Value{typ: TypeArray, arrayVal: v}
}

// Type returns the value's type.
func (v Value) Type() ValueType {
	return v.typ
}

// IsNull returns true if the value is the no-value marker.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// AsBool returns the boolean value. Panics if not a boolean.
func (v Value) AsBool() bool {
	if v.typ != TypeBool {
		panic(fmt.Sprintf("AsBool called on %s value", v.typ))
	}
	return v.boolVal
}

// AsNumber returns the integer value. Panics if not a number.
func (v Value) AsNumber() int64 {
	if v.typ != TypeNumber {
		panic(fmt.Sprintf("AsNumber called on %s value", v.typ))
	}
	return v.numVal
}

// AsText returns the text value. Panics if not text.
func (v Value) AsText() string {
	if v.typ != TypeText {
		panic(fmt.Sprintf("AsText called on %s value", v.typ))
	}
	return v.textVal
}

// AsArray returns the element slice. Panics if not an array.
func (v Value) AsArray() []Value {
	if v.typ != TypeArray {
		panic(fmt.Sprintf("AsArray called on %s value", v.typ))
	}
	return v.arrayVal
}

// Equal tests deep equality between two values.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeNull:
		return true
	case TypeBool:
		return v.boolVal == other.boolVal
	case TypeNumber:
		return v.numVal == other.numVal
	case TypeText:
		return v.textVal == other.textVal
	case TypeArray:
		if len(v.arrayVal) != len(other.arrayVal) {
			return false
		}
		for i := range v.arrayVal {
			if !v.arrayVal[i].Equal(other.arrayVal[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the textual rendering used by print: numbers as decimal,
// text verbatim, booleans as true/false, arrays bracketed and comma-joined.
func (v Value) String() string {
	switch v.typ {
	case TypeNull:
		return "null"
	case TypeBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case TypeNumber:
		return fmt.Sprintf("%d", v.numVal)
	case TypeText:
		return v.textVal
	case TypeArray:
		parts := make([]string, len(v.arrayVal))
		for i, item := range v.arrayVal {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "<unknown>"
}

// MarshalJSON converts a Value to JSON for the HTTP run endpoint.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case TypeNull:
		return []byte("null"), nil
	case TypeBool:
		return json.Marshal(v.boolVal)
	case TypeNumber:
		return json.Marshal(v.numVal)
	case TypeText:
		return json.Marshal(v.textVal)
	case TypeArray:
		items := make([]json.RawMessage, len(v.arrayVal))
		for i, item := range v.arrayVal {
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			items[i] = b
		}
		return json.Marshal(items)
	}
	return nil, fmt.Errorf("cannot marshal unknown type %d", v.typ)
}
