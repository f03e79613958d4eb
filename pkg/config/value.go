package config

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Kind is the type tag of a Value.
type Kind int

const (
	// KindNull is the zero Kind, held by null and by the zero Value.
	KindNull Kind = iota
	// KindBool marks a true or false value.
	KindBool
	// KindNumber marks an integral or floating number.
	KindNumber
	// KindString marks a string value.
	KindString
	// KindSequence marks an ordered list of values.
	KindSequence
	// KindMapping marks a table of values keyed by string.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a node of a loaded configuration document. The zero Value is null.
//
// Consumers switch on Kind and use the matching accessor:
//
//	switch v.Kind() {
//	case config.KindString:
//	    s, _ := v.AsString()
//	case config.KindMapping:
//	    for _, k := range v.Keys() { ... }
//	}
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	isInt   bool
	str     string
	seq     []Value
	mapping map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int returns an integral number.
func Int(i int64) Value {
	return Value{kind: KindNumber, integer: i, float: float64(i), isInt: true}
}

// Float returns a floating number. NaN and infinities are kept as is.
func Float(f float64) Value { return Value{kind: KindNumber, float: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Sequence returns a sequence holding a copy of items.
func Sequence(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, seq: seq}
}

// Mapping returns a mapping holding a copy of m.
func Mapping(m map[string]Value) Value {
	mapping := make(map[string]Value, len(m))
	for k, v := range m {
		mapping[k] = v
	}
	return Value{kind: KindMapping, mapping: mapping}
}

// Kind returns the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v is one.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsInt returns the number as an int64. It reports false for non-numbers and
// for numbers with a fractional part or outside the int64 range.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.isInt {
		return v.integer, true
	}
	if v.float != math.Trunc(v.float) || v.float < math.MinInt64 || v.float >= math.MaxInt64 {
		return 0, false
	}
	return int64(v.float), true
}

// AsFloat returns any number as a float64.
func (v Value) AsFloat() (float64, bool) { return v.float, v.kind == KindNumber }

// AsString returns the string and whether v is one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsItems returns a copy of the elements of a sequence.
func (v Value) AsItems() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	items := make([]Value, len(v.seq))
	copy(items, v.seq)
	return items, true
}

// Len returns the number of elements of a sequence or entries of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.mapping)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Get returns the entry stored under key in a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	val, ok := v.mapping[key]
	return val, ok
}

// Lookup walks nested mappings following keys.
func (v Value) Lookup(keys ...string) (Value, bool) {
	cur := v
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// Keys returns the keys of a mapping in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(v.mapping))
	for k := range v.mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Interface converts the value back to plain Go types: nil, bool, int64,
// float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		if v.isInt {
			return v.integer
		}
		return v.float
	case KindString:
		return v.str
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.mapping))
		for k, item := range v.mapping {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and content. Integral
// and floating numbers compare by numeric value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == o.boolean
	case KindNumber:
		if v.isInt && o.isInt {
			return v.integer == o.integer
		}
		return v.float == o.float
	case KindString:
		return v.str == o.str
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.mapping) != len(o.mapping) {
			return false
		}
		for k, item := range v.mapping {
			other, ok := o.mapping[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler. JSON has no NaN or infinity, so
// non-finite numbers are written as null. Mapping keys are written sorted.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(nil, v.boolean), nil
	case KindNumber:
		if v.isInt {
			return strconv.AppendInt(nil, v.integer, 10), nil
		}
		if math.IsNaN(v.float) || math.IsInf(v.float, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.float)
	case KindString:
		return json.Marshal(v.str)
	case KindSequence:
		if len(v.seq) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal(v.seq)
	case KindMapping:
		if len(v.mapping) == 0 {
			return []byte("{}"), nil
		}
		return json.Marshal(v.mapping)
	default:
		return []byte("null"), nil
	}
}
