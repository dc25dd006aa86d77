// Package rtobjects supplies the minimal set of concrete heap types needed
// to exercise the runtime core end to end: strings, lists, tuples, dicts,
// sets, ranges, boxed big integers, cells, native functions,
// classes/instances, iterators, generators and exceptions. Full object implementations are a front-end/stdlib concern,
// but something has to stand in for them so the dispatch, call, attribute
// and iterator protocols have real objects to operate on in tests and the
// REPL. Each type here is built against rtvalue's type-slot contract
// rather than a single large type switch.
package rtobjects

import (
	"pyrtcore/internal/rtvalue"
)

// StringObj is a heap string value.
type StringObj struct {
	rtvalue.Object
	S string
}

var StringType = &rtvalue.TypeDescriptor{Name: "str"}

// NewString boxes a Go string.
func NewString(s string) rtvalue.Value {
	obj := &StringObj{Object: rtvalue.Object{Type: StringType}, S: s}
	return rtvalue.Heap(&obj.Object)
}

// AsString extracts the Go string from a str value. Callers must check the
// value's type first (rtvalue.TypeOf(v) == StringType).
func AsString(v rtvalue.Value) string {
	return stringOf(v).S
}

func stringOf(v rtvalue.Value) *StringObj {
	return (*StringObj)(objPtr(v))
}

func init() {
	StringType.Equality = func(a, b rtvalue.Value) bool { return stringOf(a).S == stringOf(b).S }
	StringType.Hash = func(v rtvalue.Value) uint64 { return fnvHash(stringOf(v).S) }
	StringType.Print = func(v rtvalue.Value) string { return stringOf(v).S }
	StringType.GetIter = func(v rtvalue.Value) rtvalue.Value {
		s := stringOf(v).S
		runes := []rune(s)
		items := make([]rtvalue.Value, len(runes))
		for i, r := range runes {
			items[i] = NewString(string(r))
		}
		return NewIterator(items)
	}
	StringType.BinaryOp = func(op rtvalue.BinaryOp, l, r rtvalue.Value) rtvalue.Value {
		if rtvalue.TypeOf(r) != StringType {
			return rtvalue.Null
		}
		ls, rs := stringOf(l).S, stringOf(r).S
		switch op.NonInPlace() {
		case rtvalue.Add:
			return NewString(ls + rs)
		case rtvalue.Lt:
			return rtvalue.Bool(ls < rs)
		case rtvalue.Le:
			return rtvalue.Bool(ls <= rs)
		case rtvalue.Gt:
			return rtvalue.Bool(ls > rs)
		case rtvalue.Ge:
			return rtvalue.Bool(ls >= rs)
		}
		return rtvalue.Null
	}
}

func fnvHash(s string) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}
