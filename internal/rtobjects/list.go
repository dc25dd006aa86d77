package rtobjects

import (
	"strings"

	"pyrtcore/internal/rtvalue"
)

// ListObj is the core's one mutable-sequence stand-in. store_subscr
// hard-codes list (and dict) handling in attrproto, and seqproto's
// unpack_sequence hard-codes list/tuple handling via Elements below.
type ListObj struct {
	rtvalue.Object
	Elements []rtvalue.Value
}

// TupleObj is the immutable counterpart seqproto's build_tuple constructs
// and unpack_sequence reads back out; it shares ListObj's element slice
// shape but has no mutating methods and a distinct type identity.
type TupleObj struct {
	rtvalue.Object
	Elements []rtvalue.Value
}

var (
	ListType  = &rtvalue.TypeDescriptor{Name: "list"}
	TupleType = &rtvalue.TypeDescriptor{Name: "tuple"}
)

func ListOf(v rtvalue.Value) *ListObj   { return (*ListObj)(objPtr(v)) }
func TupleOf(v rtvalue.Value) *TupleObj { return (*TupleObj)(objPtr(v)) }

// NewList boxes a slice of values as a list, in source order.
func NewList(items []rtvalue.Value) rtvalue.Value {
	obj := &ListObj{Object: rtvalue.Object{Type: ListType}, Elements: items}
	return rtvalue.Heap(&obj.Object)
}

// NewTuple boxes a slice of values as a tuple, in source order.
func NewTuple(items []rtvalue.Value) rtvalue.Value {
	obj := &TupleObj{Object: rtvalue.Object{Type: TupleType}, Elements: items}
	return rtvalue.Heap(&obj.Object)
}

// Elements returns the underlying slice for list or tuple values, the
// shared read path unpack_sequence relies on.
func Elements(v rtvalue.Value) ([]rtvalue.Value, bool) {
	switch rtvalue.TypeOf(v) {
	case ListType:
		return ListOf(v).Elements, true
	case TupleType:
		return TupleOf(v).Elements, true
	default:
		return nil, false
	}
}

func printElements(items []rtvalue.Value) string {
	parts := make([]string, len(items))
	for i, e := range items {
		parts[i] = printValue(e)
	}
	return strings.Join(parts, ", ")
}

// printValue is a best-effort Print fallback shared by container types; it
// defers to the element's own Print slot when present.
func printValue(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t != nil && t.Print != nil {
		return t.Print(v)
	}
	return "<object>"
}

func init() {
	ListType.Print = func(v rtvalue.Value) string { return "[" + printElements(ListOf(v).Elements) + "]" }
	ListType.GetIter = func(v rtvalue.Value) rtvalue.Value {
		src := ListOf(v).Elements
		items := make([]rtvalue.Value, len(src))
		copy(items, src)
		return NewIterator(items)
	}
	ListType.Equality = func(a, b rtvalue.Value) bool {
		al, bl := ListOf(a).Elements, ListOf(b).Elements
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !rtvalue.Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	}
	ListType.BinaryOp = func(op rtvalue.BinaryOp, l, r rtvalue.Value) rtvalue.Value {
		if rtvalue.TypeOf(r) != ListType {
			return rtvalue.Null
		}
		list := ListOf(l)
		switch op {
		case rtvalue.Add:
			out := make([]rtvalue.Value, 0, len(list.Elements)+len(ListOf(r).Elements))
			out = append(out, list.Elements...)
			out = append(out, ListOf(r).Elements...)
			return NewList(out)
		case rtvalue.IAdd:
			// Mutable types provide their own in-place slot rather than
			// falling through to non-in-place concat: append in place and
			// return self.
			list.Elements = append(list.Elements, ListOf(r).Elements...)
			return l
		}
		return rtvalue.Null
	}
	ListType.LoadAttr = func(base rtvalue.Value, attr string) (rtvalue.Value, bool) {
		list := ListOf(base)
		switch attr {
		case "append":
			return NewNativeFunc("append", func(args []rtvalue.Value) rtvalue.Value {
				list.Elements = append(list.Elements, args...)
				return rtvalue.None
			}), true
		case "pop":
			return NewNativeFunc("pop", func(args []rtvalue.Value) rtvalue.Value {
				if len(list.Elements) == 0 {
					return rtvalue.Null
				}
				last := list.Elements[len(list.Elements)-1]
				list.Elements = list.Elements[:len(list.Elements)-1]
				return last
			}), true
		}
		return rtvalue.Null, false
	}

	TupleType.Print = func(v rtvalue.Value) string {
		items := TupleOf(v).Elements
		if len(items) == 1 {
			return "(" + printValue(items[0]) + ",)"
		}
		return "(" + printElements(items) + ")"
	}
	TupleType.GetIter = func(v rtvalue.Value) rtvalue.Value {
		src := TupleOf(v).Elements
		items := make([]rtvalue.Value, len(src))
		copy(items, src)
		return NewIterator(items)
	}
	TupleType.Equality = func(a, b rtvalue.Value) bool {
		al, bl := TupleOf(a).Elements, TupleOf(b).Elements
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !rtvalue.Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	}
}
