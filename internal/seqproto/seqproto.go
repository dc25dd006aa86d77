// Package seqproto implements the container-construction and
// sequence-unpacking operations: build_tuple, build_list, build_set,
// store_set, build_map, store_map, list_append, and unpack_sequence.
//
// build_tuple/build_list take their items in reverse order, matching a
// bytecode VM's stack-pop order, and hand back a container in source
// order; build_set/store_set/build_map/store_map are the bulk and
// incremental forms of the same literal-construction pattern.
package seqproto

import (
	"strconv"

	"pyrtcore/internal/iterproto"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// BuildTuple implements build_tuple(items*): items are in reverse order
// (last source element first); the returned tuple presents them in
// source order.
func BuildTuple(reversed []rtvalue.Value) rtvalue.Value {
	return rtobjects.NewTuple(reverseValues(reversed))
}

// BuildList implements build_list(items*), the mutable counterpart of
// BuildTuple with the same reverse-in, source-order-out contract.
func BuildList(reversed []rtvalue.Value) rtvalue.Value {
	return rtobjects.NewList(reverseValues(reversed))
}

// BuildSet implements build_set(items*): order is irrelevant, so items
// are inserted in the order given.
func BuildSet(items []rtvalue.Value) rtvalue.Value {
	s := rtobjects.NewSet()
	for _, item := range items {
		addSetItem(s, item)
	}
	return s
}

// StoreSet implements store_set(set, item): inserts one item into an
// already-built set and returns the same set, the incremental
// counterpart to BuildSet's bulk form (set-comprehension lowering adds
// one element per loop iteration).
func StoreSet(s, item rtvalue.Value) rtvalue.Value {
	addSetItem(s, item)
	return s
}

func addSetItem(s, item rtvalue.Value) {
	key, ok := rtobjects.DictKey(item)
	if !ok {
		rtexc.RaiseTypeError("unhashable type: '" + typeName(item) + "'")
	}
	rtobjects.SetAdd(s, key)
}

// BuildMap implements build_map(hint): allocates an empty dict. hint is
// accepted for signature parity with the construction op it stands in
// for; this core's backing table grows on demand and has no
// preallocation knob to pass it to.
func BuildMap(hint int) rtvalue.Value {
	_ = hint
	return rtobjects.NewDict()
}

// StoreMap implements store_map(map, key, value): the incremental
// one-pair-at-a-time insertion a dict literal's lowering uses.
func StoreMap(m, key, value rtvalue.Value) rtvalue.Value {
	k, ok := rtobjects.DictKey(key)
	if !ok {
		rtexc.RaiseTypeError("unhashable type: '" + typeName(key) + "'")
	}
	rtobjects.DictOf(m).Table.Set(k, value)
	return m
}

// ListAppend implements list_append(list, item): in-place append,
// distinct from the list.append method attribute load_attr exposes,
// since this op is the direct target a list-comprehension lowering calls
// without going through attribute lookup.
func ListAppend(list, item rtvalue.Value) rtvalue.Value {
	l := rtobjects.ListOf(list)
	l.Elements = append(l.Elements, item)
	return rtvalue.None
}

// UnpackSequence implements unpack_sequence(seq, n): tuples and lists are
// unpacked directly by length; any other value falls back to draining
// the iterator protocol (getiter/iternext) for exactly n items. A short
// sequence's ValueError names its actual length; a long one's names the
// requested count.
func UnpackSequence(seq rtvalue.Value, n int) []rtvalue.Value {
	if items, ok := rtobjects.Elements(seq); ok {
		if len(items) < n {
			rtexc.RaiseValueError("need more than " + strconv.Itoa(len(items)) + " values to unpack")
		}
		if len(items) > n {
			rtexc.RaiseValueError("too many values to unpack (expected " + strconv.Itoa(n) + ")")
		}
		out := make([]rtvalue.Value, n)
		copy(out, items)
		return out
	}
	return unpackIterable(seq, n)
}

func unpackIterable(seq rtvalue.Value, n int) []rtvalue.Value {
	it := iterproto.GetIter(seq)
	out := make([]rtvalue.Value, 0, n)
	for len(out) < n {
		v := iterproto.IterNext(it)
		if rtvalue.IsStopIterMarker(v) {
			rtexc.RaiseValueError("need more than " + strconv.Itoa(len(out)) + " values to unpack")
		}
		out = append(out, v)
	}
	if v := iterproto.IterNext(it); !rtvalue.IsStopIterMarker(v) {
		rtexc.RaiseValueError("too many values to unpack (expected " + strconv.Itoa(n) + ")")
	}
	return out
}

func reverseValues(in []rtvalue.Value) []rtvalue.Value {
	out := make([]rtvalue.Value, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func typeName(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t == nil {
		return "?"
	}
	return t.Name
}
