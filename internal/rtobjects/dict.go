package rtobjects

import (
	"strings"

	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/rtvalue"
)

// DictObj is the dict stand-in built directly on the namespace mapping
// primitive: the same table type that backs environment namespaces
// doubles as a dict's backing store here.
type DictObj struct {
	rtvalue.Object
	Table *nsmap.Table
}

var DictType = &rtvalue.TypeDescriptor{Name: "dict"}

func DictOf(v rtvalue.Value) *DictObj { return (*DictObj)(objPtr(v)) }

// NewDict boxes a fresh, empty dict.
func NewDict() rtvalue.Value {
	obj := &DictObj{Object: rtvalue.Object{Type: DictType}, Table: nsmap.New()}
	return rtvalue.Heap(&obj.Object)
}

func init() {
	DictType.Print = func(v rtvalue.Value) string {
		d := DictOf(v)
		parts := make([]string, 0, d.Table.Len())
		d.Table.Range(func(k string, val rtvalue.Value) bool {
			parts = append(parts, "'"+k+"': "+printValue(val))
			return true
		})
		return "{" + strings.Join(parts, ", ") + "}"
	}
	DictType.GetIter = func(v rtvalue.Value) rtvalue.Value {
		keys := DictOf(v).Table.Keys()
		items := make([]rtvalue.Value, len(keys))
		for i, k := range keys {
			items[i] = NewString(k)
		}
		return NewIterator(items)
	}
	DictType.Equality = func(a, b rtvalue.Value) bool {
		at, bt := DictOf(a).Table, DictOf(b).Table
		if at.Len() != bt.Len() {
			return false
		}
		equal := true
		at.Range(func(k string, v rtvalue.Value) bool {
			bv, ok := bt.Get(k)
			if !ok || !rtvalue.Equal(v, bv) {
				equal = false
				return false
			}
			return true
		})
		return equal
	}
}

// DictKey converts a dict-subscript Value to its string key. Only string
// keys are supported (its namespace table is explicitly string-keyed;
// this core does not implement a general hashable-key protocol for other
// types, consistent with concrete containers being out of its own scope).
func DictKey(v rtvalue.Value) (string, bool) {
	if rtvalue.TypeOf(v) == StringType {
		return AsString(v), true
	}
	return "", false
}
