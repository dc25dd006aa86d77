package rtobjects

import (
	"strings"

	"pyrtcore/internal/nsmap"
	"pyrtcore/internal/rtvalue"
)

// SetObj is the set stand-in build_set/store_set populate.
// Like DictObj it is backed by the namespace mapping primitive and shares
// its string-only key restriction (its namespace table is
// explicitly string-keyed; a general hashable-key protocol is out of this
// core's own scope).
type SetObj struct {
	rtvalue.Object
	Table *nsmap.Table
}

var SetType = &rtvalue.TypeDescriptor{Name: "set"}

func SetOf(v rtvalue.Value) *SetObj { return (*SetObj)(objPtr(v)) }

// NewSet boxes a fresh, empty set.
func NewSet() rtvalue.Value {
	obj := &SetObj{Object: rtvalue.Object{Type: SetType}, Table: nsmap.New()}
	return rtvalue.Heap(&obj.Object)
}

// SetAdd inserts key into s, used by build_set/store_set.
func SetAdd(s rtvalue.Value, key string) {
	SetOf(s).Table.Set(key, rtvalue.True)
}

func init() {
	SetType.Print = func(v rtvalue.Value) string {
		keys := SetOf(v).Table.Keys()
		if len(keys) == 0 {
			return "set()"
		}
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = "'" + k + "'"
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	SetType.GetIter = func(v rtvalue.Value) rtvalue.Value {
		keys := SetOf(v).Table.Keys()
		items := make([]rtvalue.Value, len(keys))
		for i, k := range keys {
			items[i] = NewString(k)
		}
		return NewIterator(items)
	}
	SetType.Equality = func(a, b rtvalue.Value) bool {
		at, bt := SetOf(a).Table, SetOf(b).Table
		if at.Len() != bt.Len() {
			return false
		}
		equal := true
		for _, k := range at.Keys() {
			if _, ok := bt.Get(k); !ok {
				equal = false
				break
			}
		}
		return equal
	}
}
