package rtobjects

import "pyrtcore/internal/rtvalue"

// IteratorObj is a simple forward iterator over a pre-materialised slice of
// values, the concrete iterator List/Dict/String's GetIter slots hand back
// (grounded on vmregister.IteratorObj).
type IteratorObj struct {
	rtvalue.Object
	items []rtvalue.Value
	pos   int
}

var IteratorType = &rtvalue.TypeDescriptor{Name: "iterator"}

func init() {
	IteratorType.Print = func(v rtvalue.Value) string { return "<iterator>" }
	IteratorType.GetIter = func(v rtvalue.Value) rtvalue.Value { return v }
	IteratorType.IterNext = func(v rtvalue.Value) rtvalue.Value {
		it := iteratorOf(v)
		if it.pos >= len(it.items) {
			return rtvalue.StopIterMarker
		}
		val := it.items[it.pos]
		it.pos++
		return val
	}
}

func iteratorOf(v rtvalue.Value) *IteratorObj { return (*IteratorObj)(objPtr(v)) }

// NewIterator boxes a materialised slice of values as a forward iterator.
func NewIterator(items []rtvalue.Value) rtvalue.Value {
	obj := &IteratorObj{Object: rtvalue.Object{Type: IteratorType}, items: items}
	return rtvalue.Heap(&obj.Object)
}
