package rtobjects

import (
	"strconv"

	"pyrtcore/internal/rtvalue"
)

// RangeObj is the range(...) builtin's result. Python's range is lazy;
// this core materialises its iterator eagerly, since iteration order and
// length are what's observable, not memory behaviour on huge ranges.
type RangeObj struct {
	rtvalue.Object
	Start, Stop, Step int64
}

var RangeType = &rtvalue.TypeDescriptor{Name: "range"}

func rangeOf(v rtvalue.Value) *RangeObj { return (*RangeObj)(objPtr(v)) }

// NewRange boxes a start/stop/step triple as a range value.
func NewRange(start, stop, step int64) rtvalue.Value {
	obj := &RangeObj{Object: rtvalue.Object{Type: RangeType}, Start: start, Stop: stop, Step: step}
	return rtvalue.Heap(&obj.Object)
}

// RangeValues materialises a range's elements in iteration order.
func RangeValues(v rtvalue.Value) []int64 {
	r := rangeOf(v)
	var out []int64
	if r.Step > 0 {
		for i := r.Start; i < r.Stop; i += r.Step {
			out = append(out, i)
		}
	} else {
		for i := r.Start; i > r.Stop; i += r.Step {
			out = append(out, i)
		}
	}
	return out
}

func init() {
	RangeType.Print = func(v rtvalue.Value) string {
		r := rangeOf(v)
		if r.Step == 1 {
			return "range(" + strconv.FormatInt(r.Start, 10) + ", " + strconv.FormatInt(r.Stop, 10) + ")"
		}
		return "range(" + strconv.FormatInt(r.Start, 10) + ", " + strconv.FormatInt(r.Stop, 10) + ", " + strconv.FormatInt(r.Step, 10) + ")"
	}
	RangeType.GetIter = func(v rtvalue.Value) rtvalue.Value {
		vals := RangeValues(v)
		items := make([]rtvalue.Value, len(vals))
		for i, n := range vals {
			items[i] = rtvalue.Int(n)
		}
		return NewIterator(items)
	}
	RangeType.Equality = func(a, b rtvalue.Value) bool {
		ra, rb := rangeOf(a), rangeOf(b)
		return ra.Start == rb.Start && ra.Stop == rb.Stop && ra.Step == rb.Step
	}
}
