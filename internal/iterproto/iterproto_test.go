package iterproto

import (
	"testing"

	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

func catch(fn func()) (exc rtvalue.Value, caught bool) {
	defer func() {
		if r := recover(); r != nil {
			exc, caught = rtvalue.Recover(r)
		}
	}()
	fn()
	return rtvalue.Null, false
}

func TestGetIterOnIntRaisesTypeError(t *testing.T) {
	exc, caught := catch(func() { GetIter(rtvalue.Int(1)) })
	if !caught {
		t.Fatal("getiter on an int should raise")
	}
	if rtvalue.TypeOf(exc).Name != "TypeError" {
		t.Errorf("raised %s, want TypeError", rtvalue.TypeOf(exc).Name)
	}
}

func TestGetIterAndIterNextOverList(t *testing.T) {
	l := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(10), rtvalue.Int(20)})
	it := GetIter(l)

	if v := IterNext(it); v != rtvalue.Int(10) {
		t.Errorf("first IterNext = %v, want 10", v)
	}
	if v := IterNext(it); v != rtvalue.Int(20) {
		t.Errorf("second IterNext = %v, want 20", v)
	}
	if v := IterNext(it); !rtvalue.IsStopIterMarker(v) {
		t.Errorf("exhausted IterNext = %v, want the stop marker", v)
	}
}

func TestIterNextOnNonIteratorRaisesTypeError(t *testing.T) {
	exc, caught := catch(func() { IterNext(rtvalue.Int(1)) })
	if !caught {
		t.Fatal("iternext on a non-iterator should raise")
	}
	if rtvalue.TypeOf(exc).Name != "TypeError" {
		t.Errorf("raised %s, want TypeError", rtvalue.TypeOf(exc).Name)
	}
}

func TestNextTranslatesExhaustionToStopIteration(t *testing.T) {
	l := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(1)})
	it := GetIter(l)
	if v := Next(it); v != rtvalue.Int(1) {
		t.Errorf("first Next = %v, want 1", v)
	}
	exc, caught := catch(func() { Next(it) })
	if !caught {
		t.Fatal("Next on an exhausted iterator should raise StopIteration")
	}
	if rtvalue.TypeOf(exc).Name != "StopIteration" {
		t.Errorf("raised %s, want StopIteration", rtvalue.TypeOf(exc).Name)
	}
}
