package seqproto

import (
	"testing"

	"pyrtcore/internal/iterproto"
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

func TestBuildTupleReversesInputToSourceOrder(t *testing.T) {
	reversed := []rtvalue.Value{rtvalue.Int(3), rtvalue.Int(2), rtvalue.Int(1)}
	tup := BuildTuple(reversed)
	items, ok := rtobjects.Elements(tup)
	if !ok {
		t.Fatal("BuildTuple did not return a tuple")
	}
	want := []int64{1, 2, 3}
	for i, w := range want {
		if items[i] != rtvalue.Int(w) {
			t.Errorf("items[%d] = %v, want %d", i, items[i], w)
		}
	}
}

func TestBuildListReversesInputToSourceOrder(t *testing.T) {
	reversed := []rtvalue.Value{rtvalue.Int(2), rtvalue.Int(1)}
	list := BuildList(reversed)
	items, _ := rtobjects.Elements(list)
	if len(items) != 2 || items[0] != rtvalue.Int(1) || items[1] != rtvalue.Int(2) {
		t.Errorf("BuildList = %v, want [1, 2]", items)
	}
}

func TestListAppendMutatesInPlace(t *testing.T) {
	list := BuildList(nil)
	ListAppend(list, rtvalue.Int(1))
	ListAppend(list, rtvalue.Int(2))
	items, _ := rtobjects.Elements(list)
	if len(items) != 2 || items[1] != rtvalue.Int(2) {
		t.Errorf("Elements = %v, want [1, 2]", items)
	}
}

func TestBuildSetAndStoreSet(t *testing.T) {
	s := BuildSet([]rtvalue.Value{rtobjects.NewString("a"), rtobjects.NewString("b")})
	StoreSet(s, rtobjects.NewString("c"))
	if rtobjects.SetOf(s).Table.Len() != 3 {
		t.Errorf("set has %d entries, want 3", rtobjects.SetOf(s).Table.Len())
	}
}

func TestBuildMapAndStoreMap(t *testing.T) {
	m := BuildMap(0)
	StoreMap(m, rtobjects.NewString("x"), rtvalue.Int(1))
	StoreMap(m, rtobjects.NewString("y"), rtvalue.Int(2))
	v, ok := rtobjects.DictOf(m).Table.Get("x")
	if !ok || v != rtvalue.Int(1) {
		t.Errorf("dict[x] = %v, %v, want 1, true", v, ok)
	}
}

func TestUnpackSequenceTooFewRaisesValueErrorWithActualLength(t *testing.T) {
	tup := rtobjects.NewTuple([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	exc, caught := catch(func() { UnpackSequence(tup, 3) })
	if !caught {
		t.Fatal("unpacking (1,2) into 3 targets should raise")
	}
	if rtvalue.TypeOf(exc).Name != "ValueError" {
		t.Fatalf("raised %s, want ValueError", rtvalue.TypeOf(exc).Name)
	}
	if msg := rtobjects.ExceptionMessage(exc); msg != "need more than 2 values to unpack" {
		t.Errorf("message = %q, want %q", msg, "need more than 2 values to unpack")
	}
}

func TestUnpackSequenceTooManyRaisesValueErrorWithRequestedCount(t *testing.T) {
	tup := rtobjects.NewTuple([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2), rtvalue.Int(3)})
	exc, caught := catch(func() { UnpackSequence(tup, 2) })
	if !caught {
		t.Fatal("unpacking (1,2,3) into 2 targets should raise")
	}
	if msg := rtobjects.ExceptionMessage(exc); msg != "too many values to unpack (expected 2)" {
		t.Errorf("message = %q, want %q", msg, "too many values to unpack (expected 2)")
	}
}

func TestUnpackSequenceExactMatch(t *testing.T) {
	tup := rtobjects.NewTuple([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	out := UnpackSequence(tup, 2)
	if len(out) != 2 || out[0] != rtvalue.Int(1) || out[1] != rtvalue.Int(2) {
		t.Errorf("UnpackSequence = %v, want [1, 2]", out)
	}
}

func TestUnpackSequenceOverGenericIterable(t *testing.T) {
	l := rtobjects.NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	it := iterproto.GetIter(l)
	out := UnpackSequence(it, 2)
	if len(out) != 2 || out[0] != rtvalue.Int(1) || out[1] != rtvalue.Int(2) {
		t.Errorf("UnpackSequence over an iterator = %v, want [1, 2]", out)
	}
}

func TestUnpackSequenceOnNonIterableRaisesTypeError(t *testing.T) {
	exc, caught := catch(func() { UnpackSequence(rtvalue.Int(1), 2) })
	if !caught {
		t.Fatal("unpacking an int should raise")
	}
	if rtvalue.TypeOf(exc).Name != "TypeError" {
		t.Errorf("raised %s, want TypeError", rtvalue.TypeOf(exc).Name)
	}
}
