package rtobjects

import (
	"testing"

	"pyrtcore/internal/rtvalue"
)

func TestListPrint(t *testing.T) {
	l := NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	if got := ListType.Print(l); got != "[1, 2]" {
		t.Errorf("Print(list) = %q, want [1, 2]", got)
	}
}

func TestListAppendAndPop(t *testing.T) {
	l := NewList(nil)
	appendFn, ok := ListType.LoadAttr(l, "append")
	if !ok {
		t.Fatal("list has no append attribute")
	}
	callN := rtvalue.TypeOf(appendFn).CallN
	callN(appendFn, []rtvalue.Value{rtvalue.Int(10)})

	if got := ListOf(l).Elements; len(got) != 1 || got[0] != rtvalue.Int(10) {
		t.Fatalf("append did not mutate the list: %v", got)
	}

	popFn, _ := ListType.LoadAttr(l, "pop")
	popped := rtvalue.TypeOf(popFn).CallN(popFn, nil)
	if popped != rtvalue.Int(10) {
		t.Errorf("pop() = %v, want Int(10)", popped)
	}
	if len(ListOf(l).Elements) != 0 {
		t.Error("pop did not remove the element")
	}
}

func TestListConcatAndInPlaceAdd(t *testing.T) {
	a := NewList([]rtvalue.Value{rtvalue.Int(1)})
	b := NewList([]rtvalue.Value{rtvalue.Int(2)})
	sum := ListType.BinaryOp(rtvalue.Add, a, b)
	if got, _ := Elements(sum); len(got) != 2 {
		t.Fatalf("Add produced %v, want 2 elements", got)
	}
	if len(ListOf(a).Elements) != 1 {
		t.Error("non-in-place Add mutated the left operand")
	}

	result := ListType.BinaryOp(rtvalue.IAdd, a, b)
	if result != a {
		t.Error("IAdd should return the same list value (mutated in place)")
	}
	if len(ListOf(a).Elements) != 2 {
		t.Error("IAdd did not mutate the list in place")
	}
}

func TestListEquality(t *testing.T) {
	a := NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	b := NewList([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	c := NewList([]rtvalue.Value{rtvalue.Int(1)})
	if !ListType.Equality(a, b) {
		t.Error("equal-content lists should compare equal")
	}
	if ListType.Equality(a, c) {
		t.Error("different-length lists should not compare equal")
	}
}

func TestTuplePrintSingleton(t *testing.T) {
	one := NewTuple([]rtvalue.Value{rtvalue.Int(1)})
	if got := TupleType.Print(one); got != "(1,)" {
		t.Errorf("Print(1-tuple) = %q, want (1,)", got)
	}
	two := NewTuple([]rtvalue.Value{rtvalue.Int(1), rtvalue.Int(2)})
	if got := TupleType.Print(two); got != "(1, 2)" {
		t.Errorf("Print(2-tuple) = %q, want (1, 2)", got)
	}
}

func TestElementsHelper(t *testing.T) {
	l := NewList([]rtvalue.Value{rtvalue.Int(1)})
	tup := NewTuple([]rtvalue.Value{rtvalue.Int(2)})
	if _, ok := Elements(l); !ok {
		t.Error("Elements should recognize a list")
	}
	if _, ok := Elements(tup); !ok {
		t.Error("Elements should recognize a tuple")
	}
	if _, ok := Elements(rtvalue.Int(3)); ok {
		t.Error("Elements should reject a non-container value")
	}
}
