package rtobjects

import (
	"testing"

	"pyrtcore/internal/rtvalue"
)

func TestStringRoundTrip(t *testing.T) {
	v := NewString("hello")
	if AsString(v) != "hello" {
		t.Errorf("AsString = %q, want hello", AsString(v))
	}
}

func TestStringEquality(t *testing.T) {
	if !StringType.Equality(NewString("a"), NewString("a")) {
		t.Error("equal strings should compare equal")
	}
	if StringType.Equality(NewString("a"), NewString("b")) {
		t.Error("different strings should not compare equal")
	}
}

func TestStringConcatAndCompare(t *testing.T) {
	cat := StringType.BinaryOp(rtvalue.Add, NewString("foo"), NewString("bar"))
	if AsString(cat) != "foobar" {
		t.Errorf("concat = %q, want foobar", AsString(cat))
	}
	lt := StringType.BinaryOp(rtvalue.Lt, NewString("a"), NewString("b"))
	if lt != rtvalue.True {
		t.Error("\"a\" < \"b\" should be True")
	}
}

func TestStringBinaryOpRejectsNonString(t *testing.T) {
	v := StringType.BinaryOp(rtvalue.Add, NewString("a"), rtvalue.Int(1))
	if !rtvalue.IsNull(v) {
		t.Error("string + int should report Null (operation not supported)")
	}
}

func TestStringGetIterYieldsRunes(t *testing.T) {
	it := StringType.GetIter(NewString("ab"))
	next := rtvalue.TypeOf(it).IterNext
	if v := next(it); AsString(v) != "a" {
		t.Errorf("first rune = %q, want a", AsString(v))
	}
	if v := next(it); AsString(v) != "b" {
		t.Errorf("second rune = %q, want b", AsString(v))
	}
	if v := next(it); !rtvalue.IsStopIterMarker(v) {
		t.Error("iterator should be exhausted after two runes")
	}
}
