package rtobjects

import (
	"testing"

	"pyrtcore/internal/rtvalue"
)

func TestNewExceptionKindAndMessage(t *testing.T) {
	cls, instType := NewExceptionKind("DemoError")
	inst := NewException(instType, "boom")

	if !IsExceptionInstance(inst, instType) {
		t.Error("constructed instance should satisfy IsExceptionInstance")
	}
	if ExceptionMessage(inst) != "boom" {
		t.Errorf("ExceptionMessage = %q, want boom", ExceptionMessage(inst))
	}
	if rtvalue.TypeOf(cls) != ExceptionClassMeta {
		t.Error("exception class value should carry ExceptionClassMeta")
	}
}

func TestExceptionClassCallNConstructsInstance(t *testing.T) {
	cls, instType := NewExceptionKind("DemoError")
	inst := ExceptionClassMeta.CallN(cls, []rtvalue.Value{NewString("bad input")})
	if !IsExceptionInstance(inst, instType) {
		t.Error("calling the exception class should produce an instance of it")
	}
	if ExceptionMessage(inst) != "bad input" {
		t.Errorf("ExceptionMessage = %q, want \"bad input\"", ExceptionMessage(inst))
	}
}

func TestExceptionClassCallNWithoutMessage(t *testing.T) {
	cls, _ := NewExceptionKind("DemoError")
	inst := ExceptionClassMeta.CallN(cls, nil)
	if ExceptionMessage(inst) != "" {
		t.Errorf("ExceptionMessage = %q, want empty string with no args", ExceptionMessage(inst))
	}
}

func TestExceptionClassInstanceType(t *testing.T) {
	cls, instType := NewExceptionKind("DemoError")
	got, ok := ExceptionClassInstanceType(cls)
	if !ok || got != instType {
		t.Errorf("ExceptionClassInstanceType = %v, %v, want %v, true", got, ok, instType)
	}
	if _, ok := ExceptionClassInstanceType(rtvalue.Int(1)); ok {
		t.Error("ExceptionClassInstanceType should reject a non-exception-class value")
	}
}

func TestIsExceptionInstanceRejectsOtherKinds(t *testing.T) {
	_, instA := NewExceptionKind("AError")
	_, instB := NewExceptionKind("BError")
	inst := NewException(instA, "x")
	if IsExceptionInstance(inst, instB) {
		t.Error("an instance of AError should not satisfy IsExceptionInstance for BError")
	}
}
