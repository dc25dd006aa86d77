package callproto

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

func sum(args []rtvalue.Value) rtvalue.Value {
	total := int64(0)
	for _, a := range args {
		total += rtvalue.AsSmallInt(a)
	}
	return rtvalue.Int(total)
}

func TestCall0Call1Call2(t *testing.T) {
	f := rtobjects.NewNativeFunc("sum", sum)
	if got := Call0(f); got != rtvalue.Int(0) {
		t.Errorf("Call0 = %v, want 0", got)
	}
	if got := Call1(f, rtvalue.Int(4)); got != rtvalue.Int(4) {
		t.Errorf("Call1 = %v, want 4", got)
	}
	if got := Call2(f, rtvalue.Int(1), rtvalue.Int(2)); got != rtvalue.Int(3) {
		t.Errorf("Call2 = %v, want 3", got)
	}
}

func TestCallNReversedRestoresSourceOrder(t *testing.T) {
	f := rtobjects.NewNativeFunc("first", func(args []rtvalue.Value) rtvalue.Value { return args[0] })
	got := CallNReversed(f, []rtvalue.Value{rtvalue.Int(3), rtvalue.Int(2), rtvalue.Int(1)})
	if got != rtvalue.Int(1) {
		t.Errorf("CallNReversed([3,2,1]) first arg = %v, want 1 (source order)", got)
	}
}

func TestCallNOnNonCallableRaisesTypeError(t *testing.T) {
	exc, caught := catch(func() { CallN(rtvalue.Int(5), nil) })
	if !caught {
		t.Fatal("calling a plain int should raise")
	}
	if rtvalue.TypeOf(exc).Name != "TypeError" {
		t.Errorf("raised %s, want TypeError", rtvalue.TypeOf(exc).Name)
	}
}

func TestCallNKwOnNativeFuncWithoutKwSlotRejectsKwargs(t *testing.T) {
	f := rtobjects.NewNativeFunc("plain", sum)
	reversedKw := []rtvalue.Value{rtvalue.Int(1), rtobjects.NewString("x")}
	exc, caught := catch(func() { CallNKw(f, nil, reversedKw) })
	if !caught {
		t.Fatal("passing keyword args to a callee with no CallNKw slot should raise")
	}
	if rtvalue.TypeOf(exc).Name != "TypeError" {
		t.Errorf("raised %s, want TypeError", rtvalue.TypeOf(exc).Name)
	}
}

func TestCallNKwWithoutKwargsFallsBackToCallN(t *testing.T) {
	f := rtobjects.NewNativeFunc("sum", sum)
	got := CallNKw(f, []rtvalue.Value{rtvalue.Int(2), rtvalue.Int(1)}, nil)
	if got != rtvalue.Int(3) {
		t.Errorf("CallNKw with no kwargs = %v, want 3", got)
	}
}

func TestCallMethodNWithSelf(t *testing.T) {
	fun := rtobjects.NewNativeFunc("m", func(args []rtvalue.Value) rtvalue.Value {
		if len(args) != 2 {
			t.Fatalf("expected self plus one arg, got %d args", len(args))
		}
		return args[0]
	})
	self := rtvalue.Int(99)
	// layout: [arg(0), self, fun] reversed = [arg(n-1)...arg(0), self, fun]
	got := CallMethodN([]rtvalue.Value{rtvalue.Int(1), self, fun})
	if got != self {
		t.Errorf("CallMethodN should prepend self, got %v", got)
	}
}

func TestCallMethodNWithoutSelfOmitsIt(t *testing.T) {
	fun := rtobjects.NewNativeFunc("m", func(args []rtvalue.Value) rtvalue.Value { return rtvalue.Int(int64(len(args))) })
	got := CallMethodN([]rtvalue.Value{rtvalue.Int(1), rtvalue.Null, fun})
	if got != rtvalue.Int(1) {
		t.Errorf("CallMethodN with null self should not prepend anything, got %v", got)
	}
}
