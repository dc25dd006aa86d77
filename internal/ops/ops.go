// Package ops implements the operator dispatch machinery: unary_op and
// binary_op over the polymorphic type-slot model, with a small-int fast
// path and promotion to rtobjects.BigIntObj on overflow.
//
// Arithmetic opcode handlers typically switch on a Go type assertion;
// this package switches on rtvalue.Kind and TypeDescriptor slots instead.
package ops

import (
	"math/big"

	"pyrtcore/internal/rtconfig"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

// UnaryOp implements unary_op(op, v).
func UnaryOp(op rtvalue.UnaryOp, v rtvalue.Value) rtvalue.Value {
	if op == rtvalue.UnaryNot {
		return rtvalue.Bool(!isTrue(v))
	}
	if rtvalue.IsSmallInt(v) {
		n := rtvalue.AsSmallInt(v)
		switch op {
		case rtvalue.UnaryPositive:
			return v
		case rtvalue.UnaryNegative:
			if n == minInt64 {
				return rtobjects.NormalizeInt(new(big.Int).Neg(big.NewInt(n)))
			}
			return rtvalue.Int(-n)
		case rtvalue.UnaryInvert:
			return rtvalue.Int(^n)
		}
	}
	if rtobjects.IsInt(v) {
		n := rtobjects.AsBig(v)
		switch op {
		case rtvalue.UnaryPositive:
			return v
		case rtvalue.UnaryNegative:
			return rtobjects.NormalizeInt(new(big.Int).Neg(n))
		case rtvalue.UnaryInvert:
			return rtobjects.NormalizeInt(new(big.Int).Not(n))
		}
	}
	t := rtvalue.TypeOf(v)
	if t != nil && t.UnaryOp != nil {
		if r := t.UnaryOp(op, v); !rtvalue.IsNull(r) {
			return r
		}
	}
	rtexc.RaiseTypeError("bad operand type for unary operator: '" + typeName(v) + "'")
	panic("unreachable")
}

// isTrue implements "not 0 => True, else False", independent of
// type-specific booleanness. This core does not implement a __bool__
// protocol, so every value other than the small int 0 and False/None is
// truthy.
func isTrue(v rtvalue.Value) bool { return Truthy(v) }

// Truthy reports whether v is truthy under the same rule unary_op(NOT, v)
// uses. Exported for builtins (bool(), all(), any())
// that need the same truthiness test without going through unary_op.
func Truthy(v rtvalue.Value) bool {
	if rtvalue.IsSmallInt(v) {
		return rtvalue.AsSmallInt(v) != 0
	}
	if rtvalue.IsSingleton(v) {
		return v != rtvalue.None && v != rtvalue.False
	}
	return true
}

const minInt64 = -1 << 63

// BinaryOp implements binary_op(op, l, r).
func BinaryOp(op rtvalue.BinaryOp, l, r rtvalue.Value) rtvalue.Value {
	switch op {
	case rtvalue.Eq:
		return rtvalue.Bool(equal(l, r))
	case rtvalue.Ne:
		return rtvalue.Bool(!equal(l, r))
	case rtvalue.ExceptionMatch:
		return rtvalue.Bool(exceptionMatch(l, r))
	}

	if rtobjects.IsInt(l) && rtobjects.IsInt(r) {
		return intBinaryOp(op, l, r)
	}

	t := rtvalue.TypeOf(l)
	if t != nil && t.BinaryOp != nil {
		if res := t.BinaryOp(op, l, r); !rtvalue.IsNull(res) {
			return res
		}
	}
	rtexc.RaiseTypeError("unsupported operand types for binary operator: '" + typeName(l) + "', '" + typeName(r) + "'")
	panic("unreachable")
}

// equal implements a type-agnostic equal(l, r): identity/slot equality
// for same-kind values, plus the int/bigint cross-representation case
// the raw rtvalue.Equal deliberately leaves to this layer.
func equal(l, r rtvalue.Value) bool {
	if rtvalue.Equal(l, r) {
		return true
	}
	if rtobjects.IsInt(l) && rtobjects.IsInt(r) {
		return rtobjects.AsBig(l).Cmp(rtobjects.AsBig(r)) == 0
	}
	return false
}

func exceptionMatch(exc, matcher rtvalue.Value) bool {
	if instType, ok := rtobjects.ExceptionClassInstanceType(matcher); ok {
		return rtvalue.TypeOf(exc) == instType
	}
	return rtvalue.TypeOf(exc) == rtvalue.TypeOf(matcher)
}

func intBinaryOp(op rtvalue.BinaryOp, l, r rtvalue.Value) rtvalue.Value {
	base := op.NonInPlace()
	switch base {
	case rtvalue.Lt, rtvalue.Le, rtvalue.Gt, rtvalue.Ge:
		return rtvalue.Bool(compareInts(base, l, r))
	case rtvalue.TrueDiv:
		if !rtconfig.FloatEnabled {
			rtexc.RaiseTypeError("unsupported operand types for binary operator: '" + typeName(l) + "', '" + typeName(r) + "'")
		}
		// Float values are out of this core's scope even when enabled;
		// the build switch exists for a front-end that supplies its own
		// float type.
		rtexc.RaiseTypeError("true division requires a float type, which this build does not provide")
		panic("unreachable")
	}

	a, b := rtobjects.AsBig(l), rtobjects.AsBig(r)
	switch base {
	case rtvalue.Add:
		return rtobjects.NormalizeInt(new(big.Int).Add(a, b))
	case rtvalue.Sub:
		return rtobjects.NormalizeInt(new(big.Int).Sub(a, b))
	case rtvalue.Mul:
		return rtobjects.NormalizeInt(new(big.Int).Mul(a, b))
	case rtvalue.FloorDiv, rtvalue.Mod:
		if b.Sign() == 0 {
			rtexc.RaiseValueError("division by zero")
		}
		q, m := floorDivMod(a, b)
		if base == rtvalue.FloorDiv {
			return rtobjects.NormalizeInt(q)
		}
		return rtobjects.NormalizeInt(m)
	case rtvalue.Pow:
		return intPow(a, b)
	case rtvalue.BitAnd:
		return rtobjects.NormalizeInt(new(big.Int).And(a, b))
	case rtvalue.BitOr:
		return rtobjects.NormalizeInt(new(big.Int).Or(a, b))
	case rtvalue.BitXor:
		return rtobjects.NormalizeInt(new(big.Int).Xor(a, b))
	case rtvalue.Lshift:
		if b.Sign() < 0 {
			rtexc.RaiseValueError("negative shift count")
		}
		return rtobjects.NormalizeInt(new(big.Int).Lsh(a, uint(b.Uint64())))
	case rtvalue.Rshift:
		if b.Sign() < 0 {
			rtexc.RaiseValueError("negative shift count")
		}
		return rtobjects.NormalizeInt(new(big.Int).Rsh(a, uint(b.Uint64())))
	}
	return rtvalue.Null
}

func compareInts(op rtvalue.BinaryOp, l, r rtvalue.Value) bool {
	c := rtobjects.AsBig(l).Cmp(rtobjects.AsBig(r))
	switch op {
	case rtvalue.Lt:
		return c < 0
	case rtvalue.Le:
		return c <= 0
	case rtvalue.Gt:
		return c > 0
	case rtvalue.Ge:
		return c >= 0
	}
	return false
}

// floorDivMod computes Python's floored division and modulo, where the
// remainder's sign always matches the divisor's. math/big's QuoRem
// truncates toward zero instead, so this adjusts its result by hand.
func floorDivMod(a, b *big.Int) (q, m *big.Int) {
	q, m = new(big.Int), new(big.Int)
	q.QuoRem(a, b, m)
	if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		m.Add(m, b)
	}
	return q, m
}

// intPow: a negative exponent has no integer result, and since this core
// carries no float type, it raises ValueError rather than silently
// truncating to zero.
func intPow(base, exp *big.Int) rtvalue.Value {
	if exp.Sign() < 0 {
		rtexc.RaiseValueError("negative exponent requires a float type, which this build does not provide")
	}
	return rtobjects.NormalizeInt(new(big.Int).Exp(base, exp, nil))
}

func typeName(v rtvalue.Value) string {
	t := rtvalue.TypeOf(v)
	if t == nil {
		return "?"
	}
	return t.Name
}
