package rtobjects

import (
	"math/big"

	"pyrtcore/internal/rtvalue"
)

// BigIntObj is the boxed integer small-int arithmetic promotes to on
// overflow. An int64 small int can't represent these; modelling
// "promote to a boxed integer" with math/big is the direct Go analogue.
type BigIntObj struct {
	rtvalue.Object
	N *big.Int
}

var BigIntType = &rtvalue.TypeDescriptor{Name: "int"}

// NewBigInt boxes a *big.Int. The caller keeps ownership of n; NewBigInt
// does not copy it.
func NewBigInt(n *big.Int) rtvalue.Value {
	obj := &BigIntObj{Object: rtvalue.Object{Type: BigIntType}, N: n}
	return rtvalue.Heap(&obj.Object)
}

func bigIntOf(v rtvalue.Value) *BigIntObj { return (*BigIntObj)(objPtr(v)) }

// AsBig returns the math/big.Int value for any integer Value, small or
// boxed, so arithmetic code can treat both uniformly.
func AsBig(v rtvalue.Value) *big.Int {
	if rtvalue.IsSmallInt(v) {
		return big.NewInt(rtvalue.AsSmallInt(v))
	}
	return bigIntOf(v).N
}

// IsInt reports whether v is an integer, small or boxed.
func IsInt(v rtvalue.Value) bool {
	return rtvalue.IsSmallInt(v) || rtvalue.TypeOf(v) == BigIntType
}

// NormalizeInt demotes a big.Int result back to a small int when it fits,
// otherwise boxes it. Every arithmetic op that can overflow runs its
// result through this boundary.
func NormalizeInt(n *big.Int) rtvalue.Value {
	if n.IsInt64() {
		return rtvalue.Int(n.Int64())
	}
	return NewBigInt(n)
}

func init() {
	BigIntType.Equality = func(a, b rtvalue.Value) bool { return AsBig(a).Cmp(AsBig(b)) == 0 }
	BigIntType.Print = func(v rtvalue.Value) string { return bigIntOf(v).N.String() }
	BigIntType.Hash = func(v rtvalue.Value) uint64 {
		n := bigIntOf(v).N
		if n.IsInt64() {
			return uint64(n.Int64())
		}
		return uint64(n.Bits()[0])
	}
}
