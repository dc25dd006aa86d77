package rtobjects

import (
	"unsafe"

	"pyrtcore/internal/rtvalue"
)

// objPtr recovers the concrete heap struct's address from a Value,
// relying on every concrete type here embedding rtvalue.Object as its
// first field, the "first field is the type header" layout every heap
// object follows. Callers must have already checked the value's type
// matches the struct being cast to.
func objPtr(v rtvalue.Value) unsafe.Pointer {
	return unsafe.Pointer(rtvalue.AsHeapObj(v))
}
