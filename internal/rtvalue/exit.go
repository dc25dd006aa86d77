package rtvalue

// Raised is the panic payload used for the runtime's non-local exit
// contract: every raise carries an exception Value and unwinds to the
// nearest recover point, the same scoped-unwind shape a setjmp/longjmp
// exception mechanism provides. Go's panic/recover is the natural
// target-language expression of that, so the core raises by panicking
// with a Raised rather than threading an error return through every
// dispatch slot.
type Raised struct {
	Value Value
}

// Raise installs exc as the active exception and unwinds to the nearest
// Recover/Protect point.
func Raise(exc Value) {
	panic(Raised{Value: exc})
}

// Recover converts a recovered panic into (exception, true) if it was a
// Raised, or re-panics anything else: an internal assertion failure is
// fatal and must not be swallowed here.
func Recover(r interface{}) (Value, bool) {
	if r == nil {
		return Null, false
	}
	if raised, ok := r.(Raised); ok {
		return raised.Value, true
	}
	panic(r)
}

// Protect runs fn with the given locals/globals swap scoped such that the
// restore happens on every exit path, including an exception unwind:
// locals switching is caller responsibility, scoped acquisition with
// guaranteed restore on all exit paths. restore is always called via
// defer before Protect returns or re-panics.
func Protect(fn func(), restore func()) (exc Value, caught bool) {
	defer restore()
	defer func() {
		if r := recover(); r != nil {
			exc, caught = Recover(r)
		}
	}()
	fn()
	return Null, false
}
