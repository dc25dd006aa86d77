package rtobjects

import "pyrtcore/internal/rtvalue"

// GeneratorObj is the runtime's sole suspension surface: a
// generator body runs on its own goroutine and hands values across an
// unbuffered channel one at a time, blocking after each yield until the
// consumer calls IterNext again. Suspension happens at user-level yields
// and resume is a re-entrant call into the interpreter on a single logical
// execution; only one side of the channel pair is ever runnable at a
// time, so there is no real concurrency here, just a coroutine built from
// a goroutine.
type GeneratorObj struct {
	rtvalue.Object
	body     func(yield func(rtvalue.Value) bool)
	results  chan genMsg
	resume   chan struct{}
	started  bool
	finished bool
	panicVal interface{}
}

type genMsg struct {
	value rtvalue.Value
	done  bool
}

var GeneratorType = &rtvalue.TypeDescriptor{Name: "generator"}

func init() {
	GeneratorType.Print = func(v rtvalue.Value) string { return "<generator>" }
	GeneratorType.GetIter = func(v rtvalue.Value) rtvalue.Value { return v }
	GeneratorType.IterNext = func(v rtvalue.Value) rtvalue.Value {
		g := generatorOf(v)
		return g.next()
	}
}

func generatorOf(v rtvalue.Value) *GeneratorObj { return (*GeneratorObj)(objPtr(v)) }

// NewGenerator wraps body as a generator object. body is expected to call
// its yield callback once per produced value, exactly like the yield
// callback rtobjects.NewYieldFunc boxes for native generator code.
func NewGenerator(body func(yield func(rtvalue.Value) bool)) rtvalue.Value {
	obj := &GeneratorObj{
		Object:  rtvalue.Object{Type: GeneratorType},
		body:    body,
		results: make(chan genMsg),
		resume:  make(chan struct{}),
	}
	return rtvalue.Heap(&obj.Object)
}

func (g *GeneratorObj) run() {
	defer close(g.results)
	defer func() {
		if r := recover(); r != nil {
			g.panicVal = r
		}
	}()
	g.body(g.yield)
}

func (g *GeneratorObj) yield(v rtvalue.Value) bool {
	g.results <- genMsg{value: v}
	_, ok := <-g.resume
	return ok
}

func (g *GeneratorObj) next() rtvalue.Value {
	if g.finished {
		return rtvalue.StopIterMarker
	}
	if !g.started {
		g.started = true
		go g.run()
	} else {
		g.resume <- struct{}{}
	}
	msg, ok := <-g.results
	if !ok {
		g.finished = true
		if g.panicVal != nil {
			panic(g.panicVal)
		}
		return rtvalue.StopIterMarker
	}
	return msg.value
}
