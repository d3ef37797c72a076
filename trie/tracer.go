package trie

// Tracer receives diagnostic output from Insert, Search and Dump. The
// capability is always injected by the caller; the package keeps no
// process-wide debug toggles, so multiple Trie instances can trace
// independently and tests can capture output deterministically.
type Tracer interface {
	Trace(format string, args ...any)
}

// TracerFunc adapts a plain function to the Tracer interface:
//
//	t.SetTracer(trie.TracerFunc(log.Printf))
type TracerFunc func(format string, args ...any)

// Trace implements Tracer.
func (f TracerFunc) Trace(format string, args ...any) {
	f(format, args...)
}
