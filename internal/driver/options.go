package driver

import (
	"g5/internal/observ"
	"g5/internal/parser"
	"g5/internal/trace"
)

// Options configure ParseFile and CheckDir.
type Options struct {
	// Cache stores check verdicts by content hash; nil disables caching.
	Cache *Cache
	// Tracer defaults to the tracer carried by the context.
	Tracer trace.Tracer
	// Timer, when set, accumulates load, lex+parse and cache phases.
	Timer *observ.Timer
	// Progress receives per-file events from CheckDir. It is called from
	// worker goroutines.
	Progress func(Event)
	// MaxErrors caps every diagnostic bag; 0 means unlimited.
	MaxErrors int
	// Jobs bounds parallel workers; 0 means GOMAXPROCS.
	Jobs int
	// Binary selects the operator grouping used by the parser.
	Binary parser.BinaryMode
	// TraceDecls opens a detail span per top-level declaration.
	TraceDecls bool
}

func (o *Options) tracer(fallback trace.Tracer) trace.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}
	return fallback
}

func (o *Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress(ev)
	}
}
