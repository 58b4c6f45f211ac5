// Package trace records what the front end is doing as a stream of span and
// point events. It is the project's logging channel: the CLI wires a
// StreamTracer to a file or stderr with --trace, and the driver and parser
// open spans at their phase boundaries.
//
// Scopes go from coarse to fine:
//
//	ScopeDriver  one CLI command
//	ScopePass    load / lex+parse / cache per file
//	ScopeDecl    one top-level declaration inside the parser
//
// The Level decides which scopes are emitted. With LevelOff every call site
// gets the Nop tracer and Begin/End cost a nil check.
package trace
