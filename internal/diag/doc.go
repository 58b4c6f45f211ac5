// Package diag defines the diagnostic model shared by the lexer, parser and
// driver.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string form (LEX1003, SYN2012, ...), a message and the primary span. Phases
// emit through a Reporter so they never depend on storage; BagReporter
// collects into a Bag which the CLI sorts and prints via internal/diagfmt.
//
// The front end is fail-fast. Every core diagnostic is SevError and the
// first one aborts the parse; Error wraps that diagnostic as a Go error with
// its resolved position so callers can use errors.As instead of inspecting
// bags.
package diag
