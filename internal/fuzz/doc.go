// Package fuzztests holds the fuzz harnesses for the lexer and the parser.
// They feed arbitrary bytes through the front end and fail on panics, on
// hangs and on successful parses whose spans do not nest.
package fuzztests
