// Package driver wires source loading, lexing and parsing into the entry
// points used by the command line: TokenizeFile, ParseFile and CheckDir.
package driver
