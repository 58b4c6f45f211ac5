// Package token defines the lexical vocabulary of the g5 front end.
// Invariants:
//   - Token.Text is the exact source substring consumed for the token.
//   - Synthetic semicolons carry "\n" (inserted at a line break) or "" (end of input).
//   - Predeclared names (int, string, true, nil, ...) are identifiers; only the
//     25 reserved words have keyword kinds.
package token
