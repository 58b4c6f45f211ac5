package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                  Code = 1000
	LexIllegalChar           Code = 1001
	LexUnterminatedRune      Code = 1002
	LexUnterminatedString    Code = 1003
	LexUnterminatedRawString Code = 1004
	LexUnterminatedComment   Code = 1005
	LexBadEscape             Code = 1006
	LexBadEllipsis           Code = 1007
	LexBadNumber             Code = 1008

	// syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectPackage      Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectSemicolon    Code = 2004
	SynExpectRParen       Code = 2005
	SynExpectRBracket     Code = 2006
	SynExpectRBrace       Code = 2007
	SynExpectLBrace       Code = 2008
	SynExpectColon        Code = 2009
	SynExpectType         Code = 2010
	SynExpectExpression   Code = 2011
	SynExpectString       Code = 2012
	SynBadShortVarDecl    Code = 2013
	SynBadSimpleStmt      Code = 2014
	SynMixedParams        Code = 2015
	SynVariadicNotLast    Code = 2016
	SynDuplicateDefault   Code = 2017
	SynBadTypeSwitchGuard Code = 2018
	SynExpectDecl         Code = 2019

	// io
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexical information",
	LexIllegalChar:           "Illegal character",
	LexUnterminatedRune:      "Unterminated rune literal",
	LexUnterminatedString:    "Unterminated string literal",
	LexUnterminatedRawString: "Unterminated raw string literal",
	LexUnterminatedComment:   "Unterminated block comment",
	LexBadEscape:             "Illegal escape sequence",
	LexBadEllipsis:           "Malformed ellipsis",
	LexBadNumber:             "Malformed number literal",
	SynInfo:                  "Syntax information",
	SynUnexpectedToken:       "Unexpected token",
	SynExpectPackage:         "Expected package clause",
	SynExpectIdentifier:      "Expected identifier",
	SynExpectSemicolon:       "Expected semicolon",
	SynExpectRParen:          "Expected ')'",
	SynExpectRBracket:        "Expected ']'",
	SynExpectRBrace:          "Expected '}'",
	SynExpectLBrace:          "Expected '{'",
	SynExpectColon:           "Expected ':'",
	SynExpectType:            "Expected type",
	SynExpectExpression:      "Expected expression",
	SynExpectString:          "Expected string literal",
	SynBadShortVarDecl:       "Non-identifier on left side of :=",
	SynBadSimpleStmt:         "Malformed simple statement",
	SynMixedParams:           "Mixed named and unnamed parameters",
	SynVariadicNotLast:       "Variadic parameter must be last",
	SynDuplicateDefault:      "Multiple default clauses",
	SynBadTypeSwitchGuard:    "Use of .(type) outside type switch",
	SynExpectDecl:            "Expected declaration",
	IOLoadFileError:          "Failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether c belongs to the lexer range.
func (c Code) IsLexical() bool { return c >= LexInfo && c < SynInfo }
