package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a token produced after a lexical error.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	keywordBeg
	KwBreak       // break
	KwCase        // case
	KwChan        // chan
	KwConst       // const
	KwContinue    // continue
	KwDefault     // default
	KwDefer       // defer
	KwElse        // else
	KwFallthrough // fallthrough
	KwFor         // for
	KwFunc        // func
	KwGo          // go
	KwGoto        // goto
	KwIf          // if
	KwImport      // import
	KwInterface   // interface
	KwMap         // map
	KwPackage     // package
	KwRange       // range
	KwReturn      // return
	KwSelect      // select
	KwStruct      // struct
	KwSwitch      // switch
	KwType        // type
	KwVar         // var
	keywordEnd

	literalBeg
	IntLit    // 123, 0x1F, 0755
	FloatLit  // 3.14, 1e10, .5
	ImagLit   // 2i, 1.5i
	CharLit   // 'a'
	StringLit // "abc", `raw`
	literalEnd

	operatorBeg
	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	Amp      // &
	Pipe     // |
	Caret    // ^
	Shl      // <<
	Shr      // >>
	AmpCaret // &^

	PlusAssign     // +=
	MinusAssign    // -=
	StarAssign     // *=
	SlashAssign    // /=
	PercentAssign  // %=
	AmpAssign      // &=
	PipeAssign     // |=
	CaretAssign    // ^=
	ShlAssign      // <<=
	ShrAssign      // >>=
	AmpCaretAssign // &^=

	AndAnd      // &&
	OrOr        // ||
	Arrow       // <-
	PlusPlus    // ++
	MinusMinus  // --
	EqEq        // ==
	Lt          // <
	Gt          // >
	Assign      // =
	Bang        // !
	BangEq      // !=
	LtEq        // <=
	GtEq        // >=
	ColonAssign // :=
	Ellipsis    // ...

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;
	Dot       // .
	Colon     // :
	operatorEnd
)

var kindNames = [...]string{
	Invalid: "INVALID",
	EOF:     "EOF",
	Ident:   "IDENT",

	KwBreak:       "break",
	KwCase:        "case",
	KwChan:        "chan",
	KwConst:       "const",
	KwContinue:    "continue",
	KwDefault:     "default",
	KwDefer:       "defer",
	KwElse:        "else",
	KwFallthrough: "fallthrough",
	KwFor:         "for",
	KwFunc:        "func",
	KwGo:          "go",
	KwGoto:        "goto",
	KwIf:          "if",
	KwImport:      "import",
	KwInterface:   "interface",
	KwMap:         "map",
	KwPackage:     "package",
	KwRange:       "range",
	KwReturn:      "return",
	KwSelect:      "select",
	KwStruct:      "struct",
	KwSwitch:      "switch",
	KwType:        "type",
	KwVar:         "var",

	IntLit:    "INT",
	FloatLit:  "FLOAT",
	ImagLit:   "IMAG",
	CharLit:   "CHAR",
	StringLit: "STRING",

	Plus:     "+",
	Minus:    "-",
	Star:     "*",
	Slash:    "/",
	Percent:  "%",
	Amp:      "&",
	Pipe:     "|",
	Caret:    "^",
	Shl:      "<<",
	Shr:      ">>",
	AmpCaret: "&^",

	PlusAssign:     "+=",
	MinusAssign:    "-=",
	StarAssign:     "*=",
	SlashAssign:    "/=",
	PercentAssign:  "%=",
	AmpAssign:      "&=",
	PipeAssign:     "|=",
	CaretAssign:    "^=",
	ShlAssign:      "<<=",
	ShrAssign:      ">>=",
	AmpCaretAssign: "&^=",

	AndAnd:      "&&",
	OrOr:        "||",
	Arrow:       "<-",
	PlusPlus:    "++",
	MinusMinus:  "--",
	EqEq:        "==",
	Lt:          "<",
	Gt:          ">",
	Assign:      "=",
	Bang:        "!",
	BangEq:      "!=",
	LtEq:        "<=",
	GtEq:        ">=",
	ColonAssign: ":=",
	Ellipsis:    "...",

	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBrace:    "{",
	RBrace:    "}",
	Comma:     ",",
	Semicolon: ";",
	Dot:       ".",
	Colon:     ":",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is one of the 25 reserved words.
func (k Kind) IsKeyword() bool { return keywordBeg < k && k < keywordEnd }

// IsLiteral reports whether k is a basic literal class.
func (k Kind) IsLiteral() bool { return literalBeg < k && k < literalEnd }

// IsOperator reports whether k is an operator or punctuation symbol.
func (k Kind) IsOperator() bool { return operatorBeg < k && k < operatorEnd }

// IsAssignOp reports whether k is '=' or a compound assignment.
func (k Kind) IsAssignOp() bool {
	return k == Assign || (PlusAssign <= k && k <= AmpCaretAssign)
}

// IsUnaryOp reports whether k may prefix a unary expression.
func (k Kind) IsUnaryOp() bool {
	switch k {
	case Plus, Minus, Bang, Caret, Star, Amp, Arrow:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether k may join two operands.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case OrOr, AndAnd,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		Plus, Minus, Pipe, Caret,
		Star, Slash, Percent, Shl, Shr, Amp, AmpCaret:
		return true
	default:
		return false
	}
}

// TriggersSemicolon reports whether a newline after a token of kind k is
// converted into a semicolon.
func (k Kind) TriggersSemicolon() bool {
	switch k {
	case Ident, IntLit, FloatLit, ImagLit, CharLit, StringLit,
		KwBreak, KwContinue, KwFallthrough, KwReturn,
		PlusPlus, MinusMinus, RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}
