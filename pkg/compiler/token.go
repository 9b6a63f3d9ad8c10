package compiler

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -output=tokenkind_string.go

// TokenKind tags every token this lexer can produce.
type TokenKind int

const (
	TOK_EOF TokenKind = iota

	// Punctuation
	TOK_SEMI
	TOK_LBRACE
	TOK_RBRACE
	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA

	// Operators
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_ASSIGN
	TOK_EQ
	TOK_NE
	TOK_LT
	TOK_GT
	TOK_LE
	TOK_GE
	TOK_LSHIFT
	TOK_RSHIFT
	TOK_AMP
	TOK_PIPE
	TOK_CARET
	TOK_TILDE
	TOK_BANG
	TOK_ANDAND
	TOK_OROR

	// Keywords: the eight built-in type names
	TOK_VOID
	TOK_BOOL
	TOK_INT8
	TOK_INT16
	TOK_INT32
	TOK_INT64
	TOK_FLT32
	TOK_FLT64

	// Keywords: unsigned variants of the integer type names
	TOK_UINT8
	TOK_UINT16
	TOK_UINT32
	TOK_UINT64

	// Remaining keywords
	TOK_IF
	TOK_ELSE
	TOK_FOR
	TOK_WHILE
	TOK_TRUE
	TOK_FALSE
	TOK_PRINTF

	// Identifiers and literals
	TOK_IDENT
	TOK_NUMLIT
	TOK_STRLIT
)

// keywords maps the exact spelling of every keyword to its TokenKind,
// bucketed by first byte so scanIdent can reject non-keywords quickly
// without scanning the whole table -- the same early-rejection shape as
// a first-letter-sorted keyword table, expressed as a Go map of slices.
var keywords = map[byte][]struct {
	text string
	kind TokenKind
}{
	'b': {{"bool", TOK_BOOL}},
	'e': {{"else", TOK_ELSE}},
	'f': {{"flt32", TOK_FLT32}, {"flt64", TOK_FLT64}, {"for", TOK_FOR}, {"false", TOK_FALSE}},
	'i': {{"int8", TOK_INT8}, {"int16", TOK_INT16}, {"int32", TOK_INT32}, {"int64", TOK_INT64}, {"if", TOK_IF}},
	'p': {{"printf", TOK_PRINTF}},
	't': {{"true", TOK_TRUE}},
	'u': {{"uint8", TOK_UINT8}, {"uint16", TOK_UINT16}, {"uint32", TOK_UINT32}, {"uint64", TOK_UINT64}},
	'v': {{"void", TOK_VOID}},
	'w': {{"while", TOK_WHILE}},
}

// lookupKeyword returns the keyword TokenKind for text, or false if text
// is an ordinary identifier.
func lookupKeyword(text string) (TokenKind, bool) {
	if text == "" {
		return 0, false
	}
	for _, cand := range keywords[text[0]] {
		if cand.text == text {
			return cand.kind, true
		}
	}
	return 0, false
}

// NumKind tags the sub-kind of a NUMLIT token's payload.
type NumKind int

const (
	NUM_NONE NumKind = iota
	NUM_INT          // signed integer literal
	NUM_UINT         // unsigned integer literal (magnitude exceeded int64 range)
	NUM_FLT          // floating-point literal
	NUM_CHAR         // character literal, e.g. 'x'
)

// NumVal is the 64-bit union backing both a Token's numeric payload and an
// ASTnode's literal value: exactly one of IntVal/DblVal is meaningful,
// selected by the accompanying NumKind.
type NumVal struct {
	IntVal int64
	DblVal float64
}

// Token is a tagged value with an optional owned string payload
// (identifiers, string literals) and an optional numeric payload.
type Token struct {
	Kind   TokenKind
	Line   int
	Lexeme string  // identifier name or string literal's decoded contents
	Num    NumVal  // numeric literal value
	NumK   NumKind // which field of Num is meaningful, and how to interpret it
}

func (t Token) String() string {
	switch t.Kind {
	case TOK_IDENT, TOK_STRLIT:
		return t.Kind.String() + " " + t.Lexeme
	case TOK_NUMLIT:
		if t.NumK == NUM_FLT {
			return t.Kind.String() + " " + ftoa(t.Num.DblVal)
		}
		return t.Kind.String() + " " + itoa(t.Num.IntVal)
	default:
		return t.Kind.String()
	}
}
