package compiler

import "testing"

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer("test.alc", src)
	var toks []Token
	for {
		tok, err := lex.Scan()
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func TestLexBasicTokens(t *testing.T) {
	toks := scanAll(t, "+ - * / & = == != < > <= >= << >> | ^ ~ ! && || ; , { } ( )")
	want := []TokenKind{
		TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_AMP, TOK_ASSIGN, TOK_EQ,
		TOK_NE, TOK_LT, TOK_GT, TOK_LE, TOK_GE, TOK_LSHIFT, TOK_RSHIFT,
		TOK_PIPE, TOK_CARET, TOK_TILDE, TOK_BANG, TOK_ANDAND, TOK_OROR,
		TOK_SEMI, TOK_COMMA, TOK_LBRACE, TOK_RBRACE, TOK_LPAREN, TOK_RPAREN,
		TOK_EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexKeywordsVsIdentifiers(t *testing.T) {
	toks := scanAll(t, "int32 uint8 if else for while true false printf void foo _bar9")
	want := []TokenKind{
		TOK_INT32, TOK_UINT8, TOK_IF, TOK_ELSE, TOK_FOR, TOK_WHILE, TOK_TRUE,
		TOK_FALSE, TOK_PRINTF, TOK_VOID, TOK_IDENT, TOK_IDENT, TOK_EOF,
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[10].Lexeme != "foo" || toks[11].Lexeme != "_bar9" {
		t.Errorf("identifier lexemes wrong: %q %q", toks[10].Lexeme, toks[11].Lexeme)
	}
}

func TestLexNumericLiterals(t *testing.T) {
	tests := []struct {
		src     string
		numK    NumKind
		intVal  int64
		dblVal  float64
		isFloat bool
	}{
		{"127", NUM_INT, 127, 0, false},
		{"0x1A", NUM_INT, 26, 0, false},
		{"010", NUM_INT, 8, 0, false},
		{"-5", NUM_INT, -5, 0, false},
		{"3.14", NUM_FLT, 0, 3.14, true},
		{"18446744073709551615", NUM_UINT, -1, 0, false}, // stored bit pattern
	}
	for _, tt := range tests {
		toks := scanAll(t, tt.src)
		tok := toks[0]
		if tok.Kind != TOK_NUMLIT {
			t.Fatalf("%q: got kind %s, want NUMLIT", tt.src, tok.Kind)
		}
		if tok.NumK != tt.numK {
			t.Errorf("%q: got numkind %d, want %d", tt.src, tok.NumK, tt.numK)
		}
		if tt.isFloat {
			if tok.Num.DblVal != tt.dblVal {
				t.Errorf("%q: got %g, want %g", tt.src, tok.Num.DblVal, tt.dblVal)
			}
		} else if tok.Num.IntVal != tt.intVal {
			t.Errorf("%q: got %d, want %d", tt.src, tok.Num.IntVal, tt.intVal)
		}
	}
}

func TestLexCharLiteralsAndEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{`'x'`, 'x'},
		{`'\n'`, 10},
		{`'\t'`, 9},
		{`'\\'`, '\\'},
		{`'\0'`, 0},
		{`'\x41'`, 0x41},
	}
	for _, tt := range tests {
		toks := scanAll(t, tt.src)
		tok := toks[0]
		if tok.Kind != TOK_NUMLIT || tok.NumK != NUM_CHAR {
			t.Fatalf("%q: got %s/%d, want NUMLIT/NUM_CHAR", tt.src, tok.Kind, tok.NumK)
		}
		if tok.Num.IntVal != tt.want {
			t.Errorf("%q: got %d, want %d", tt.src, tok.Num.IntVal, tt.want)
		}
	}
}

func TestLexHexEscapeOutOfRange(t *testing.T) {
	lex := NewLexer("test.alc", `'\xFFF'`)
	if _, err := lex.Scan(); err == nil {
		t.Fatal("expected error for out-of-range \\x escape")
	}
}

func TestLexStringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello\nworld"`)
	if toks[0].Kind != TOK_STRLIT {
		t.Fatalf("got %s, want STRLIT", toks[0].Kind)
	}
	if toks[0].Lexeme != "hello\nworld" {
		t.Errorf("got %q, want %q", toks[0].Lexeme, "hello\nworld")
	}
}

func TestLexUnterminatedString(t *testing.T) {
	lex := NewLexer("test.alc", `"hello`)
	if _, err := lex.Scan(); err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestLexIdentifierTooLong(t *testing.T) {
	long := make([]byte, maxIdentLen+5)
	for i := range long {
		long[i] = 'a'
	}
	lex := NewLexer("test.alc", string(long))
	if _, err := lex.Scan(); err == nil {
		t.Fatal("expected error for overlong identifier")
	}
}

func TestLexLinemark(t *testing.T) {
	src := "# 42 \"foo.c\"\nx"
	lex := NewLexer("test.alc", src)
	tok, err := lex.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if tok.Kind != TOK_IDENT || tok.Lexeme != "x" {
		t.Fatalf("got %v, want identifier x", tok)
	}
	if lex.file != "foo.c" || lex.line != 42 {
		t.Errorf("got file=%s line=%d, want file=foo.c line=42", lex.file, lex.line)
	}
}

func TestLexLinemarkInternalFileIgnored(t *testing.T) {
	src := "# 42 \"<built-in>\"\nx"
	lex := NewLexer("test.alc", src)
	if _, err := lex.Scan(); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if lex.file != "test.alc" {
		t.Errorf("internal linemark should not update file, got %s", lex.file)
	}
}

func TestLexPeekPushback(t *testing.T) {
	lex := NewLexer("test.alc", "a b")
	p1, err := lex.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	p2, err := lex.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if p1 != p2 {
		t.Fatalf("repeated Peek returned different tokens: %v vs %v", p1, p2)
	}
	s1, err := lex.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if s1 != p1 {
		t.Fatalf("Scan after Peek returned %v, want %v", s1, p1)
	}
	s2, err := lex.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if s2.Lexeme != "b" {
		t.Fatalf("got %v, want identifier b", s2)
	}
}

func TestLexUnrecognizedCharacter(t *testing.T) {
	lex := NewLexer("test.alc", "@")
	if _, err := lex.Scan(); err == nil {
		t.Fatal("expected error for unrecognized character")
	}
}
