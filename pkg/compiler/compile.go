package compiler

import "strings"

// Debug selects which internal dumps Compile appends to its debug output,
// named after the external dump switches this package exposes: "tok" for
// the raw token stream, "sym" for the final symbol table, "ast" for every
// parsed function body.
type Debug struct {
	Tokens  bool
	Symbols bool
	AST     bool
}

// Result is everything Compile produces: the generated IR text, ready to
// hand to a downstream assembler, and the combined debug dump requested by
// opts, if any.
type Result struct {
	IR    string
	Debug string
}

// Compile runs the whole pipeline -- lex, parse, generate -- over src,
// treating file as its name for diagnostics. The caller is expected to
// have already run any external preprocessor; this package never invokes
// one itself.
func Compile(file, src string, opts Debug) (*Result, error) {
	var dbg strings.Builder

	if opts.Tokens {
		lex := NewLexer(file, src)
		if err := lex.DumpTokens(&dbg); err != nil {
			return nil, err
		}
	}

	funcs, syms, err := Parse(file, src)
	if err != nil {
		return nil, err
	}

	if opts.AST {
		for _, f := range funcs {
			if f.Body == nil {
				continue
			}
			DumpAST(&dbg, f.Body, 0)
		}
	}
	if opts.Symbols {
		syms.Dump(&dbg)
	}

	ir, err := Generate(funcs, syms)
	if err != nil {
		return nil, err
	}

	return &Result{IR: ir, Debug: dbg.String()}, nil
}
