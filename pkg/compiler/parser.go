package compiler

// Parser is a recursive-descent parser consuming one token of lookahead
// from a Lexer and building a function's AST directly against a shared
// SymbolTable: there is no separate name-resolution pass.
type Parser struct {
	lex  *Lexer
	syms *SymbolTable
	file string
}

// Parse scans and parses a whole compilation unit, returning one FuncDecl
// per function declaration (prototype-only declarations have a nil Body)
// in source order, plus the symbol table built while parsing.
func Parse(file, src string) ([]*FuncDecl, *SymbolTable, error) {
	lex := NewLexer(file, src)
	syms := NewSymbolTable()
	p := &Parser{lex: lex, syms: syms, file: file}

	var funcs []*FuncDecl
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, nil, err
		}
		if tok.Kind == TOK_EOF {
			return funcs, syms, nil
		}
		fd, err := p.parseFunctionDecl()
		if err != nil {
			return nil, nil, err
		}
		funcs = append(funcs, fd)
	}
}

func (p *Parser) errf(tok Token, format string, args ...any) error {
	return fatalf(p.file, tok.Line, format, args...)
}

// expect scans the next token and fails unless it has kind k.
func (p *Parser) expect(k TokenKind, what string) (Token, error) {
	tok, err := p.lex.Scan()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != k {
		return Token{}, p.errf(tok, "Expected %s, got %s", what, tok)
	}
	return tok, nil
}

func (p *Parser) semi() error   { _, err := p.expect(TOK_SEMI, ";"); return err }
func (p *Parser) lbrace() error { _, err := p.expect(TOK_LBRACE, "{"); return err }
func (p *Parser) rbrace() error { _, err := p.expect(TOK_RBRACE, "}"); return err }
func (p *Parser) lparen() error { _, err := p.expect(TOK_LPAREN, "("); return err }
func (p *Parser) rparen() error { _, err := p.expect(TOK_RPAREN, ")"); return err }
func (p *Parser) comma() error  { _, err := p.expect(TOK_COMMA, ","); return err }
func (p *Parser) ident() (Token, error) {
	return p.expect(TOK_IDENT, "identifier")
}

// isTypeKeyword reports whether k begins a typed_declaration.
func isTypeKeyword(k TokenKind) bool {
	switch k {
	case TOK_VOID, TOK_BOOL,
		TOK_INT8, TOK_INT16, TOK_INT32, TOK_INT64,
		TOK_FLT32, TOK_FLT64,
		TOK_UINT8, TOK_UINT16, TOK_UINT32, TOK_UINT64:
		return true
	}
	return false
}

// parseType consumes one type keyword and returns its Type singleton.
func (p *Parser) parseType() (*Type, error) {
	tok, err := p.lex.Scan()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TOK_VOID:
		return TyVoid, nil
	case TOK_BOOL:
		return TyBool, nil
	case TOK_INT8:
		return TyInt8, nil
	case TOK_INT16:
		return TyInt16, nil
	case TOK_INT32:
		return TyInt32, nil
	case TOK_INT64:
		return TyInt64, nil
	case TOK_FLT32:
		return TyFlt32, nil
	case TOK_FLT64:
		return TyFlt64, nil
	case TOK_UINT8:
		return TyUint8, nil
	case TOK_UINT16:
		return TyUint16, nil
	case TOK_UINT32:
		return TyUint32, nil
	case TOK_UINT64:
		return TyUint64, nil
	}
	return nil, p.errf(tok, "Expected type, got %s", tok)
}

// parseTypedDecl parses "type IDENT".
func (p *Parser) parseTypedDecl() (*Type, string, int, error) {
	ty, err := p.parseType()
	if err != nil {
		return nil, "", 0, err
	}
	tok, err := p.ident()
	if err != nil {
		return nil, "", 0, err
	}
	return ty, tok.Lexeme, tok.Line, nil
}

// linkChain wires the Next pointers of params in order, so the resulting
// list walks in declaration order.
func linkChain(params []*Sym) *Sym {
	for i := 0; i < len(params)-1; i++ {
		params[i].Next = params[i+1]
	}
	if len(params) == 0 {
		return nil
	}
	return params[0]
}

// parsePrototype parses "type IDENT '(' (void | typed_declaration_list) ')'".
func (p *Parser) parsePrototype() (*Type, string, []*Sym, int, error) {
	rettype, name, line, err := p.parseTypedDecl()
	if err != nil {
		return nil, "", nil, 0, err
	}
	if err := p.lparen(); err != nil {
		return nil, "", nil, 0, err
	}

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, "", nil, 0, err
	}

	var params []*Sym
	if peek.Kind == TOK_VOID {
		p.lex.Scan()
	} else if peek.Kind != TOK_RPAREN {
		for {
			pty, pname, _, err := p.parseTypedDecl()
			if err != nil {
				return nil, "", nil, 0, err
			}
			params = append(params, &Sym{Name: pname, SymKind: ST_VARIABLE, Type: pty})

			nt, err := p.lex.Peek()
			if err != nil {
				return nil, "", nil, 0, err
			}
			if nt.Kind == TOK_COMMA {
				p.lex.Scan()
				continue
			}
			break
		}
	}
	if err := p.rparen(); err != nil {
		return nil, "", nil, 0, err
	}
	return rettype, name, params, line, nil
}

// addOrMatchFunction installs name's first declaration, or checks that a
// repeated one matches the return type, parameter count, and every
// parameter's name and type exactly.
func (p *Parser) addOrMatchFunction(rettype *Type, name string, params []*Sym, line int) (*Sym, error) {
	existing := p.syms.FindSymbol(name)
	if existing == nil {
		sym := &Sym{Name: name, SymKind: ST_FUNCTION, Type: rettype, Count: len(params)}
		sym.Members = linkChain(params)
		if err := p.syms.register(sym); err != nil {
			return nil, fatalf(p.file, line, "%v", err)
		}
		return sym, nil
	}

	if existing.SymKind != ST_FUNCTION {
		return nil, fatalf(p.file, line, "%s redeclared as a function", name)
	}
	if existing.Type != rettype {
		return nil, fatalf(p.file, line, "%s redeclared with return type %s, previously %s",
			name, TypeName(rettype), TypeName(existing.Type))
	}
	if existing.Count != len(params) {
		return nil, fatalf(p.file, line, "%s redeclared with %d parameters, previously %d",
			name, len(params), existing.Count)
	}
	ep := existing.Members
	for _, np := range params {
		if ep.Name != np.Name {
			return nil, fatalf(p.file, line, "%s redeclared with parameter %s, previously %s",
				name, np.Name, ep.Name)
		}
		if ep.Type != np.Type {
			return nil, fatalf(p.file, line, "%s redeclared with parameter %s of type %s, previously %s",
				name, np.Name, TypeName(np.Type), TypeName(ep.Type))
		}
		ep = ep.Next
	}
	return existing, nil
}

// parseFunctionDecl parses one top-level function_declaration: a
// prototype followed by either ';' (prototype only) or a body. A function
// may be declared more than once as long as every declaration matches,
// but only one of them may carry a body.
func (p *Parser) parseFunctionDecl() (*FuncDecl, error) {
	rettype, name, params, line, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}

	sym, err := p.addOrMatchFunction(rettype, name, params, line)
	if err != nil {
		return nil, err
	}

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if peek.Kind == TOK_SEMI {
		p.lex.Scan()
		return &FuncDecl{Sym: sym, Params: params}, nil
	}

	if sym.InitVal == 1 {
		return nil, fatalf(p.file, line, "%s already has a body", name)
	}
	if rettype != TyVoid {
		return nil, fatalf(p.file, line, "%s returns %s and cannot have a body", name, TypeName(rettype))
	}
	sym.InitVal = 1

	p.syms.NewScope(sym)
	body, err := p.parseStatementBlock()
	p.syms.EndScope()
	if err != nil {
		return nil, err
	}
	if body == nil {
		// An empty body still marks a definition, not a prototype.
		body = MkASTNode(A_GLUE, nil, nil, nil, p.file, line)
	}

	return &FuncDecl{Sym: sym, Params: params, Body: body}, nil
}

// parseStatementBlock parses "'{' declaration_stmt* procedural_stmt* '}'",
// chaining the declarations through Mid and attaching the procedural
// statements, joined by a right-leaning A_GLUE spine (a lone statement is
// not wrapped), to the Right child of the last declaration (or returning
// the statements directly if the block declares nothing).
func (p *Parser) parseStatementBlock() (*ASTNode, error) {
	if err := p.lbrace(); err != nil {
		return nil, err
	}

	var decls []*ASTNode
	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if !isTypeKeyword(peek.Kind) {
			break
		}
		d, err := p.parseDeclarationStmt()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}

	var stmts []*ASTNode
	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Kind == TOK_RBRACE {
			break
		}
		s, err := p.parseProceduralStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}

	if err := p.rbrace(); err != nil {
		return nil, err
	}

	var chain *ASTNode
	for i := len(stmts) - 1; i >= 0; i-- {
		if chain == nil {
			chain = stmts[i]
			continue
		}
		chain = MkASTNode(A_GLUE, stmts[i], nil, chain, stmts[i].File, stmts[i].Line)
	}

	if len(decls) == 0 {
		return chain, nil
	}
	for i := len(decls) - 1; i >= 0; i-- {
		if i == len(decls)-1 {
			decls[i].Right = chain
		} else {
			decls[i].Mid = decls[i+1]
		}
	}
	return decls[0], nil
}

// parseDeclarationStmt parses "typed_declaration '=' expression ';'".
func (p *Parser) parseDeclarationStmt() (*ASTNode, error) {
	ty, name, line, err := p.parseTypedDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOK_ASSIGN, "="); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.semi(); err != nil {
		return nil, err
	}
	return DeclarationStatement(p.syms, ty, name, e, p.file, line)
}

// DeclarationStatement widens e to ty, installs name as a new stack-homed
// local, and builds the A_LOCAL node that initializes it.
func DeclarationStatement(syms *SymbolTable, ty *Type, name string, e *ASTNode, file string, line int) (*ASTNode, error) {
	widened, err := WidenExpression(e, ty)
	if err != nil {
		return nil, err
	}
	sym, err := syms.AddSymbol(name, ST_VARIABLE, ty)
	if err != nil {
		return nil, fatalf(file, line, "%v", err)
	}
	sym.HasAddr = true

	n := MkASTNode(A_LOCAL, widened, nil, nil, file, line)
	n.Sym = sym
	n.Type = ty
	return n, nil
}

// parseVariableRef resolves IDENT against the symbol table, producing a
// non-rvalue A_IDENT leaf suitable as an assignment target.
func (p *Parser) parseVariableRef() (*ASTNode, error) {
	tok, err := p.ident()
	if err != nil {
		return nil, err
	}
	sym := p.syms.FindSymbol(tok.Lexeme)
	if sym == nil {
		return nil, p.errf(tok, "unknown variable %s", tok.Lexeme)
	}
	if sym.SymKind != ST_VARIABLE {
		return nil, p.errf(tok, "%s is not a variable", tok.Lexeme)
	}
	return MkASTLeaf(A_IDENT, sym.Type, false, sym, 0, p.file, tok.Line), nil
}

// AssignmentStatement widens e to v's declared type and turns the A_IDENT
// leaf v into an A_ASSIGN node in place.
func AssignmentStatement(v, e *ASTNode) (*ASTNode, error) {
	widened, err := WidenExpression(e, v.Sym.Type)
	if err != nil {
		return nil, err
	}
	v.Op = A_ASSIGN
	v.Left = widened
	v.Type = v.Sym.Type
	return v, nil
}

// parseShortAssignStmt parses "IDENT '=' expression" with no trailing ';',
// used for a for-loop's increment clause.
func (p *Parser) parseShortAssignStmt() (*ASTNode, error) {
	v, err := p.parseVariableRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOK_ASSIGN, "="); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return AssignmentStatement(v, e)
}

// parseAssignStmt parses a full "assign_stmt ';'".
func (p *Parser) parseAssignStmt() (*ASTNode, error) {
	n, err := p.parseShortAssignStmt()
	if err != nil {
		return nil, err
	}
	if err := p.semi(); err != nil {
		return nil, err
	}
	return n, nil
}

// PrintStatement builds an A_PRINT node, widening a flt32 argument to
// flt64 to match the variadic C calling convention the backend targets.
func PrintStatement(s, e *ASTNode) (*ASTNode, error) {
	if e.Type == TyFlt32 {
		widened, err := WidenType(e, TyFlt64)
		if err != nil {
			return nil, err
		}
		e = widened
	}
	return MkASTNode(A_PRINT, s, nil, e, s.File, s.Line), nil
}

// parsePrintStmt parses "'printf' '(' STRLIT ',' expression ')' ';'".
func (p *Parser) parsePrintStmt() (*ASTNode, error) {
	kw, err := p.expect(TOK_PRINTF, "printf")
	if err != nil {
		return nil, err
	}
	if err := p.lparen(); err != nil {
		return nil, err
	}
	strtok, err := p.expect(TOK_STRLIT, "string literal")
	if err != nil {
		return nil, err
	}
	if err := p.comma(); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.rparen(); err != nil {
		return nil, err
	}
	if err := p.semi(); err != nil {
		return nil, err
	}
	strNode := &ASTNode{Op: A_STRLIT, Strlit: strtok.Lexeme, File: p.file, Line: kw.Line}
	return PrintStatement(strNode, e)
}

// parseIfStmt parses "'if' '(' relational_expression ')' statement_block
// ('else' statement_block)?".
func (p *Parser) parseIfStmt() (*ASTNode, error) {
	kw, err := p.expect(TOK_IF, "if")
	if err != nil {
		return nil, err
	}
	if err := p.lparen(); err != nil {
		return nil, err
	}
	cond, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if err := p.rparen(); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ASTNode
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if peek.Kind == TOK_ELSE {
		p.lex.Scan()
		elseBlock, err = p.parseStatementBlock()
		if err != nil {
			return nil, err
		}
		if elseBlock == nil {
			// Keep an empty else clause distinct from having none.
			elseBlock = MkASTNode(A_GLUE, nil, nil, nil, p.file, kw.Line)
		}
	}

	return MkASTNode(A_IF, cond, thenBlock, elseBlock, p.file, kw.Line), nil
}

// parseWhileStmt parses "'while' '(' relational_expression ')' statement_block".
func (p *Parser) parseWhileStmt() (*ASTNode, error) {
	kw, err := p.expect(TOK_WHILE, "while")
	if err != nil {
		return nil, err
	}
	if err := p.lparen(); err != nil {
		return nil, err
	}
	cond, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if err := p.rparen(); err != nil {
		return nil, err
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return MkASTNode(A_WHILE, cond, body, nil, p.file, kw.Line), nil
}

// parseForStmt parses "'for' '(' assign_stmt relational_expression ';'
// short_assign_stmt ')' statement_block", lowering it to an A_FOR node
// whose Left is the loop condition, Mid is A_GLUE(body, increment), and
// Right is the initializer, run once before codegen enters the while loop
// the for is otherwise identical to.
func (p *Parser) parseForStmt() (*ASTNode, error) {
	kw, err := p.expect(TOK_FOR, "for")
	if err != nil {
		return nil, err
	}
	if err := p.lparen(); err != nil {
		return nil, err
	}
	init, err := p.parseAssignStmt()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if err := p.semi(); err != nil {
		return nil, err
	}
	incr, err := p.parseShortAssignStmt()
	if err != nil {
		return nil, err
	}
	if err := p.rparen(); err != nil {
		return nil, err
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}

	glue := MkASTNode(A_GLUE, body, nil, incr, p.file, kw.Line)
	return MkASTNode(A_FOR, cond, glue, init, p.file, kw.Line), nil
}

// parseFunctionCallStmt parses "'(' expression_list? ')' ';'" for a call
// whose callee name has already been scanned as nametok. Every argument,
// including the last, is wrapped in its own A_GLUE node so genFuncCall can
// walk a uniform chain regardless of argument count.
func (p *Parser) parseFunctionCallStmt(nametok Token) (*ASTNode, error) {
	if err := p.lparen(); err != nil {
		return nil, err
	}

	var args []*ASTNode
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if peek.Kind != TOK_RPAREN {
		for {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, e)

			nt, err := p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if nt.Kind == TOK_COMMA {
				p.lex.Scan()
				continue
			}
			break
		}
	}
	if err := p.rparen(); err != nil {
		return nil, err
	}
	if err := p.semi(); err != nil {
		return nil, err
	}

	var right *ASTNode
	for i := len(args) - 1; i >= 0; i-- {
		right = MkASTNode(A_GLUE, args[i], nil, right, p.file, nametok.Line)
	}
	nameNode := &ASTNode{Strlit: nametok.Lexeme, File: p.file, Line: nametok.Line}
	return MkASTNode(A_FUNCCALL, nameNode, nil, right, p.file, nametok.Line), nil
}

// parseIdentStmt disambiguates the two procedural_stmt forms that start
// with IDENT: an assign_stmt (IDENT '=' ...) from a function_call
// (IDENT '(' ...), by scanning the identifier then peeking one further
// token.
func (p *Parser) parseIdentStmt() (*ASTNode, error) {
	tok, err := p.lex.Scan()
	if err != nil {
		return nil, err
	}
	nt, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	switch nt.Kind {
	case TOK_ASSIGN:
		sym := p.syms.FindSymbol(tok.Lexeme)
		if sym == nil {
			return nil, p.errf(tok, "unknown variable %s", tok.Lexeme)
		}
		if sym.SymKind != ST_VARIABLE {
			return nil, p.errf(tok, "%s is not a variable", tok.Lexeme)
		}
		v := MkASTLeaf(A_IDENT, sym.Type, false, sym, 0, p.file, tok.Line)
		p.lex.Scan()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.semi(); err != nil {
			return nil, err
		}
		return AssignmentStatement(v, e)
	case TOK_LPAREN:
		return p.parseFunctionCallStmt(tok)
	}
	return nil, p.errf(nt, "Expected '=' or '(' after identifier, got %s", nt)
}

// parseProceduralStmt dispatches on the leading token of a procedural_stmt.
func (p *Parser) parseProceduralStmt() (*ASTNode, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	switch peek.Kind {
	case TOK_PRINTF:
		return p.parsePrintStmt()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileStmt()
	case TOK_FOR:
		return p.parseForStmt()
	case TOK_IDENT:
		return p.parseIdentStmt()
	}
	return nil, p.errf(peek, "Expected statement, got %s", peek)
}

// parseExpression parses the whole six-level expression grammar, starting
// at bitwise_expression.
func (p *Parser) parseExpression() (*ASTNode, error) {
	return p.parseBitwise()
}

// parseBitwise parses "['~'] relational_expression (('&'|'|'|'^') relational_expression)*".
func (p *Parser) parseBitwise() (*ASTNode, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	invert := peek.Kind == TOK_TILDE
	if invert {
		p.lex.Scan()
	}

	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if invert {
		left = UnarOp(left, A_INVERT)
	}

	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		var op ASTOp
		switch peek.Kind {
		case TOK_AMP:
			op = A_AND
		case TOK_PIPE:
			op = A_OR
		case TOK_CARET:
			op = A_XOR
		default:
			return left, nil
		}
		p.lex.Scan()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left, err = BinOp(left, right, op)
		if err != nil {
			return nil, err
		}
	}
}

// parseRelational parses "['!'] shift_expression (relop shift_expression)?":
// relational comparisons don't chain, unlike every other expression level.
func (p *Parser) parseRelational() (*ASTNode, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	not := peek.Kind == TOK_BANG
	if not {
		p.lex.Scan()
	}

	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	if not {
		left = UnarOp(left, A_NOT)
		left.Type = TyBool
	}

	peek, err = p.lex.Peek()
	if err != nil {
		return nil, err
	}
	var op ASTOp
	switch peek.Kind {
	case TOK_EQ:
		op = A_EQ
	case TOK_NE:
		op = A_NE
	case TOK_LT:
		op = A_LT
	case TOK_GT:
		op = A_GT
	case TOK_LE:
		op = A_LE
	case TOK_GE:
		op = A_GE
	default:
		return left, nil
	}
	p.lex.Scan()
	right, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	return BinOp(left, right, op)
}

// parseShift parses "additive_expression (('<<'|'>>') additive_expression)*".
func (p *Parser) parseShift() (*ASTNode, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		var op ASTOp
		switch peek.Kind {
		case TOK_LSHIFT:
			op = A_LSHIFT
		case TOK_RSHIFT:
			op = A_RSHIFT
		default:
			return left, nil
		}
		p.lex.Scan()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left, err = BinOp(left, right, op)
		if err != nil {
			return nil, err
		}
	}
}

// parseAdditive parses "['+'|'-'] multiplicative_expression (('+'|'-') multiplicative_expression)*".
func (p *Parser) parseAdditive() (*ASTNode, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	neg := peek.Kind == TOK_MINUS
	if neg || peek.Kind == TOK_PLUS {
		p.lex.Scan()
	}

	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	if neg {
		left = UnarOp(left, A_NEGATE)
	}

	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		var op ASTOp
		switch peek.Kind {
		case TOK_PLUS:
			op = A_ADD
		case TOK_MINUS:
			op = A_SUBTRACT
		default:
			return left, nil
		}
		p.lex.Scan()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left, err = BinOp(left, right, op)
		if err != nil {
			return nil, err
		}
	}
}

// parseMultiplicative parses "factor (('*'|'/') factor)*".
func (p *Parser) parseMultiplicative() (*ASTNode, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		var op ASTOp
		switch peek.Kind {
		case TOK_STAR:
			op = A_MULTIPLY
		case TOK_SLASH:
			op = A_DIVIDE
		default:
			return left, nil
		}
		p.lex.Scan()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left, err = BinOp(left, right, op)
		if err != nil {
			return nil, err
		}
	}
}

// parseFactor parses "NUMLIT | 'true' | 'false' | variable".
func (p *Parser) parseFactor() (*ASTNode, error) {
	tok, err := p.lex.Scan()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TOK_NUMLIT:
		ty := ParseLitval(tok)
		n := MkASTLeaf(A_NUMLIT, ty, true, nil, tok.Num.IntVal, p.file, tok.Line)
		n.LitVal = tok.Num
		return n, nil
	case TOK_TRUE:
		return MkASTLeaf(A_NUMLIT, TyBool, true, nil, 1, p.file, tok.Line), nil
	case TOK_FALSE:
		return MkASTLeaf(A_NUMLIT, TyBool, true, nil, 0, p.file, tok.Line), nil
	case TOK_IDENT:
		sym := p.syms.FindSymbol(tok.Lexeme)
		if sym == nil {
			return nil, p.errf(tok, "unknown variable %s", tok.Lexeme)
		}
		if sym.SymKind != ST_VARIABLE {
			return nil, p.errf(tok, "%s is not a variable", tok.Lexeme)
		}
		return MkASTLeaf(A_IDENT, sym.Type, true, sym, 0, p.file, tok.Line), nil
	}
	return nil, p.errf(tok, "Expected expression, got %s", tok)
}
