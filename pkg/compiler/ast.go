package compiler

import (
	"fmt"
	"strings"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ASTOp -output=astop_string.go

// ASTOp tags every AST node's operation.
type ASTOp int

const (
	A_NONE ASTOp = iota
	A_ASSIGN
	A_CAST
	A_ADD
	A_SUBTRACT
	A_MULTIPLY
	A_DIVIDE
	A_NEGATE
	A_EQ
	A_NE
	A_LT
	A_GT
	A_LE
	A_GE
	A_NOT
	A_AND
	A_OR
	A_XOR
	A_INVERT
	A_LSHIFT
	A_RSHIFT
	A_NUMLIT
	A_IDENT
	A_PRINT
	A_GLUE
	A_IF
	A_WHILE
	A_FOR
	A_TYPE
	A_STRLIT
	A_LOCAL
	A_FUNCCALL
)

// ASTNode is a tagged tree node: an operation, a resolved type (nil until
// the type engine assigns one), an rvalue bit, up to three children, an
// optional symbol reference, an optional literal value, and an optional
// owned string payload (identifier name before resolution, string literal
// text, or a print format string).
type ASTNode struct {
	Op     ASTOp
	Type   *Type
	Rvalue bool

	Left  *ASTNode
	Mid   *ASTNode
	Right *ASTNode

	Sym    *Sym
	LitVal NumVal
	Strlit string

	File string
	Line int
}

// MkASTNode builds a generic, untyped AST node.
func MkASTNode(op ASTOp, left, mid, right *ASTNode, file string, line int) *ASTNode {
	return &ASTNode{Op: op, Left: left, Mid: mid, Right: right, File: file, Line: line}
}

// MkASTLeaf builds a leaf AST node carrying a type, rvalue bit, optional
// symbol, and a literal integer value.
func MkASTLeaf(op ASTOp, ty *Type, rvalue bool, sym *Sym, intval int64, file string, line int) *ASTNode {
	n := MkASTNode(op, nil, nil, nil, file, line)
	n.Type = ty
	n.Rvalue = rvalue
	n.Sym = sym
	n.LitVal.IntVal = intval
	return n
}

// BinOp builds a binary operation node and infers its type from its
// children via AddType.
func BinOp(l, r *ASTNode, op ASTOp) (*ASTNode, error) {
	n := MkASTNode(op, l, nil, r, l.File, l.Line)
	n.Rvalue = true
	if err := AddType(n); err != nil {
		return nil, err
	}
	return n, nil
}

// UnarOp builds a unary operation node, taking its type from its operand.
func UnarOp(l *ASTNode, op ASTOp) *ASTNode {
	n := MkASTNode(op, l, nil, nil, l.File, l.Line)
	n.Type = l.Type
	n.Rvalue = true
	return n
}

// DumpAST writes an indented pre-order walk of n to w, in the same
// traversal order codegen follows.
func DumpAST(w *strings.Builder, n *ASTNode, level int) {
	if n == nil {
		return
	}

	w.WriteString(strings.Repeat(" ", level))
	if n.Type != nil {
		fmt.Fprintf(w, "%s ", TypeName(n.Type))
	}
	fmt.Fprintf(w, "%s ", n.Op)

	switch n.Op {
	case A_NUMLIT:
		if n.Type.Kind >= TY_FLT32 {
			fmt.Fprintf(w, "%g\n", n.LitVal.DblVal)
		} else {
			fmt.Fprintf(w, "%d\n", n.LitVal.IntVal)
		}
	case A_ASSIGN:
		fmt.Fprintf(w, "%s =\n", n.Sym.Name)
	case A_LOCAL:
		fmt.Fprintf(w, "%s\n", n.Sym.Name)
	case A_IDENT:
		if n.Rvalue {
			fmt.Fprintf(w, "rval %s\n", n.Sym.Name)
		} else {
			fmt.Fprintf(w, "%s\n", n.Sym.Name)
		}
	case A_PRINT, A_FUNCCALL:
		fmt.Fprintf(w, "%q\n", n.Left.Strlit)
		if n.Right != nil {
			DumpAST(w, n.Right, level+2)
		}
		return
	default:
		w.WriteString("\n")
	}

	if n.Op == A_LOCAL {
		level -= 2
	}

	DumpAST(w, n.Left, level+2)
	DumpAST(w, n.Mid, level+2)
	DumpAST(w, n.Right, level+2)
}
