package compiler

import (
	"strings"
	"testing"
)

func TestBinOpInfersUnifiedType(t *testing.T) {
	left := numlit(TyInt8, 1)
	right := numlit(TyInt32, 100000)
	n, err := BinOp(left, right, A_ADD)
	if err != nil {
		t.Fatalf("BinOp: %v", err)
	}
	if n.Type != TyInt32 {
		t.Fatalf("got %s, want int32", TypeName(n.Type))
	}
	if !n.Rvalue {
		t.Fatal("a binary operation result should be an rvalue")
	}
}

func TestUnarOpTakesOperandType(t *testing.T) {
	operand := numlit(TyFlt32, 0)
	n := UnarOp(operand, A_NEGATE)
	if n.Type != TyFlt32 {
		t.Fatalf("got %s, want flt32", TypeName(n.Type))
	}
	if n.Op != A_NEGATE || n.Left != operand {
		t.Fatalf("got op=%v left=%v", n.Op, n.Left)
	}
}

func TestDumpASTMatchesCodegenTraversalOrder(t *testing.T) {
	funcs, _ := parseOK(t, `void f(void) { int32 x = 1; x = x + 2; }`)
	var sb strings.Builder
	DumpAST(&sb, funcs[0].Body, 0)
	out := sb.String()
	if !strings.Contains(out, "LOCAL x") {
		t.Fatalf("dump missing LOCAL x: %q", out)
	}
	if !strings.Contains(out, "ASSIGN x =") {
		t.Fatalf("dump missing ASSIGN x =: %q", out)
	}
}
