package compiler

import (
	"strings"
	"testing"
)

func TestCompileEndToEnd(t *testing.T) {
	src := `void f(void) { int32 x = 1; printf("%d\n", x); }`
	res, err := Compile("t.alc", src, Debug{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(res.IR, "export function $f()") {
		t.Fatalf("missing function header in IR: %q", res.IR)
	}
	if res.Debug != "" {
		t.Fatalf("no debug dump was requested, got %q", res.Debug)
	}
}

func TestCompileDebugDumps(t *testing.T) {
	src := `void f(void) { int32 x = 1; }`
	res, err := Compile("t.alc", src, Debug{Tokens: true, Symbols: true, AST: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(res.Debug, "VOID") {
		t.Fatalf("missing token dump: %q", res.Debug)
	}
	if !strings.Contains(res.Debug, "void f(") {
		t.Fatalf("missing symbol dump: %q", res.Debug)
	}
	if !strings.Contains(res.Debug, "LOCAL x") {
		t.Fatalf("missing AST dump: %q", res.Debug)
	}
}

func TestCompilePropagatesParseErrors(t *testing.T) {
	_, err := Compile("t.alc", `void f(void) { `, Debug{})
	if err == nil {
		t.Fatal("expected an error for unterminated source")
	}
}
