package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileIR(t *testing.T, src string) string {
	t.Helper()
	funcs, syms, err := Parse("t.alc", src)
	require.NoError(t, err)
	ir, err := Generate(funcs, syms)
	require.NoError(t, err)
	return ir
}

// scenario 1: simple local assignment emits alloc/store/load/add/store.
func TestCodegenLocalAssignment(t *testing.T) {
	ir := compileIR(t, `void f(void) { int32 x = 1; x = x + 2; }`)
	assert.Contains(t, ir, "export function $f()")
	assert.Contains(t, ir, "%x =l alloc4 1")
	assert.Contains(t, ir, "copy 1")
	assert.Contains(t, ir, "storew")
	assert.Contains(t, ir, "loadsw")
	assert.Contains(t, ir, "add")
}

// scenario 2: a flt32 literal passed to printf widens through exts to d.
func TestCodegenPrintfWidensFloat(t *testing.T) {
	ir := compileIR(t, `void g(void) { flt32 f = 1; printf("%f\n", f); }`)
	assert.Contains(t, ir, "exts")
	assert.Contains(t, ir, "call $printf(l $L")
	assert.Contains(t, ir, ", d %.t")
}

// scenario 3: for-loop lowers into a while with a single jnz/jmp pair.
func TestCodegenForLoopLowering(t *testing.T) {
	ir := compileIR(t, `void h(void) { int32 i = 0; for (i = 0; i < 10; i = i + 1) { printf("%d\n", i); } }`)
	assert.Equal(t, 1, strings.Count(ir, "jnz"))
	assert.Equal(t, 1, strings.Count(ir, "jmp"))
}

// scenario 5: a negative literal cast to unsigned is a fatal error.
func TestCodegenNegativeLiteralToUnsignedFatal(t *testing.T) {
	_, _, err := Parse("t.alc", `void f(void) { uint8 x = -1; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot cast negative literal value -1 to be unsigned")
}

// scenario 6: two identical string literals share one data label.
func TestCodegenStringLiteralDedup(t *testing.T) {
	ir := compileIR(t, `
void f(void) {
  printf("hello\n", 1);
  printf("hello\n", 2);
}
`)
	assert.Equal(t, 1, strings.Count(ir, `data $L`))
}

func TestCodegenIfElseHasFillerLabelBeforeJump(t *testing.T) {
	ir := compileIR(t, `void f(void) { if (1 < 2) { } else { } }`)
	assert.Contains(t, ir, "jnz")
	assert.Regexp(t, `@L\d+\n  jmp @L\d+`, ir)
}

func TestCodegenEveryFunctionEndsWithRetAndBrace(t *testing.T) {
	ir := compileIR(t, `void f(void) { }`)
	assert.True(t, strings.HasSuffix(strings.TrimRight(ir, "\n"), "@END\n  ret\n}"))
}

func TestCodegenVoidCallEmitsNoAssignment(t *testing.T) {
	ir := compileIR(t, `
void g(void);
void f(void) {
  g();
}
`)
	assert.Contains(t, ir, "call $g()")
	assert.NotContains(t, ir, "= call $g()")
}

func TestCodegenNonVoidCallAssignsTemporary(t *testing.T) {
	ir := compileIR(t, `
int32 g(void);
void f(void) {
  g();
}
`)
	assert.Regexp(t, `%\.t\d+ =w call \$g\(\)`, ir)
}

func TestCodegenComparisonUsesLeftOperandSignedness(t *testing.T) {
	ir := compileIR(t, `void f(void) { bool b = true; if (b == true) { } }`)
	assert.Contains(t, ir, "ceq")
}

func TestCodegenGlobalExport(t *testing.T) {
	syms := NewSymbolTable()
	cg := NewCodeGen(syms)
	sym := &Sym{Name: "g", Type: TyInt32}
	cg.GenGlobal(sym, NumVal{IntVal: 7})
	assert.Contains(t, cg.out.String(), "export data $g = { w 7, }")
}

func TestCodegenTemporariesStrictlyIncreasing(t *testing.T) {
	ir := compileIR(t, `void f(void) { int32 x = 1; int32 y = 2; int32 z = x + y; }`)
	// Only a temporary's first definition counts: a binary operation
	// reassigns its left operand's temporary, and stores merely use one.
	var seen []int
	defined := map[int]bool{}
	for _, line := range strings.Split(ir, "\n") {
		if !strings.HasPrefix(line, "  %.t") {
			continue
		}
		var n int
		_, err := fmtSscanTemp(line[len("  %.t"):], &n)
		if err == nil && !defined[n] {
			defined[n] = true
			seen = append(seen, n)
		}
	}
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}
}

// fmtSscanTemp parses a leading decimal integer from s, used only to pull
// the numeric suffix off a %.tN temporary name in assembled IR text.
func fmtSscanTemp(s string, out *int) (int, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, errNoDigits
	}
	v := 0
	for _, c := range s[:i] {
		v = v*10 + int(c-'0')
	}
	*out = v
	return i, nil
}

var errNoDigits = errors.New("no digits")
