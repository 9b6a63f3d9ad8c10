package compiler

import (
	"fmt"
	"strings"
)

// NOREG is the sentinel "no temporary" result: returned by every node kind
// whose value is never observed by its caller (statements, void calls).
const NOREG = 0

// CodeGen walks a function's AST and emits backend IR text: typed SSA
// temporaries, labels, and control flow, matching the target shape
// described for this compiler's downstream assembler.
type CodeGen struct {
	syms      *SymbolTable
	out       strings.Builder
	nextTemp  int
	nextLabel int
	strlits   strlitTable
}

// NewCodeGen returns a CodeGen ready to emit a whole compilation unit's IR.
func NewCodeGen(syms *SymbolTable) *CodeGen {
	return &CodeGen{syms: syms, nextTemp: 1, nextLabel: 1}
}

func (cg *CodeGen) newTemp() int  { t := cg.nextTemp; cg.nextTemp++; return t }
func (cg *CodeGen) newLabel() int { l := cg.nextLabel; cg.nextLabel++; return l }

func (cg *CodeGen) tempName(t int) string  { return fmt.Sprintf("%%.t%d", t) }
func (cg *CodeGen) labelName(l int) string { return fmt.Sprintf("@L%d", l) }

func (cg *CodeGen) emit(format string, args ...any) {
	fmt.Fprintf(&cg.out, format+"\n", args...)
}

func (cg *CodeGen) cgLabel(l int) {
	cg.emit("%s", cg.labelName(l))
}

// qbeType returns the backend's type letter for ty: w (32-bit int),
// l (64-bit int), s (32-bit float), d (64-bit float). bool/int8/int16/int32
// are all register-sized w.
func qbeType(ty *Type) byte {
	switch ty.Kind {
	case TY_INT64:
		return 'l'
	case TY_FLT32:
		return 's'
	case TY_FLT64:
		return 'd'
	default:
		return 'w'
	}
}

// storeWidth returns the store-instruction width letter for ty: b h w l
// for integers sized 1,2,4,8; s d for floats.
func storeWidth(ty *Type) string {
	if IsFlonum(ty) {
		if ty.Size == 4 {
			return "s"
		}
		return "d"
	}
	switch ty.Size {
	case 1:
		return "b"
	case 2:
		return "h"
	case 4:
		return "w"
	default:
		return "l"
	}
}

// loadWidth returns the load-instruction width: signed/unsigned sub-word
// forms for sizes 1,2,4; l for 64-bit integers; s/d for floats.
func loadWidth(ty *Type) string {
	if IsFlonum(ty) {
		if ty.Size == 4 {
			return "s"
		}
		return "d"
	}
	switch ty.Size {
	case 1:
		if ty.IsUnsigned {
			return "ub"
		}
		return "sb"
	case 2:
		if ty.IsUnsigned {
			return "uh"
		}
		return "sh"
	case 4:
		if ty.IsUnsigned {
			return "uw"
		}
		return "sw"
	default:
		return "l"
	}
}

// extWidth mirrors loadWidth's sub-word forms for sizes 1, 2, 4: the set
// of widths a CAST can sign/zero-extend from.
func extWidth(ty *Type) string {
	switch ty.Size {
	case 1:
		if ty.IsUnsigned {
			return "ub"
		}
		return "sb"
	case 2:
		if ty.IsUnsigned {
			return "uh"
		}
		return "sh"
	default:
		if ty.IsUnsigned {
			return "uw"
		}
		return "sw"
	}
}

// castOp returns the backend op name for converting a value of type from
// to type to: int-to-float conversions, float widening (single to
// double), or integer sign/zero extension.
func castOp(from, to *Type) string {
	if IsInteger(from) && IsFlonum(to) {
		prefix := "w"
		if from.Size > 4 {
			prefix = "l"
		}
		if from.IsUnsigned {
			return "u" + prefix + "tof"
		}
		return "s" + prefix + "tof"
	}
	if IsFlonum(from) && IsFlonum(to) {
		return "exts"
	}
	return "ext" + extWidth(from)
}

// cmpOp returns the comparison mnemonic for op, keyed off ty's
// signedness: eq and ne are signedness-independent; lt/gt/le/ge pick the
// signed or unsigned opcode family.
func cmpOp(op ASTOp, ty *Type) string {
	switch op {
	case A_EQ:
		return "eq"
	case A_NE:
		return "ne"
	case A_LT:
		if ty.IsUnsigned {
			return "ult"
		}
		return "slt"
	case A_GT:
		if ty.IsUnsigned {
			return "ugt"
		}
		return "sgt"
	case A_LE:
		if ty.IsUnsigned {
			return "ule"
		}
		return "sle"
	default: // A_GE
		if ty.IsUnsigned {
			return "uge"
		}
		return "sge"
	}
}

var binOpName = map[ASTOp]string{
	A_ADD: "add", A_SUBTRACT: "sub", A_MULTIPLY: "mul", A_DIVIDE: "div",
	A_AND: "and", A_OR: "or", A_XOR: "xor", A_LSHIFT: "shl", A_RSHIFT: "shr",
}

// Gen emits code for n, recursively, and returns the temporary number
// holding its value, or NOREG if n has none to offer.
func (cg *CodeGen) Gen(n *ASTNode) (int, error) {
	if n == nil {
		return NOREG, nil
	}

	switch n.Op {
	case A_PRINT:
		righttemp, err := cg.Gen(n.Right)
		if err != nil {
			return NOREG, err
		}
		label := cg.strlits.add(n.Left.Strlit, cg.newLabel)
		cg.cgPrint(label, righttemp, n.Right.Type)
		return NOREG, nil
	case A_LOCAL:
		return NOREG, cg.genLocal(n)
	case A_FUNCCALL:
		return cg.genFuncCall(n)
	case A_IF:
		return NOREG, cg.genIf(n)
	case A_WHILE:
		return NOREG, cg.genWhile(n)
	case A_FOR:
		if _, err := cg.Gen(n.Right); err != nil {
			return NOREG, err
		}
		return NOREG, cg.genWhile(n)
	}

	var lefttemp, righttemp int
	var err error
	if n.Left != nil {
		if lefttemp, err = cg.Gen(n.Left); err != nil {
			return NOREG, err
		}
	}
	if n.Right != nil {
		if righttemp, err = cg.Gen(n.Right); err != nil {
			return NOREG, err
		}
	}

	switch n.Op {
	case A_NUMLIT:
		return cg.cgLoadLit(n.LitVal, n.Type), nil
	case A_ADD, A_SUBTRACT, A_MULTIPLY, A_DIVIDE, A_AND, A_OR, A_XOR, A_LSHIFT, A_RSHIFT:
		return cg.cgBinop(lefttemp, righttemp, n.Type, binOpName[n.Op]), nil
	case A_NEGATE:
		return cg.cgNegate(lefttemp, n.Type), nil
	case A_IDENT:
		return cg.cgLoadVar(n.Sym), nil
	case A_ASSIGN:
		return NOREG, cg.cgStoreVar(lefttemp, n.Type, n.Sym)
	case A_CAST:
		return cg.cgCast(lefttemp, n.Left.Type, n.Type)
	case A_EQ, A_NE, A_LT, A_GT, A_LE, A_GE:
		return cg.cgCompare(n.Op, lefttemp, righttemp, n.Left.Type), nil
	case A_INVERT:
		return cg.cgInvert(lefttemp, n.Type), nil
	case A_NOT:
		return cg.cgNot(lefttemp, n.Type), nil
	case A_GLUE:
		return NOREG, nil
	}

	return NOREG, fatalf(n.File, n.Line, "Gen: unknown op %v", n.Op)
}

func (cg *CodeGen) cgLoadLit(val NumVal, ty *Type) int {
	t := cg.newTemp()
	qt := qbeType(ty)
	if IsFlonum(ty) {
		cg.emit("  %s =%c copy %c_%s", cg.tempName(t), qt, qt, ftoa(val.DblVal))
	} else {
		cg.emit("  %s =%c copy %d", cg.tempName(t), qt, val.IntVal)
	}
	return t
}

// cgBinop emits a two-operand instruction whose result reuses the left
// operand's temporary number.
func (cg *CodeGen) cgBinop(l, r int, ty *Type, op string) int {
	qt := qbeType(ty)
	cg.emit("  %s =%c %s %s, %s", cg.tempName(l), qt, op, cg.tempName(l), cg.tempName(r))
	return l
}

func (cg *CodeGen) cgNegate(l int, ty *Type) int {
	qt := qbeType(ty)
	cg.emit("  %s =%c sub 0, %s", cg.tempName(l), qt, cg.tempName(l))
	return l
}

func (cg *CodeGen) cgInvert(l int, ty *Type) int {
	qt := qbeType(ty)
	cg.emit("  %s =%c xor %s, -1", cg.tempName(l), qt, cg.tempName(l))
	return l
}

func (cg *CodeGen) cgNot(l int, ty *Type) int {
	qt := qbeType(ty)
	cg.emit("  %s =%c ceq%c %s, 0", cg.tempName(l), qt, qt, cg.tempName(l))
	return l
}

func (cg *CodeGen) cgCompare(op ASTOp, l, r int, ty *Type) int {
	qt := qbeType(ty)
	t := cg.newTemp()
	cg.emit("  %s =w c%s%c %s, %s", cg.tempName(t), cmpOp(op, ty), qt, cg.tempName(l), cg.tempName(r))
	return t
}

func (cg *CodeGen) cgCast(l int, from, to *Type) (int, error) {
	op := castOp(from, to)
	t := cg.newTemp()
	cg.emit("  %s =%c %s %s", cg.tempName(t), qbeType(to), op, cg.tempName(l))
	return t, nil
}

func (cg *CodeGen) cgLoadVar(sym *Sym) int {
	t := cg.newTemp()
	qt := qbeType(sym.Type)
	if sym.HasAddr {
		cg.emit("  %s =%c load%s %%%s", cg.tempName(t), qt, loadWidth(sym.Type), sym.Name)
	} else {
		cg.emit("  %s =%c copy %%%s", cg.tempName(t), qt, sym.Name)
	}
	return t
}

func (cg *CodeGen) cgStoreVar(v int, ty *Type, sym *Sym) error {
	if sym.HasAddr {
		cg.emit("  store%s %s, %%%s", storeWidth(ty), cg.tempName(v), sym.Name)
	} else {
		cg.emit("  %%%s =%c copy %s", sym.Name, qbeType(ty), cg.tempName(v))
	}
	return nil
}

func (cg *CodeGen) cgPrint(label, val int, ty *Type) {
	cg.emit("  call $printf(l $L%d, %c %s)", label, qbeType(ty), cg.tempName(val))
}

// genIf emits an IF with an optional ELSE clause. A filler label is
// required before the jump that skips the ELSE block, since the backend
// rejects two terminators (jnz, jmp) in immediate sequence.
func (cg *CodeGen) genIf(n *ASTNode) error {
	ltrue := cg.newLabel()
	lfalse := cg.newLabel()
	var lend int
	if n.Right != nil {
		lend = cg.newLabel()
	}

	t1, err := cg.Gen(n.Left)
	if err != nil {
		return err
	}
	cg.emit("  jnz %s, %s, %s", cg.tempName(t1), cg.labelName(ltrue), cg.labelName(lfalse))

	cg.cgLabel(ltrue)
	if _, err := cg.Gen(n.Mid); err != nil {
		return err
	}

	if n.Right != nil {
		filler := cg.newLabel()
		cg.cgLabel(filler)
		cg.emit("  jmp %s", cg.labelName(lend))
	}

	cg.cgLabel(lfalse)
	if n.Right != nil {
		if _, err := cg.Gen(n.Right); err != nil {
			return err
		}
		cg.cgLabel(lend)
	}
	return nil
}

func (cg *CodeGen) genWhile(n *ASTNode) error {
	lstart := cg.newLabel()
	cg.cgLabel(lstart)

	t1, err := cg.Gen(n.Left)
	if err != nil {
		return err
	}

	lbody := cg.newLabel()
	lend := cg.newLabel()
	cg.emit("  jnz %s, %s, %s", cg.tempName(t1), cg.labelName(lbody), cg.labelName(lend))

	cg.cgLabel(lbody)
	if _, err := cg.Gen(n.Mid); err != nil {
		return err
	}
	cg.emit("  jmp %s", cg.labelName(lstart))
	cg.cgLabel(lend)
	return nil
}

// genLocal allocates stack space for a declared local, stores its
// initializer's value, then walks the next chained declaration in Mid and
// the block's statements in Right.
func (cg *CodeGen) genLocal(n *ASTNode) error {
	size := n.Type.Size
	if size < 4 {
		size = 4
	}
	cg.emit("  %%%s =l alloc%d 1", n.Sym.Name, size)

	lefttemp, err := cg.Gen(n.Left)
	if err != nil {
		return err
	}
	if err := cg.cgStoreVar(lefttemp, n.Type, n.Sym); err != nil {
		return err
	}

	if _, err := cg.Gen(n.Mid); err != nil {
		return err
	}
	if _, err := cg.Gen(n.Right); err != nil {
		return err
	}
	return nil
}

// genFuncCall evaluates and widens each argument against the callee's
// parameter list, left to right, then emits the call. Per this language's
// grammar a function call is only ever a statement, never an expression
// operand (Non-goal: function return values beyond void round-tripping),
// so any value produced by a non-void call is still emitted into a
// temporary (satisfying "every non-void call site assigns a temporary")
// but never propagated to a caller.
func (cg *CodeGen) genFuncCall(n *ASTNode) (int, error) {
	name := n.Left.Strlit
	fn := cg.syms.FindSymbol(name)
	if fn == nil {
		return NOREG, fatalf(n.Left.File, n.Left.Line, "unknown function %s()", name)
	}
	if fn.SymKind != ST_FUNCTION {
		return NOREG, fatalf(n.Left.File, n.Left.Line, "%s is not a function", name)
	}

	var args []*ASTNode
	for g := n.Right; g != nil; g = g.Right {
		args = append(args, g.Left)
	}
	if len(args) != fn.Count {
		return NOREG, fatalf(n.Left.File, n.Left.Line, "wrong number of arguments to %s(): %d vs. %d", name, len(args), fn.Count)
	}

	param := fn.Members
	temps := make([]int, len(args))
	types := make([]*Type, len(args))
	for i, a := range args {
		widened, err := WidenExpression(a, param.Type)
		if err != nil {
			return NOREG, err
		}
		t, err := cg.Gen(widened)
		if err != nil {
			return NOREG, err
		}
		temps[i], types[i] = t, widened.Type
		param = param.Next
	}

	parts := make([]string, len(args))
	for i := range args {
		parts[i] = fmt.Sprintf("%c %s", qbeType(types[i]), cg.tempName(temps[i]))
	}

	if fn.Type == TyVoid {
		cg.emit("  call $%s(%s)", name, strings.Join(parts, ", "))
	} else {
		t := cg.newTemp()
		cg.emit("  %s =%c call $%s(%s)", cg.tempName(t), qbeType(fn.Type), name, strings.Join(parts, ", "))
	}
	return NOREG, nil
}

// FuncPreamble emits a function's opening header and start label.
func (cg *CodeGen) FuncPreamble(name string, params []*Sym) {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%c %%%s", qbeType(p.Type), p.Name)
	}
	cg.emit("export function $%s(%s) {", name, strings.Join(parts, ", "))
	cg.emit("@START")
}

// FuncPostamble emits the end label and the implicit void return.
func (cg *CodeGen) FuncPostamble() {
	cg.emit("@END")
	cg.emit("  ret")
	cg.emit("}")
}

// GenGlobal emits a top-level exported data declaration for a variable
// symbol. Reserved for a future global-variable extension to the grammar;
// no current production calls it, but it completes this package's mapping
// of the data model to backend IR.
func (cg *CodeGen) GenGlobal(sym *Sym, val NumVal) {
	if IsFlonum(sym.Type) {
		cg.emit("export data $%s = { %s %c_%s, }", sym.Name, storeWidth(sym.Type), qbeType(sym.Type), ftoa(val.DblVal))
		return
	}
	cg.emit("export data $%s = { %s %d, }", sym.Name, storeWidth(sym.Type), val.IntVal)
}

// GenStrlits emits a data declaration for every distinct string literal
// seen during code generation. Called once, after the whole program has
// been generated.
func (cg *CodeGen) GenStrlits() {
	for s := cg.strlits.head; s != nil; s = s.next {
		cg.emit("data $L%d = { b %s, b 0 }", s.label, escapeStrlit(s.val))
	}
}

func escapeStrlit(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 7:
			sb.WriteString(`\a`)
		case 8:
			sb.WriteString(`\b`)
		case 12:
			sb.WriteString(`\f`)
		case 10:
			sb.WriteString(`\n`)
		case 13:
			sb.WriteString(`\r`)
		case 9:
			sb.WriteString(`\t`)
		case 11:
			sb.WriteString(`\v`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// FuncDecl is one parsed top-level declaration: a function symbol, its
// parameter list (in order), and its body, or a nil Body for a
// prototype-only declaration.
type FuncDecl struct {
	Sym    *Sym
	Params []*Sym
	Body   *ASTNode
}

// Generate emits backend IR text for a whole compilation unit: every
// function with a body, in declaration order, followed by the
// string-literal data section.
func Generate(funcs []*FuncDecl, syms *SymbolTable) (string, error) {
	cg := NewCodeGen(syms)
	for _, f := range funcs {
		if f.Body == nil {
			continue
		}
		cg.FuncPreamble(f.Sym.Name, f.Params)
		if _, err := cg.Gen(f.Body); err != nil {
			return "", err
		}
		cg.FuncPostamble()
	}
	cg.GenStrlits()
	return cg.out.String(), nil
}
