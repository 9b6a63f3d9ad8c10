package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numlit(ty *Type, intval int64) *ASTNode {
	n := MkASTLeaf(A_NUMLIT, ty, true, nil, intval, "t.alc", 1)
	n.LitVal.IntVal = intval
	return n
}

func TestParseLitvalSmallestIntRule(t *testing.T) {
	cases := []struct {
		val  int64
		want *Type
	}{
		{127, TyInt8},
		{128, TyInt16},
		{32767, TyInt16},
		{32768, TyInt32},
		{2147483647, TyInt32},
	}
	for _, c := range cases {
		tok := Token{Kind: TOK_NUMLIT, NumK: NUM_INT, Num: NumVal{IntVal: c.val}}
		got := ParseLitval(tok)
		assert.Samef(t, c.want, got, "value %d", c.val)
	}

	huge := Token{Kind: TOK_NUMLIT, NumK: NUM_INT, Num: NumVal{IntVal: 2147483648}}
	assert.Same(t, TyInt64, ParseLitval(huge))

	unsignedHuge := Token{Kind: TOK_NUMLIT, NumK: NUM_UINT, Num: NumVal{IntVal: -1}}
	assert.Same(t, TyUint64, ParseLitval(unsignedHuge))

	flt := Token{Kind: TOK_NUMLIT, NumK: NUM_FLT}
	assert.Same(t, TyFlt32, ParseLitval(flt))
}

func TestWidenTypeIdentityIsNoop(t *testing.T) {
	n := numlit(TyInt32, 5)
	got, err := WidenType(n, TyInt32)
	require.NoError(t, err)
	assert.Same(t, n, got)
}

func TestWidenTypeToBoolFails(t *testing.T) {
	n := numlit(TyInt32, 1)
	got, err := WidenType(n, TyBool)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWidenTypeFromVoidFatal(t *testing.T) {
	n := MkASTLeaf(A_IDENT, TyVoid, true, nil, 0, "t.alc", 1)
	_, err := WidenType(n, TyInt32)
	require.Error(t, err)
}

func TestWidenTypeIntToFloatWrapsCast(t *testing.T) {
	n := MkASTLeaf(A_IDENT, TyInt32, true, &Sym{Name: "x", Type: TyInt32}, 0, "t.alc", 1)
	got, err := WidenType(n, TyFlt64)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, A_CAST, got.Op)
	assert.Same(t, TyFlt64, got.Type)
	assert.Same(t, n, got.Left)
}

func TestWidenTypeNarrowingIsNoop(t *testing.T) {
	n := MkASTLeaf(A_IDENT, TyInt32, true, &Sym{Name: "x", Type: TyInt32}, 0, "t.alc", 1)
	got, err := WidenType(n, TyInt8)
	require.NoError(t, err)
	assert.Same(t, n, got)
}

func TestWidenTypeLiteralMutatesInPlace(t *testing.T) {
	n := numlit(TyInt8, 5)
	got, err := WidenType(n, TyInt32)
	require.NoError(t, err)
	assert.Same(t, n, got)
	assert.Same(t, TyInt32, n.Type)
}

func TestWidenTypeLiteralNegativeToUnsignedFails(t *testing.T) {
	n := numlit(TyInt8, -1)
	_, err := WidenType(n, TyUint32)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestWidenTypeLiteralIntToFloatConvertsValue(t *testing.T) {
	n := numlit(TyInt32, 7)
	got, err := WidenType(n, TyFlt32)
	require.NoError(t, err)
	assert.Same(t, n, got)
	assert.Equal(t, float64(7), n.LitVal.DblVal)
}

func TestWidenTypeSignednessMismatchFails(t *testing.T) {
	n := MkASTLeaf(A_IDENT, TyInt32, true, &Sym{Name: "x", Type: TyInt32}, 0, "t.alc", 1)
	got, err := WidenType(n, TyUint64)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWidenExpressionFatalOnIncompatible(t *testing.T) {
	n := MkASTLeaf(A_IDENT, TyInt32, true, &Sym{Name: "x", Type: TyInt32}, 0, "t.alc", 1)
	_, err := WidenExpression(n, TyBool)
	require.Error(t, err)
}

func TestAddTypeComparisonForcesBool(t *testing.T) {
	left := numlit(TyInt32, 1)
	right := numlit(TyInt32, 2)
	n := MkASTNode(A_LT, left, nil, right, "t.alc", 1)
	require.NoError(t, AddType(n))
	assert.Same(t, TyBool, n.Type)
}

func TestAddTypeUnifiesChildren(t *testing.T) {
	left := numlit(TyInt8, 1)
	right := numlit(TyInt32, 200000)
	n := MkASTNode(A_ADD, left, nil, right, "t.alc", 1)
	require.NoError(t, AddType(n))
	assert.Same(t, TyInt32, n.Type)
	assert.Same(t, TyInt32, n.Left.Type)
}
