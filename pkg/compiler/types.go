package compiler

// TypeKind is the closed set of built-in scalar kinds a Type can be.
type TypeKind int

const (
	TY_VOID TypeKind = iota
	TY_BOOL
	TY_INT8
	TY_INT16
	TY_INT32
	TY_INT64
	TY_FLT32
	TY_FLT64
)

// Type describes one built-in scalar kind. The twelve combinations of
// kind and signedness below are process-wide singletons; identity
// comparison (same pointer) is the equality used throughout this package.
type Type struct {
	Kind       TypeKind
	Size       int
	Align      int
	IsUnsigned bool
}

var (
	TyVoid = &Type{TY_VOID, 1, 1, false}
	TyBool = &Type{TY_BOOL, 1, 1, false}

	TyInt8  = &Type{TY_INT8, 1, 1, false}
	TyInt16 = &Type{TY_INT16, 2, 2, false}
	TyInt32 = &Type{TY_INT32, 4, 4, false}
	TyInt64 = &Type{TY_INT64, 8, 8, false}

	TyUint8  = &Type{TY_INT8, 1, 1, true}
	TyUint16 = &Type{TY_INT16, 2, 2, true}
	TyUint32 = &Type{TY_INT32, 4, 4, true}
	TyUint64 = &Type{TY_INT64, 8, 8, true}

	TyFlt32 = &Type{TY_FLT32, 4, 4, false}
	TyFlt64 = &Type{TY_FLT64, 8, 8, false}
)

func IsInteger(ty *Type) bool {
	switch ty.Kind {
	case TY_INT8, TY_INT16, TY_INT32, TY_INT64:
		return true
	}
	return false
}

func IsFlonum(ty *Type) bool {
	return ty.Kind == TY_FLT32 || ty.Kind == TY_FLT64
}

func IsNumeric(ty *Type) bool {
	return IsInteger(ty) || IsFlonum(ty)
}

var typeNames = [...]string{
	"void", "bool", "int8", "int16", "int32", "int64", "flt32", "flt64",
}
var unsignedTypeNames = [...]string{
	"", "", "uint8", "uint16", "uint32", "uint64", "", "",
}

// TypeName returns the source-level spelling of ty.
func TypeName(ty *Type) string {
	if ty.IsUnsigned {
		return unsignedTypeNames[ty.Kind]
	}
	return typeNames[ty.Kind]
}

// WidenType tries to widen node's type to match ty. It returns node
// unchanged if no widening is needed, a new CAST node wrapping it, a
// mutated node (literals retype in place rather than being wrapped), or
// nil if the types are not compatible.
func WidenType(node *ASTNode, ty *Type) (*ASTNode, error) {
	if node.Type == ty {
		return node, nil
	}

	// We can't widen to a boolean.
	if ty == TyBool {
		return nil, nil
	}

	// We can't widen from a void.
	if node.Type == TyVoid {
		return nil, fatalf(node.File, node.Line, "cannot widen anything of type void")
	}

	// Change an int of any size to a float. A literal is retyped in
	// place, with its value converted, rather than wrapped.
	if IsInteger(node.Type) && IsFlonum(ty) {
		if node.Op == A_NUMLIT {
			node.LitVal.DblVal = float64(node.LitVal.IntVal)
			node.Type = ty
			return node, nil
		}
		newnode := MkASTNode(A_CAST, node, nil, nil, node.File, node.Line)
		newnode.Type = ty
		newnode.Rvalue = true
		return newnode, nil
	}

	// The given type is smaller than the node's type: do nothing.
	// Narrowing is handled only at explicit cast sites.
	if ty.Size < node.Type.Size {
		return node, nil
	}

	// The node is a literal: update its type in place rather than
	// wrapping it, but some rules apply.
	if node.Op == A_NUMLIT {
		if ty.IsUnsigned && !node.Type.IsUnsigned && node.LitVal.IntVal < 0 {
			return nil, fatalf(node.File, node.Line,
				"Cannot cast negative literal value %d to be unsigned", node.LitVal.IntVal)
		}
		if IsInteger(node.Type) && IsFlonum(ty) {
			node.LitVal.DblVal = float64(node.LitVal.IntVal)
		}
		node.Type = ty
		return node, nil
	}

	// Signed and unsigned types cannot mix.
	if node.Type.IsUnsigned != ty.IsUnsigned {
		return nil, nil
	}

	// Otherwise, widen by wrapping in a CAST node.
	newnode := MkASTNode(A_CAST, node, nil, nil, node.File, node.Line)
	newnode.Type = ty
	newnode.Rvalue = true
	return newnode, nil
}

// WidenExpression is WidenType with a fatal error on incompatibility; used
// at assignment, declaration, and argument-passing sites where the target
// type is fixed and failure to widen cannot be recovered from.
func WidenExpression(e *ASTNode, ty *Type) (*ASTNode, error) {
	newnode, err := WidenType(e, ty)
	if err != nil {
		return nil, err
	}
	if newnode == nil {
		return nil, fatalf(e.File, e.Line, "Incompatible types %s vs %s", TypeName(e.Type), TypeName(ty))
	}
	return newnode, nil
}

// AddType propagates a type bottom-up onto node if it has none: relational
// comparisons and logical NOT force bool; otherwise each child is typed,
// each is widened toward the other, and the node adopts the unified left
// child's type.
func AddType(node *ASTNode) error {
	if node == nil || node.Type != nil {
		return nil
	}

	if node.Op >= A_EQ && node.Op <= A_NOT {
		node.Type = TyBool
		return nil
	}

	if err := AddType(node.Left); err != nil {
		return err
	}
	if err := AddType(node.Right); err != nil {
		return err
	}

	if node.Left != nil && node.Right != nil {
		if newleft, err := WidenType(node.Left, node.Right.Type); err != nil {
			return err
		} else if newleft != nil {
			node.Left = newleft
		}
		if newright, err := WidenType(node.Right, node.Left.Type); err != nil {
			return err
		} else if newright != nil {
			node.Right = newright
		}
		node.Type = node.Left.Type
	} else if node.Left != nil {
		node.Type = node.Left.Type
	}

	return nil
}

// ParseLitval returns a suitable Type for a numeric token: flt32 for a
// float literal; otherwise the smallest signed integer type whose range
// contains the value, or int64/uint64 for values outside int32's range
// (uint64 only for values that were never preceded by a minus sign).
func ParseLitval(t Token) *Type {
	if t.NumK == NUM_FLT {
		return TyFlt32
	}

	if t.NumK == NUM_UINT {
		return TyUint64
	}

	v := t.Num.IntVal
	switch {
	case v >= -128 && v <= 127:
		return TyInt8
	case v >= -32768 && v <= 32767:
		return TyInt16
	case v >= -2147483648 && v <= 2147483647:
		return TyInt32
	default:
		return TyInt64
	}
}
