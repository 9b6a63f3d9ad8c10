package compiler

import (
	"fmt"
	"strings"
)

// SymKind distinguishes a variable symbol from a function symbol.
type SymKind int

const (
	ST_VARIABLE SymKind = iota
	ST_FUNCTION
)

// Sym represents either a variable or a function. For a function, Type is
// its return type, Count is its parameter count, and Members is the head
// of its owned parameter list (searched only while that function is the
// table's active Curfunc). InitVal distinguishes a function prototype
// (0) from one that has gained a body (1). HasAddr is true iff a variable
// lives on the stack and therefore needs load/store rather than SSA copy.
type Sym struct {
	Name    string
	SymKind SymKind
	Type    *Type
	HasAddr bool
	InitVal int
	Count   int
	Members *Sym

	Next *Sym
}

// SymbolTable is a single linked list rooted at Symhead, shared by globals
// and the current function's locals. Globhead marks the boundary: on
// entering a function scope it is set to the current head, so scope-local
// insertions prepend above it, and scope exit restores Symhead to it. At
// most one function scope is active at a time.
type SymbolTable struct {
	Symhead  *Sym
	Globhead *Sym
	Curfunc  *Sym
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// AddSymTo inserts a new symbol at the head of the list rooted at *head,
// returning nil if name is already present there.
func AddSymTo(head **Sym, name string, kind SymKind, ty *Type) *Sym {
	for s := *head; s != nil; s = s.Next {
		if s.Name == name {
			return nil
		}
	}
	s := &Sym{Name: name, SymKind: kind, Type: ty, Next: *head}
	*head = s
	return s
}

// AddSymbol inserts a new symbol at the head of the main list.
func (t *SymbolTable) AddSymbol(name string, kind SymKind, ty *Type) (*Sym, error) {
	s := AddSymTo(&t.Symhead, name, kind, ty)
	if s == nil {
		return nil, fmt.Errorf("duplicate symbol %s", name)
	}
	return s, nil
}

// register prepends an already-built symbol to the main list, failing if
// its name is already present. Used for function symbols, which are
// assembled with their parameter sublist already attached before they are
// inserted into the table.
func (t *SymbolTable) register(sym *Sym) error {
	for s := t.Symhead; s != nil; s = s.Next {
		if s.Name == sym.Name {
			return fmt.Errorf("duplicate symbol %s", sym.Name)
		}
	}
	sym.Next = t.Symhead
	t.Symhead = sym
	return nil
}

// FindSymbol walks the main list. When it passes over the currently
// active function's own symbol, it additionally searches that function's
// parameter sublist, so parameter names resolve only while their function
// is being processed.
func (t *SymbolTable) FindSymbol(name string) *Sym {
	for s := t.Symhead; s != nil; s = s.Next {
		if s.Name == name {
			return s
		}
		if t.Curfunc != nil && s == t.Curfunc {
			for p := s.Members; p != nil; p = p.Next {
				if p.Name == name {
					return p
				}
			}
		}
	}
	return nil
}

// NewScope enters a function's scope: Globhead records the current head
// so subsequent insertions land above it, and Curfunc becomes func so its
// parameter sublist is visible to FindSymbol.
func (t *SymbolTable) NewScope(fn *Sym) {
	t.Globhead = t.Symhead
	t.Curfunc = fn
}

// EndScope exits the active function scope, discarding exactly the locals
// added since the matching NewScope.
func (t *SymbolTable) EndScope() {
	t.Symhead = t.Globhead
	t.Globhead = nil
	t.Curfunc = nil
}

// Dump writes one line per function ("<rettype> <name>(<params>);") and
// one line per variable ("<type> <name>"), matching the external debug
// symbol-dump format.
func (t *SymbolTable) Dump(w *strings.Builder) {
	for s := t.Symhead; s != nil; s = s.Next {
		switch s.SymKind {
		case ST_FUNCTION:
			fmt.Fprintf(w, "%s %s(", TypeName(s.Type), s.Name)
			for p := s.Members; p != nil; p = p.Next {
				fmt.Fprintf(w, "%s %s", TypeName(p.Type), p.Name)
				if p.Next != nil {
					w.WriteString(", ")
				}
			}
			w.WriteString(");\n")
		case ST_VARIABLE:
			fmt.Fprintf(w, "%s %s\n", TypeName(s.Type), s.Name)
		}
	}
}
