package symtab

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/dtypes"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

type SymbolKind int

const (
	VARIABLE SymbolKind = iota
	PARAMETER
	GLOBAL
	FUNCTION
	CLASS
	BUILTIN
)

func (k SymbolKind) String() string {
	switch k {
	case VARIABLE:
		return "variable"
	case PARAMETER:
		return "parameter"
	case GLOBAL:
		return "global"
	case FUNCTION:
		return "function"
	case CLASS:
		return "class"
	}
	return "builtin"
}

// A Symbol lives in exactly one scope. Its type may be refined and its
// initialization state flipped as analysis progresses.
type Symbol struct {
	Name        string
	Kind        SymbolKind
	Type        types.Type
	Token       *token.Token // declaration site; nil for builtins
	IsConstant  bool
	Annotated   bool // type written at the declaration, never widened
	Initialized bool
	Used        bool
}

type Scope struct {
	symbols map[string]*Symbol
}

func newScope() *Scope {
	return &Scope{symbols: map[string]*Symbol{}}
}

// The SymbolTable is a stack of scopes rooted at the global scope. Globals
// form a flat namespace in the root scope, reachable from any depth; lookups
// walk from the innermost scope outward, so inner declarations shadow
// outer ones.
type SymbolTable struct {
	scopes *dtypes.Stack[*Scope]
	global *Scope
}

func New() *SymbolTable {
	global := newScope()
	scopes := dtypes.NewStack[*Scope]()
	scopes.Push(global)
	return &SymbolTable{scopes: scopes, global: global}
}

// InScope runs f inside a fresh scope. The scope is popped on every exit
// path, including a panicking one, so the table can't be left unbalanced by
// an aborted analysis.
func (st *SymbolTable) InScope(f func()) {
	st.PushScope()
	defer st.PopScope()
	f()
}

func (st *SymbolTable) PushScope() {
	st.scopes.Push(newScope())
}

// PopScope discards the innermost scope. Popping the global scope is an
// internal error, reported by the false return.
func (st *SymbolTable) PopScope() bool {
	if st.scopes.Len() <= 1 {
		return false
	}
	st.scopes.Pop()
	return true
}

func (st *SymbolTable) Depth() int {
	return st.scopes.Len()
}

// Declare adds a symbol to the innermost scope. It fails if the name is
// already taken in that scope; the caller decides what diagnostic that
// deserves. Shadowing an outer scope's name is fine.
func (st *SymbolTable) Declare(sym *Symbol) bool {
	scope, _ := st.scopes.HeadValue()
	if _, exists := scope.symbols[sym.Name]; exists {
		return false
	}
	scope.symbols[sym.Name] = sym
	return true
}

// DeclareGlobal adds a symbol to the flat global namespace regardless of
// the current scope depth.
func (st *SymbolTable) DeclareGlobal(sym *Symbol) bool {
	if _, exists := st.global.symbols[sym.Name]; exists {
		return false
	}
	st.global.symbols[sym.Name] = sym
	return true
}

// Resolve walks from the innermost scope to the root and returns the
// nearest symbol with the given name.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	var found *Symbol
	st.scopes.FindBy(func(scope *Scope) bool {
		sym, ok := scope.symbols[name]
		if ok {
			found = sym
		}
		return ok
	})
	return found, found != nil
}

// Lookup checks the innermost scope only.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	scope, _ := st.scopes.HeadValue()
	sym, ok := scope.symbols[name]
	return sym, ok
}

// LookupGlobal checks the flat global namespace only.
func (st *SymbolTable) LookupGlobal(name string) (*Symbol, bool) {
	sym, ok := st.global.symbols[name]
	return sym, ok
}

// GlobalSymbols returns the root namespace, for the checks that run over
// every declared global after analysis.
func (st *SymbolTable) GlobalSymbols() map[string]*Symbol {
	return st.global.symbols
}

// CurrentSymbols returns the innermost scope's symbols, for the checks that
// run over a scope just before it is popped.
func (st *SymbolTable) CurrentSymbols() map[string]*Symbol {
	scope, _ := st.scopes.HeadValue()
	return scope.symbols
}
