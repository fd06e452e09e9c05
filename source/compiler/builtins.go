package compiler

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/symtab"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

// A Builtin is one entry of the builtin-function registry. Callers can
// extend the default catalog before analysis with RegisterBuiltin.
type Builtin struct {
	Name   string
	Params []types.Type
	Return types.Type
}

// RegisterBuiltin seeds one builtin into the global scope as an initialized
// function symbol. Registering over an existing name is a no-op.
func (c *Compiler) RegisterBuiltin(b Builtin) {
	c.table.DeclareGlobal(&symtab.Symbol{
		Name:        b.Name,
		Kind:        symtab.BUILTIN,
		Type:        c.bank.Function(b.Params, b.Return),
		Initialized: true,
		Used:        true,
	})
}

// seedBuiltins loads the standard library surface into the global scope so
// user code can call it without declarations. Signatures are deliberately
// loose where the runtime is polymorphic.
func (c *Compiler) seedBuiltins() {
	anyType := types.Type(types.ANY)
	integer := types.Type(types.INTEGER)
	real := types.Type(types.REAL)
	str := types.Type(types.STRING)
	boolean := types.Type(types.BOOLEAN)
	anyArray := types.Type(c.bank.Array(types.ANY))

	builtins := []Builtin{
		{"debug", []types.Type{anyType}, types.VOID},
		{"debugW", []types.Type{anyType}, types.VOID},
		{"debugE", []types.Type{anyType}, types.VOID},
		{"typeOf", []types.Type{anyType}, integer},
		{"clone", []types.Type{anyType}, anyType},

		{"count", []types.Type{anyArray}, integer},
		{"push", []types.Type{anyArray, anyType}, types.VOID},
		{"pop", []types.Type{anyArray}, anyType},
		{"shift", []types.Type{anyArray}, anyType},
		{"unshift", []types.Type{anyArray, anyType}, types.VOID},
		{"remove", []types.Type{anyArray, integer}, anyType},
		{"insert", []types.Type{anyArray, anyType, integer}, types.VOID},
		{"fill", []types.Type{anyArray, anyType}, types.VOID},
		{"sort", []types.Type{anyArray}, types.VOID},
		{"shuffle", []types.Type{anyArray}, types.VOID},
		{"reverse", []types.Type{anyArray}, types.VOID},
		{"search", []types.Type{anyArray, anyType}, anyType},
		{"inArray", []types.Type{anyArray, anyType}, boolean},
		{"join", []types.Type{anyArray, str}, str},
		{"keys", []types.Type{anyType}, anyArray},
		{"values", []types.Type{anyType}, anyArray},
		{"arrayMin", []types.Type{anyArray}, anyType},
		{"arrayMax", []types.Type{anyArray}, anyType},
		{"sum", []types.Type{anyArray}, real},
		{"average", []types.Type{anyArray}, real},

		{"abs", []types.Type{real}, real},
		{"min", []types.Type{real, real}, real},
		{"max", []types.Type{real, real}, real},
		{"floor", []types.Type{real}, integer},
		{"ceil", []types.Type{real}, integer},
		{"round", []types.Type{real}, integer},
		{"sqrt", []types.Type{real}, real},
		{"cbrt", []types.Type{real}, real},
		{"pow", []types.Type{real, real}, real},
		{"exp", []types.Type{real}, real},
		{"log", []types.Type{real}, real},
		{"log2", []types.Type{real}, real},
		{"log10", []types.Type{real}, real},
		{"cos", []types.Type{real}, real},
		{"sin", []types.Type{real}, real},
		{"tan", []types.Type{real}, real},
		{"acos", []types.Type{real}, real},
		{"asin", []types.Type{real}, real},
		{"atan", []types.Type{real}, real},
		{"atan2", []types.Type{real, real}, real},
		{"hypot", []types.Type{real, real}, real},
		{"rand", []types.Type{}, real},
		{"randInt", []types.Type{integer, integer}, integer},
		{"randFloat", []types.Type{real, real}, real},
		{"signum", []types.Type{real}, integer},
		{"toDegrees", []types.Type{real}, real},
		{"toRadians", []types.Type{real}, real},

		{"charAt", []types.Type{str, integer}, str},
		{"length", []types.Type{str}, integer},
		{"substring", []types.Type{str, integer, integer}, str},
		{"replace", []types.Type{str, str, str}, str},
		{"split", []types.Type{str, str}, anyArray},
		{"indexOf", []types.Type{str, str}, integer},
		{"contains", []types.Type{str, str}, boolean},
		{"startsWith", []types.Type{str, str}, boolean},
		{"endsWith", []types.Type{str, str}, boolean},
		{"toLower", []types.Type{str}, str},
		{"toUpper", []types.Type{str}, str},
		{"trim", []types.Type{str}, str},
		{"string", []types.Type{anyType}, str},
		{"number", []types.Type{anyType}, real},
		{"toInt", []types.Type{anyType}, integer},
	}

	for _, b := range builtins {
		c.RegisterBuiltin(b)
	}

	// include is resolved during discovery; it only appears here so name
	// resolution treats it as callable.
	c.RegisterBuiltin(Builtin{Name: "include", Params: []types.Type{str}, Return: types.BOOLEAN})
}
