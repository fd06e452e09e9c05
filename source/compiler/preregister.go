package compiler

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/symtab"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

// The pre-registration pass refines the symbols the discovery pass sketched
// in: functions get their real signatures, classes get their members, and
// globals get a type when the declaration carries one. This is what makes
// forward references work; bodies are not checked here.
func (c *Compiler) preRegisterUnit(stmts []ast.Node) {
	for _, stmt := range stmts {
		switch n := stmt.(type) {
		case *ast.FunctionDeclaration:
			c.preRegisterFunction(n)
		case *ast.ClassDeclaration:
			c.preRegisterClass(n)
		case *ast.GlobalDeclaration:
			c.preRegisterGlobal(n)
		}
	}
}

func (c *Compiler) preRegisterFunction(decl *ast.FunctionDeclaration) {
	sym, ok := c.table.LookupGlobal(decl.Name.Literal)
	if !ok || sym.Kind != symtab.FUNCTION {
		// Discovery lost the name to an earlier declaration.
		return
	}
	sym.Type = c.functionType(decl.Parameters, decl.ReturnAnn)
}

func (c *Compiler) functionType(params []*ast.Parameter, returnAnn *ast.TypeAnnotation) *types.Function {
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		paramTypes[i] = c.resolveAnnotation(p.TypeAnn)
	}
	return c.bank.Function(paramTypes, c.resolveAnnotation(returnAnn))
}

func (c *Compiler) preRegisterGlobal(decl *ast.GlobalDeclaration) {
	sym, ok := c.table.LookupGlobal(decl.Name.Literal)
	if !ok || sym.Kind != symtab.GLOBAL {
		return
	}
	sym.Initialized = decl.Value != nil
}

func (c *Compiler) preRegisterClass(decl *ast.ClassDeclaration) {
	cls, ok := c.bank.FindClass(decl.Name.Literal)
	if !ok {
		return
	}
	if decl.Parent != nil {
		parent, found := c.bank.FindClass(decl.Parent.Literal)
		switch {
		case !found:
			c.throw(err.UNKNOWN_PARENT_CLASS, decl.Parent, decl.Parent.Literal)
		case parent == cls:
			c.throw(err.CLASS_EXTENDS_ITSELF, decl.Parent, decl.Name.Literal)
		default:
			cls.Parent = parent
			for p := parent; p != nil; p = p.Parent {
				if p == cls {
					c.throw(err.CLASS_EXTENDS_ITSELF, decl.Parent, decl.Name.Literal)
					cls.Parent = nil
					break
				}
			}
		}
	}
	cls.Fields = map[string]types.Type{}
	cls.Statics = map[string]types.Type{}
	cls.Methods = map[string]*types.Function{}
	for _, f := range decl.Fields {
		declared := c.resolveAnnotation(f.TypeAnn)
		if f.IsStatic {
			if _, exists := cls.Statics[f.Name.Literal]; exists {
				c.throw(err.STATIC_MEMBER_ALREADY_EXISTS, &f.Name, cls.Name, f.Name.Literal)
				continue
			}
			cls.Statics[f.Name.Literal] = declared
		} else {
			if _, exists := cls.Fields[f.Name.Literal]; exists {
				c.throw(err.FIELD_ALREADY_EXISTS, &f.Name, cls.Name, f.Name.Literal)
				continue
			}
			cls.Fields[f.Name.Literal] = declared
		}
	}
	for _, m := range decl.Methods {
		if _, exists := cls.Methods[m.Name.Literal]; exists {
			c.throw(err.METHOD_ALREADY_EXISTS, &m.Name, cls.Name, m.Name.Literal)
			continue
		}
		mt := c.functionType(m.Parameters, m.ReturnAnn)
		if m.IsStatic {
			if _, exists := cls.Statics[m.Name.Literal]; exists {
				c.throw(err.STATIC_MEMBER_ALREADY_EXISTS, &m.Name, cls.Name, m.Name.Literal)
				continue
			}
			cls.Statics[m.Name.Literal] = mt
		} else {
			cls.Methods[m.Name.Literal] = mt
		}
	}
	if len(decl.Constructors) > 1 {
		extra := decl.Constructors[1]
		c.throw(err.CONSTRUCTOR_ALREADY_EXISTS, &extra.Name,
			decl.Name.Literal, len(decl.Constructors[0].Parameters))
	}
	if len(decl.Constructors) > 0 {
		ctor := decl.Constructors[0]
		cls.Methods["constructor"] = c.functionType(ctor.Parameters, nil)
	}
}

// resolveAnnotation turns a written type annotation into a lattice element.
// A nil annotation means the dynamic default.
func (c *Compiler) resolveAnnotation(ann *ast.TypeAnnotation) types.Type {
	if ann == nil {
		return types.ANY
	}
	if t, ok := c.primitives[ann.Name]; ok {
		if len(ann.Args) > 0 {
			c.throw(err.TYPE_ARGUMENT_COUNT, &ann.Token, ann.Name, 0, len(ann.Args))
		}
		return t
	}
	switch ann.Name {
	case "Array":
		element := types.Type(types.ANY)
		if len(ann.Args) > 1 {
			c.throw(err.TYPE_ARGUMENT_COUNT, &ann.Token, ann.Name, 1, len(ann.Args))
		}
		if len(ann.Args) >= 1 {
			element = c.resolveAnnotation(ann.Args[0])
			if element == types.VOID {
				c.throw(err.ARRAY_OF_VOID, &ann.Token)
				element = types.ANY
			}
		}
		return c.bank.Array(element)
	case "Map":
		key, value := types.Type(types.ANY), types.Type(types.ANY)
		if len(ann.Args) != 2 && len(ann.Args) != 0 {
			c.throw(err.TYPE_ARGUMENT_COUNT, &ann.Token, ann.Name, 2, len(ann.Args))
		}
		if len(ann.Args) >= 1 {
			key = c.resolveAnnotation(ann.Args[0])
		}
		if len(ann.Args) >= 2 {
			value = c.resolveAnnotation(ann.Args[1])
		}
		return c.bank.Map(key, value)
	case "Set":
		element := types.Type(types.ANY)
		if len(ann.Args) > 1 {
			c.throw(err.TYPE_ARGUMENT_COUNT, &ann.Token, ann.Name, 1, len(ann.Args))
		}
		if len(ann.Args) >= 1 {
			element = c.resolveAnnotation(ann.Args[0])
		}
		return c.bank.Set(element)
	}
	if cls, ok := c.bank.FindClass(ann.Name); ok {
		return cls
	}
	c.throw(err.UNKNOWN_TYPE, &ann.Token, ann.Name)
	return types.ANY
}
