package compiler

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/symtab"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

// The type-checking pass re-walks the tree and enforces everything the
// earlier passes deferred: assignment targets and compatibility, call
// arities and argument types, return statements against the enclosing
// function, and the loop-scoped validity of break and continue. A unit's
// top level is an implicit any-returning function, which is why a top-level
// return is legal.
func (c *Compiler) typeCheckUnit(stmts []ast.Node) {
	c.functions.Push(&functionContext{returns: types.ANY})
	defer c.functions.Pop()
	for _, stmt := range stmts {
		c.checkStatement(stmt)
	}
}

func (c *Compiler) checkStatement(node ast.Node) {
	switch n := node.(type) {
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(n)
	case *ast.GlobalDeclaration:
		c.checkGlobalDeclaration(n)
	case *ast.FunctionDeclaration:
		c.checkFunctionDeclaration(n)
	case *ast.ClassDeclaration:
		c.checkClassDeclaration(n)
	case *ast.BlockStatement:
		if n.Synthetic {
			// A desugared multi-variable declaration shares the enclosing
			// scope.
			for _, s := range n.Statements {
				c.checkStatement(s)
			}
			return
		}
		c.table.InScope(func() {
			for _, s := range n.Statements {
				c.checkStatement(s)
			}
			c.reportUnused()
		})
	case *ast.IfStatement:
		c.checkCondition(n.Condition)
		c.checkStatement(n.Consequence)
		if n.Alternative != nil {
			c.checkStatement(n.Alternative)
		}
	case *ast.WhileStatement:
		c.checkCondition(n.Condition)
		c.inLoop(func() { c.checkStatement(n.Body) })
	case *ast.DoWhileStatement:
		c.inLoop(func() { c.checkStatement(n.Body) })
		c.checkCondition(n.Condition)
	case *ast.ForStatement:
		c.table.InScope(func() {
			if n.Init != nil {
				c.checkStatement(n.Init)
			}
			if n.Condition != nil {
				c.checkCondition(n.Condition)
			}
			if n.Update != nil {
				c.checkExpression(n.Update)
			}
			c.inLoop(func() { c.checkStatement(n.Body) })
		})
	case *ast.ForInStatement:
		c.checkForIn(n)
	case *ast.BreakStatement:
		if c.loopDepth == 0 {
			c.throw(err.BREAK_OUTSIDE_LOOP, &n.Token)
		}
	case *ast.ContinueStatement:
		if c.loopDepth == 0 {
			c.throw(err.CONTINUE_OUTSIDE_LOOP, &n.Token)
		}
	case *ast.ReturnStatement:
		c.checkReturn(n)
	case *ast.ExpressionStatement:
		c.checkExpression(n.Expression)
	}
}

func (c *Compiler) inLoop(f func()) {
	c.loopDepth++
	defer func() { c.loopDepth-- }()
	f()
}

func (c *Compiler) checkCondition(cond ast.Node) {
	t := c.checkExpression(cond)
	if t == types.VOID {
		c.throw(err.VOID_IN_EXPRESSION, cond.GetToken())
		return
	}
	if c.options.Strict {
		if _, isAssign := cond.(*ast.AssignmentExpression); isAssign {
			c.throw(err.ASSIGNMENT_IN_CONDITION, cond.GetToken())
		}
		switch lit := cond.(type) {
		case *ast.BooleanLiteral:
			c.throw(err.CONSTANT_CONDITION, cond.GetToken(), lit.Value)
		case *ast.NumberLiteral:
			truthy := lit.Real != 0
			if lit.IsInteger {
				truthy = lit.Int != 0
			}
			c.throw(err.CONSTANT_CONDITION, cond.GetToken(), truthy)
		case *ast.StringLiteral:
			c.throw(err.CONSTANT_CONDITION, cond.GetToken(), true)
		case *ast.NullLiteral:
			c.throw(err.CONSTANT_CONDITION, cond.GetToken(), false)
		}
	}
}

func (c *Compiler) checkVariableDeclaration(decl *ast.VariableDeclaration) {
	declared := c.resolveAnnotation(decl.TypeAnn)
	varType := declared
	initialized := decl.Value != nil
	if decl.Value != nil {
		valueType := c.checkExpression(decl.Value)
		if decl.TypeAnn != nil {
			c.checkCast(declared, valueType, decl.Value)
		} else {
			varType = valueType
		}
	} else if decl.IsConstant {
		c.throw(err.CONSTANT_NOT_INITIALIZED, &decl.Name, decl.Name.Literal)
	}
	if c.options.Strict {
		if sym, ok := c.table.Resolve(decl.Name.Literal); ok {
			if sym.Kind == symtab.BUILTIN {
				c.throw(err.SHADOWING_BUILTIN, &decl.Name, decl.Name.Literal)
			} else {
				c.throw(err.SHADOWING_VARIABLE, &decl.Name, decl.Name.Literal)
			}
		}
	}
	if !c.table.Declare(&symtab.Symbol{
		Name: decl.Name.Literal, Kind: symtab.VARIABLE, Type: varType,
		Token: &decl.Name, IsConstant: decl.IsConstant,
		Annotated: decl.TypeAnn != nil, Initialized: initialized}) {
		c.throw(err.VARIABLE_NAME_UNAVAILABLE, &decl.Name, decl.Name.Literal)
	}
}

func (c *Compiler) checkGlobalDeclaration(decl *ast.GlobalDeclaration) {
	if c.functions.Len() > 1 || c.table.Depth() > 1 {
		c.throw(err.GLOBAL_ONLY_AT_TOP_LEVEL, &decl.Token)
	}
	sym, _ := c.table.LookupGlobal(decl.Name.Literal)
	if decl.Value != nil {
		valueType := c.checkExpression(decl.Value)
		if sym != nil && sym.Kind == symtab.GLOBAL {
			sym.Type = valueType
			sym.Initialized = true
		}
	}
}

func (c *Compiler) checkFunctionDeclaration(decl *ast.FunctionDeclaration) {
	sym, ok := c.table.LookupGlobal(decl.Name.Literal)
	if ok && sym.Kind == symtab.FUNCTION {
		sym.Used = true // the declaration itself is not a use we report on
	}
	c.checkFunctionBody(decl.Name.Literal, decl.Parameters, decl.ReturnAnn, decl.Body)
}

// checkFunctionBody brackets the body with a function context for return
// checking and a fresh scope holding the parameters.
func (c *Compiler) checkFunctionBody(name string, params []*ast.Parameter, returnAnn *ast.TypeAnnotation, body *ast.BlockStatement) {
	ctx := &functionContext{
		name:     name,
		returns:  c.resolveAnnotation(returnAnn),
		declared: returnAnn != nil,
	}
	c.functions.Push(ctx)
	defer c.functions.Pop()
	c.table.InScope(func() {
		for _, p := range params {
			c.table.Declare(&symtab.Symbol{
				Name: p.Name.Literal, Kind: symtab.PARAMETER,
				Type: c.resolveAnnotation(p.TypeAnn), Token: &p.Name,
				Annotated: p.TypeAnn != nil, Initialized: true})
		}
		for _, s := range body.Statements {
			c.checkStatement(s)
		}
		c.reportUnused()
	})
	if c.options.Strict && len(body.Statements) == 0 {
		c.throw(err.EMPTY_FUNCTION_BODY, &body.Token, name)
	}
}

func (c *Compiler) checkClassDeclaration(decl *ast.ClassDeclaration) {
	cls, ok := c.bank.FindClass(decl.Name.Literal)
	if !ok {
		return
	}
	c.classes.Push(cls)
	defer c.classes.Pop()
	for _, f := range decl.Fields {
		if f.Value != nil {
			valueType := c.checkExpression(f.Value)
			if f.TypeAnn != nil {
				c.checkCast(c.resolveAnnotation(f.TypeAnn), valueType, f.Value)
			}
		}
	}
	for _, ctor := range decl.Constructors {
		c.checkFunctionBody(decl.Name.Literal, ctor.Parameters, nil, ctor.Body)
	}
	for _, m := range decl.Methods {
		c.checkFunctionBody(m.Name.Literal, m.Parameters, m.ReturnAnn, m.Body)
	}
}

func (c *Compiler) checkForIn(stmt *ast.ForInStatement) {
	collectionType := c.checkExpression(stmt.Collection)
	keyType, valueType := c.iterationTypes(collectionType, stmt.Collection.GetToken())
	c.table.InScope(func() {
		if stmt.Key != nil {
			c.table.Declare(&symtab.Symbol{
				Name: stmt.Key.Literal, Kind: symtab.VARIABLE, Type: keyType,
				Token: stmt.Key, Initialized: true})
		}
		c.table.Declare(&symtab.Symbol{
			Name: stmt.Value.Literal, Kind: symtab.VARIABLE, Type: valueType,
			Token: &stmt.Value, Initialized: true})
		c.inLoop(func() { c.checkStatement(stmt.Body) })
		c.reportUnused()
	})
}

// iterationTypes gives the key and value types produced by iterating a
// collection. Arrays iterate with integer keys, maps with their key type.
func (c *Compiler) iterationTypes(collection types.Type, tok *token.Token) (types.Type, types.Type) {
	switch t := collection.(type) {
	case *types.Array:
		return types.INTEGER, t.Element
	case *types.Map:
		return t.Key, t.Value
	case *types.Set:
		return types.INTEGER, t.Element
	case *types.Primitive:
		if t == types.ANY || t == types.NULL {
			return types.ANY, types.ANY
		}
		if t == types.STRING {
			return types.INTEGER, types.STRING
		}
	}
	c.throw(err.NOT_ITERABLE, tok, collection.String())
	return types.ANY, types.ANY
}

func (c *Compiler) checkReturn(stmt *ast.ReturnStatement) {
	ctx, ok := c.functions.HeadValue()
	if !ok {
		c.throw(err.RETURN_OUTSIDE_FUNCTION, &stmt.Token)
		return
	}
	if stmt.Value == nil {
		if ctx.declared && ctx.returns != types.VOID && ctx.returns != types.ANY {
			c.throw(err.MISSING_RETURN_VALUE, &stmt.Token, ctx.name, ctx.returns.String())
		}
		return
	}
	valueType := c.checkExpression(stmt.Value)
	if !ctx.declared {
		return
	}
	if ctx.returns == types.VOID {
		c.throw(err.VOID_FUNCTION_RETURNS_VALUE, &stmt.Token, ctx.name)
		return
	}
	switch ctx.returns.Accepts(valueType) {
	case types.INCOMPATIBLE:
		c.throw(err.RETURN_TYPE_MISMATCH, stmt.Value.GetToken(),
			valueType.String(), ctx.returns.String())
	case types.UNSAFE_DOWNCAST:
		c.throw(err.DANGEROUS_CONVERSION, stmt.Value.GetToken(),
			valueType.String(), ctx.returns.String())
	}
}

// checkCast reports on the rank of fitting a value into a slot:
// incompatible is an error, an unsafe downcast only a warning. The
// diagnostic covers the whole value expression.
func (c *Compiler) checkCast(target, value types.Type, node ast.Node) {
	switch target.Accepts(value) {
	case types.INCOMPATIBLE:
		c.throwSpan(err.INCOMPATIBLE_TYPE, node, value.String(), target.String())
	case types.UNSAFE_DOWNCAST:
		c.throwSpan(err.DANGEROUS_CONVERSION, node, value.String(), target.String())
	}
}

// reportUnused warns about never-read locals of the scope about to close.
// Only under the strict option; loose scripts are full of these.
func (c *Compiler) reportUnused() {
	if !c.options.Strict {
		return
	}
	for _, sym := range c.table.CurrentSymbols() {
		if sym.Used || sym.Token == nil {
			continue
		}
		switch sym.Kind {
		case symtab.VARIABLE:
			c.throw(err.UNUSED_VARIABLE, sym.Token, sym.Name)
		case symtab.PARAMETER:
			c.throw(err.UNUSED_PARAMETER, sym.Token, sym.Name)
		}
	}
}
