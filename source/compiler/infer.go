package compiler

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/dtypes"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/symtab"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

// checkExpression infers the type of an expression, reporting diagnostics
// along the way. Inference never gives up: anything unresolvable comes back
// as the dynamic type so one mistake doesn't cascade.
func (c *Compiler) checkExpression(node ast.Node) types.Type {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		if n.IsInteger {
			return types.INTEGER
		}
		return types.REAL
	case *ast.StringLiteral:
		return types.STRING
	case *ast.BooleanLiteral:
		return types.BOOLEAN
	case *ast.NullLiteral:
		return types.NULL
	case *ast.Identifier:
		return c.checkIdentifier(n)
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(n)
	case *ast.AssignmentExpression:
		return c.checkAssignment(n)
	case *ast.BinaryExpression:
		return c.checkBinary(n)
	case *ast.UnaryExpression:
		return c.checkUnary(n)
	case *ast.PostfixExpression:
		return c.checkPostfix(n)
	case *ast.TernaryExpression:
		return c.checkTernary(n)
	case *ast.CallExpression:
		return c.checkCall(n)
	case *ast.IndexExpression:
		return c.checkIndex(n)
	case *ast.MemberExpression:
		return c.checkMember(n)
	case *ast.FunctionExpression:
		c.checkFunctionBody("<anonymous>", n.Parameters, n.ReturnAnn, n.Body)
		return c.functionType(n.Parameters, n.ReturnAnn)
	case *ast.NewExpression:
		return c.checkNew(n)
	}
	return types.ANY
}

func (c *Compiler) checkIdentifier(ident *ast.Identifier) types.Type {
	if ident.Value == "this" {
		if cls, ok := c.classes.HeadValue(); ok {
			return cls
		}
		c.throw(err.THIS_OUTSIDE_CLASS, &ident.Token)
		return types.ANY
	}
	if ident.Value == "super" {
		cls, ok := c.classes.HeadValue()
		if !ok {
			c.throw(err.SUPER_OUTSIDE_CLASS, &ident.Token)
			return types.ANY
		}
		if cls.Parent == nil {
			c.throw(err.SUPER_WITHOUT_PARENT, &ident.Token, cls.Name)
			return types.ANY
		}
		return cls.Parent
	}
	sym, ok := c.table.Resolve(ident.Value)
	if !ok {
		c.throw(err.UNKNOWN_VARIABLE, &ident.Token, ident.Value)
		return types.ANY
	}
	sym.Used = true
	if !sym.Initialized && sym.Kind == symtab.VARIABLE {
		c.collector.Throw(err.VARIABLE_NOT_INITIALIZED, &ident.Token, ident.Value)
	}
	if sym.Type == nil {
		return types.ANY
	}
	return sym.Type
}

func (c *Compiler) checkArrayLiteral(lit *ast.ArrayLiteral) types.Type {
	if len(lit.Elements) == 0 {
		return c.bank.Array(types.ANY)
	}
	element := c.checkExpression(lit.Elements[0])
	for _, e := range lit.Elements[1:] {
		element = types.LeastUpperBound(c.bank, element, c.checkExpression(e))
	}
	return c.bank.Array(element)
}

// checkAssignment validates the target, the compatibility of the value, and
// the bookkeeping around constants, parameters, and globals.
func (c *Compiler) checkAssignment(expr *ast.AssignmentExpression) types.Type {
	valueType := c.checkExpression(expr.Right)
	switch target := expr.Left.(type) {
	case *ast.Identifier:
		return c.checkAssignToIdentifier(expr, target, valueType)
	case *ast.MemberExpression:
		targetType := c.checkMember(target)
		c.checkCast(targetType, valueType, expr.Right)
		return targetType
	case *ast.IndexExpression:
		targetType := c.checkIndex(target)
		c.checkCast(targetType, valueType, expr.Right)
		return targetType
	}
	c.throw(err.INVALID_ASSIGNMENT_TARGET, &expr.Token)
	return valueType
}

func (c *Compiler) checkAssignToIdentifier(expr *ast.AssignmentExpression, target *ast.Identifier, valueType types.Type) types.Type {
	sym, ok := c.table.Resolve(target.Value)
	if !ok {
		c.throw(err.UNKNOWN_VARIABLE, &target.Token, target.Value)
		return valueType
	}
	sym.Used = true
	if sym.IsConstant {
		c.throw(err.REASSIGN_CONSTANT, &target.Token, target.Value)
		return sym.Type
	}
	if sym.Kind == symtab.GLOBAL && c.functions.Len() > 1 {
		c.collector.Throw(err.GLOBAL_WRITE_IN_FUNCTION, &target.Token, target.Value)
	}
	if c.options.Strict && sym.Kind == symtab.PARAMETER {
		c.collector.Throw(err.ASSIGN_TO_PARAMETER, &target.Token, target.Value)
	}
	if c.options.Strict {
		if right, isIdent := expr.Right.(*ast.Identifier); isIdent &&
			expr.Operator == "=" && right.Value == target.Value {
			c.collector.Throw(err.SELF_ASSIGNMENT, &target.Token, target.Value)
		}
	}
	if expr.Operator != "=" {
		// Compound assignment reads before it writes, so the target must
		// already hold an operable value.
		if !sym.Initialized {
			c.collector.Throw(err.VARIABLE_NOT_INITIALIZED, &target.Token, target.Value)
		}
		c.checkCompoundOperands(expr.Operator, sym.Type, valueType, &expr.Token)
		sym.Initialized = true
		return sym.Type
	}
	widens := sym.Kind == symtab.VARIABLE || sym.Kind == symtab.GLOBAL
	if sym.Annotated || !widens {
		c.checkCast(sym.Type, valueType, expr.Right)
	} else if !sym.Initialized {
		sym.Type = valueType
	} else {
		sym.Type = types.LeastUpperBound(c.bank, sym.Type, valueType)
	}
	sym.Initialized = true
	return valueType
}

func (c *Compiler) checkCompoundOperands(operator string, left, right types.Type, tok *token.Token) {
	binary := operator[:len(operator)-1] // "+=" checks like "+"
	c.binaryResult(binary, left, right, tok)
}

func (c *Compiler) checkBinary(expr *ast.BinaryExpression) types.Type {
	left := c.checkExpression(expr.Left)
	right := c.checkExpression(expr.Right)
	if c.options.Strict && (expr.Operator == "==" || expr.Operator == "!=") {
		c.collector.Throw(err.NON_STRICT_EQUALITY, &expr.Token)
	}
	if lit, ok := expr.Right.(*ast.NumberLiteral); ok && lit.IsInteger && lit.Int == 0 {
		switch expr.Operator {
		case "/", "\\":
			c.collector.Throw(err.DIVISION_BY_ZERO, &expr.Token)
		case "%":
			c.collector.Throw(err.MODULO_BY_ZERO, &expr.Token)
		}
	}
	return c.binaryResult(expr.Operator, left, right, &expr.Token)
}

// binaryResult types one binary operator application and reports the
// operator-specific diagnostic when the operands can't support it.
func (c *Compiler) binaryResult(operator string, left, right types.Type, tok *token.Token) types.Type {
	switch operator {
	case "+":
		if left == types.STRING || right == types.STRING {
			return types.STRING
		}
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_ADD_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return c.numericResult(left, right)
	case "-":
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_SUBTRACT_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return c.numericResult(left, right)
	case "*":
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_MULTIPLY_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return c.numericResult(left, right)
	case "/":
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_DIVIDE_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return types.REAL
	case "\\":
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_DIVIDE_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return types.INTEGER
	case "%":
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_MODULO_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return c.numericResult(left, right)
	case "**":
		if _, ok := c.nonNumeric(left, right); ok {
			c.throw(err.CANNOT_RAISE_TYPES, tok, left.String(), right.String())
			return types.ANY
		}
		return c.numericResult(left, right)
	case "<", ">", "<=", ">=":
		if left.Accepts(right) == types.INCOMPATIBLE && right.Accepts(left) == types.INCOMPATIBLE {
			c.throw(err.CANNOT_COMPARE_TYPES, tok, left.String(), right.String())
		}
		return types.BOOLEAN
	case "==", "!=", "===", "!==":
		return types.BOOLEAN
	case "&&", "||", "and", "or", "xor":
		return types.BOOLEAN
	case "&", "|", "^":
		if _, ok := c.nonInteger(left, right); ok {
			c.throw(err.CANNOT_BITWISE_TYPES, tok, operator, left.String(), right.String())
		}
		return types.INTEGER
	case "<<", ">>", "<<<", ">>>":
		if _, ok := c.nonInteger(left, right); ok {
			c.throw(err.CANNOT_SHIFT_TYPES, tok, operator, left.String(), right.String())
		}
		return types.INTEGER
	case "..":
		return c.bank.Array(c.numericResult(left, right))
	}
	return types.ANY
}

// The primitives arithmetic tolerates. Booleans coerce to 0 and 1; null
// and any are only resolved at runtime.
var numericOperands = dtypes.MakeFromSlice([]types.Type{
	types.INTEGER, types.REAL, types.ANY, types.NULL, types.BOOLEAN})

var integerOperands = dtypes.MakeFromSlice([]types.Type{
	types.INTEGER, types.ANY, types.BOOLEAN})

// nonNumeric returns the first operand that can't be used as a number.
func (c *Compiler) nonNumeric(operands ...types.Type) (types.Type, bool) {
	for _, t := range operands {
		if numericOperands.Contains(t) {
			continue
		}
		if _, isCompound := t.(*types.Compound); isCompound {
			continue
		}
		return t, true
	}
	return nil, false
}

func (c *Compiler) nonInteger(operands ...types.Type) (types.Type, bool) {
	for _, t := range operands {
		if integerOperands.Contains(t) {
			continue
		}
		return t, true
	}
	return nil, false
}

// numericResult is integer only when both operands are integers; anything
// real or dynamic in the mix widens the result.
func (c *Compiler) numericResult(left, right types.Type) types.Type {
	if left == types.INTEGER && right == types.INTEGER {
		return types.INTEGER
	}
	if left == types.ANY || right == types.ANY {
		return types.ANY
	}
	return types.REAL
}

func (c *Compiler) checkUnary(expr *ast.UnaryExpression) types.Type {
	operand := c.checkExpression(expr.Right)
	switch expr.Operator {
	case "-":
		if bad, ok := c.nonNumeric(operand); ok {
			c.throw(err.CANNOT_NEGATE_TYPE, &expr.Token, bad.String())
			return types.ANY
		}
		return operand
	case "!", "not":
		return types.BOOLEAN
	case "~":
		if bad, ok := c.nonInteger(operand); ok {
			c.throw(err.CANNOT_NEGATE_TYPE, &expr.Token, bad.String())
		}
		return types.INTEGER
	case "++":
		c.checkCrement(expr.Right, operand, err.CANNOT_INCREMENT_TYPE, &expr.Token)
		return operand
	case "--":
		c.checkCrement(expr.Right, operand, err.CANNOT_DECREMENT_TYPE, &expr.Token)
		return operand
	}
	return types.ANY
}

func (c *Compiler) checkPostfix(expr *ast.PostfixExpression) types.Type {
	operand := c.checkExpression(expr.Left)
	kind := err.CANNOT_INCREMENT_TYPE
	if expr.Operator == "--" {
		kind = err.CANNOT_DECREMENT_TYPE
	}
	c.checkCrement(expr.Left, operand, kind, &expr.Token)
	return operand
}

// checkCrement validates ++ and -- in either position: the operand must be
// a storable place holding a number.
func (c *Compiler) checkCrement(target ast.Node, operand types.Type, kind err.Kind, tok *token.Token) {
	switch target.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.IndexExpression:
	default:
		c.throw(err.INVALID_ASSIGNMENT_TARGET, tok)
		return
	}
	if bad, ok := c.nonNumeric(operand); ok {
		c.throw(kind, tok, bad.String())
	}
}

func (c *Compiler) checkTernary(expr *ast.TernaryExpression) types.Type {
	c.checkCondition(expr.Condition)
	consequence := c.checkExpression(expr.Consequence)
	alternative := c.checkExpression(expr.Alternative)
	if c.options.Strict {
		if _, nested := expr.Consequence.(*ast.TernaryExpression); nested {
			c.collector.Throw(err.NESTED_TERNARY, &expr.Token)
		}
		if _, nested := expr.Alternative.(*ast.TernaryExpression); nested {
			c.collector.Throw(err.NESTED_TERNARY, &expr.Token)
		}
	}
	return types.LeastUpperBound(c.bank, consequence, alternative)
}

// calleeName names the called thing for diagnostics: the identifier or
// member being invoked, or failing that the leading token of the callee.
func calleeName(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Identifier:
		return n.Value
	case *ast.MemberExpression:
		return n.Member.Literal
	}
	return node.GetToken().Literal
}

func (c *Compiler) checkCall(expr *ast.CallExpression) types.Type {
	if ident, ok := expr.Function.(*ast.Identifier); ok {
		if ident.Value == "include" {
			return c.checkIncludeCall(expr)
		}
		if _, known := c.table.Resolve(ident.Value); !known {
			c.throw(err.UNKNOWN_FUNCTION, &ident.Token, ident.Value)
			for _, a := range expr.Arguments {
				c.checkExpression(a)
			}
			return types.ANY
		}
	}
	calleeType := c.checkExpression(expr.Function)
	argTypes := make([]types.Type, len(expr.Arguments))
	for i, a := range expr.Arguments {
		argTypes[i] = c.checkExpression(a)
	}
	fn, ok := calleeType.(*types.Function)
	if !ok {
		if calleeType != types.ANY {
			c.throw(err.NOT_A_FUNCTION, expr.Function.GetToken(), calleeName(expr.Function))
		}
		return types.ANY
	}
	name := calleeName(expr.Function)
	if len(argTypes) != len(fn.Params) {
		c.throw(err.WRONG_ARGUMENT_COUNT, &expr.Token, name, len(fn.Params), len(argTypes))
		return fn.Return
	}
	for i, at := range argTypes {
		switch fn.Params[i].Accepts(at) {
		case types.INCOMPATIBLE:
			c.throw(err.WRONG_ARGUMENT_TYPE, expr.Arguments[i].GetToken(),
				i+1, name, fn.Params[i].String(), at.String())
		case types.UNSAFE_DOWNCAST:
			c.collector.Throw(err.DANGEROUS_CONVERSION, expr.Arguments[i].GetToken(),
				at.String(), fn.Params[i].String())
		}
	}
	return fn.Return
}

// checkIncludeCall re-validates an include at its use site. Discovery has
// already pulled the target in; what's left to check is placement and the
// argument shape.
func (c *Compiler) checkIncludeCall(expr *ast.CallExpression) types.Type {
	if c.functions.Len() > 1 || c.table.Depth() > 1 {
		c.throw(err.INCLUDE_ONLY_AT_TOP_LEVEL, &expr.Token)
	}
	if len(expr.Arguments) != 1 {
		c.throw(err.WRONG_ARGUMENT_COUNT, &expr.Token, "include", 1, len(expr.Arguments))
		return types.ANY
	}
	if _, ok := expr.Arguments[0].(*ast.StringLiteral); !ok {
		c.throw(err.INCLUDE_PATH_MUST_BE_STRING, expr.Arguments[0].GetToken())
	}
	return types.ANY
}

func (c *Compiler) checkIndex(expr *ast.IndexExpression) types.Type {
	collection := c.checkExpression(expr.Left)
	index := c.checkExpression(expr.Index)
	switch t := collection.(type) {
	case *types.Array:
		if types.INTEGER.Accepts(index) == types.INCOMPATIBLE {
			c.throw(err.INVALID_INDEX_TYPE, expr.Index.GetToken(), index.String())
		}
		return t.Element
	case *types.Map:
		if t.Key.Accepts(index) == types.INCOMPATIBLE {
			c.throw(err.INVALID_INDEX_TYPE, expr.Index.GetToken(), index.String())
		}
		return t.Value
	case *types.Primitive:
		if t == types.STRING {
			if c.options.Strict {
				c.collector.Throw(err.STRING_INDEX_DEPRECATED, &expr.Token)
			}
			return types.STRING
		}
		if t == types.ANY || t == types.NULL {
			return types.ANY
		}
	case *types.Compound:
		return types.ANY
	}
	c.throw(err.NOT_INDEXABLE, expr.Left.GetToken(), collection.String())
	return types.ANY
}

func (c *Compiler) checkMember(expr *ast.MemberExpression) types.Type {
	// Static access: the object is a bare class name.
	if ident, ok := expr.Object.(*ast.Identifier); ok {
		if sym, found := c.table.Resolve(ident.Value); found && sym.Kind == symtab.CLASS {
			sym.Used = true
			cls := sym.Type.(*types.Class)
			if t, has := cls.FindStatic(expr.Member.Literal); has {
				return t
			}
			c.throw(err.UNKNOWN_STATIC_MEMBER, &expr.Member, cls.Name, expr.Member.Literal)
			return types.ANY
		}
	}
	objectType := c.checkExpression(expr.Object)
	switch t := objectType.(type) {
	case *types.Class:
		if mt, ok := t.FindMember(expr.Member.Literal); ok {
			return mt
		}
		c.throw(err.UNKNOWN_FIELD, &expr.Member, t.Name, expr.Member.Literal)
		return types.ANY
	case *types.Primitive:
		if t == types.NULL {
			c.throw(err.NULL_MEMBER_ACCESS, &expr.Member)
			return types.ANY
		}
		if t == types.ANY {
			return types.ANY
		}
	case *types.Compound:
		return types.ANY
	}
	c.throw(err.INVALID_MEMBER_ACCESS, expr.Object.GetToken(), objectType.String())
	return types.ANY
}

func (c *Compiler) checkNew(expr *ast.NewExpression) types.Type {
	cls, ok := c.bank.FindClass(expr.Class.Literal)
	if !ok {
		if _, known := c.table.Resolve(expr.Class.Literal); known {
			c.throw(err.NEW_OF_NON_CLASS, &expr.Class, expr.Class.Literal)
		} else {
			c.throw(err.UNKNOWN_CLASS, &expr.Class, expr.Class.Literal)
		}
		for _, a := range expr.Arguments {
			c.checkExpression(a)
		}
		return types.ANY
	}
	argTypes := make([]types.Type, len(expr.Arguments))
	for i, a := range expr.Arguments {
		argTypes[i] = c.checkExpression(a)
	}
	if ctor, has := cls.Methods["constructor"]; has {
		if len(argTypes) != len(ctor.Params) {
			c.throw(err.CONSTRUCTOR_ARGUMENT_COUNT, &expr.Class,
				cls.Name, len(ctor.Params), len(argTypes))
		} else {
			for i, at := range argTypes {
				if ctor.Params[i].Accepts(at) == types.INCOMPATIBLE {
					c.throw(err.WRONG_ARGUMENT_TYPE, expr.Arguments[i].GetToken(),
						i+1, cls.Name, ctor.Params[i].String(), at.String())
				}
			}
		}
	} else if len(argTypes) > 0 {
		c.throw(err.CONSTRUCTOR_ARGUMENT_COUNT, &expr.Class, cls.Name, 0, len(argTypes))
	}
	return cls
}
