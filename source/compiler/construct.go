package compiler

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/lexer"
	"github.com/Bux42/leekscript-vscode-sub000/source/parser"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

// The AST-construction pass parses every discovered unit and rewrites the
// raw tree into the form the analysis passes walk. A parse error in an
// included unit is collected and that unit dropped; a parse error in the
// root fails the request's parse stage. Returns whether the root parsed.
func (c *Compiler) construct() bool {
	c.checkDeadline()
	rootParsed := true
	for _, unit := range c.order {
		if c.failed.Contains(unit) {
			if unit == c.root {
				rootParsed = false
			}
			continue
		}
		toks := c.tokens[unit]
		if !c.options.UseCache {
			toks, _ = lexer.NewLexer(unit.Path, unit.Source, c.version()).Tokenize()
		}
		program, parseErr := parser.New(token.NewStream(toks), c.version()).ParseProgram()
		if parseErr != nil {
			c.collector.AddAll(err.Errors{parseErr})
			c.failed.Add(unit)
			if unit == c.root {
				rootParsed = false
			}
			continue
		}
		c.parsed[unit] = c.mergeStatements(program)
	}
	return rootParsed
}

// mergeStatements rewrites a statement list, recognizing the typed
// declaration idiom: a bare type-name expression statement immediately
// followed by an assignment to an identifier ('integer x = f()'), or by a
// bare identifier statement ('integer x'), merges into one typed variable
// declaration. The scan is over pairs, so the rewrite happens before either
// statement is looked at on its own.
func (c *Compiler) mergeStatements(stmts []ast.Node) []ast.Node {
	result := make([]ast.Node, 0, len(stmts))
	for i := 0; i < len(stmts); i++ {
		if i+1 < len(stmts) {
			if merged := c.mergePair(stmts[i], stmts[i+1]); merged != nil {
				result = append(result, merged)
				i++
				continue
			}
		}
		result = append(result, c.mergeInside(stmts[i]))
	}
	return result
}

func (c *Compiler) mergePair(first, second ast.Node) ast.Node {
	typeStmt, ok := first.(*ast.ExpressionStatement)
	if !ok {
		return nil
	}
	typeName, ok := typeStmt.Expression.(*ast.Identifier)
	if !ok || !c.isTypeName(typeName.Value) {
		return nil
	}
	next, ok := second.(*ast.ExpressionStatement)
	if !ok {
		return nil
	}
	ann := &ast.TypeAnnotation{Token: typeName.Token, Name: typeName.Value}
	switch e := next.Expression.(type) {
	case *ast.AssignmentExpression:
		if e.Operator != "=" {
			return nil
		}
		target, ok := e.Left.(*ast.Identifier)
		if !ok {
			return nil
		}
		return &ast.VariableDeclaration{Token: typeName.Token, Name: target.Token,
			TypeAnn: ann, Value: c.mergeExpression(e.Right)}
	case *ast.Identifier:
		return &ast.VariableDeclaration{Token: typeName.Token, Name: e.Token, TypeAnn: ann}
	}
	return nil
}

// mergeInside recurses into the statements nested under a node.
func (c *Compiler) mergeInside(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.BlockStatement:
		n.Statements = c.mergeStatements(n.Statements)
	case *ast.IfStatement:
		n.Consequence = c.mergeInside(n.Consequence)
		if n.Alternative != nil {
			n.Alternative = c.mergeInside(n.Alternative)
		}
	case *ast.WhileStatement:
		n.Body = c.mergeInside(n.Body)
	case *ast.DoWhileStatement:
		n.Body = c.mergeInside(n.Body)
	case *ast.ForStatement:
		n.Body = c.mergeInside(n.Body)
	case *ast.ForInStatement:
		n.Body = c.mergeInside(n.Body)
	case *ast.FunctionDeclaration:
		n.Body.Statements = c.mergeStatements(n.Body.Statements)
	case *ast.ClassDeclaration:
		for _, m := range n.Constructors {
			m.Body.Statements = c.mergeStatements(m.Body.Statements)
		}
		for _, m := range n.Methods {
			m.Body.Statements = c.mergeStatements(m.Body.Statements)
		}
	case *ast.VariableDeclaration:
		if n.Value != nil {
			n.Value = c.mergeExpression(n.Value)
		}
	case *ast.GlobalDeclaration:
		if n.Value != nil {
			n.Value = c.mergeExpression(n.Value)
		}
	case *ast.ExpressionStatement:
		n.Expression = c.mergeExpression(n.Expression)
	}
	return node
}

// mergeExpression recurses into function expression bodies, the only place
// an expression can hide statements.
func (c *Compiler) mergeExpression(node ast.Node) ast.Node {
	if fe, ok := node.(*ast.FunctionExpression); ok {
		fe.Body.Statements = c.mergeStatements(fe.Body.Statements)
	}
	return node
}

// isTypeName says whether an identifier denotes a type in this request:
// a primitive name, a container constructor, or a discovered class.
func (c *Compiler) isTypeName(name string) bool {
	if _, ok := c.primitives[name]; ok {
		return true
	}
	switch name {
	case "Array", "Map", "Set", "Function":
		return true
	}
	_, ok := c.bank.FindClass(name)
	return ok
}
