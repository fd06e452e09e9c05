package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/lexer"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

// A recursive-descent statement parser over a precedence-climbing
// expression parser. A syntax error is fatal to the parse of the unit:
// we report the first one and stop, rather than flailing on past it.
type Parser struct {
	stream    *token.TokenStream
	version   int
	curToken  token.Token
	peekToken token.Token
}

// parseAbort carries the fatal error up through the recursion.
type parseAbort struct {
	e *err.Error
}

func New(stream *token.TokenStream, version int) *Parser {
	p := &Parser{stream: stream, version: version}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse tokenizes and parses a whole unit.
func Parse(source, input string, version int) ([]ast.Node, *err.Error) {
	toks, lexErr := lexer.NewLexer(source, input, version).Tokenize()
	if lexErr != nil {
		return nil, lexErr
	}
	return New(token.NewStream(toks), version).ParseProgram()
}

// ParseProgram parses the unit's top-level statements.
func (p *Parser) ParseProgram() (program []ast.Node, parseErr *err.Error) {
	defer func() {
		if r := recover(); r != nil {
			if abort, ok := r.(parseAbort); ok {
				parseErr = abort.e
				return
			}
			panic(r)
		}
	}()
	program = []ast.Node{}
	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			if settings.SHOW_PARSER {
				fmt.Println(stmt.String())
			}
			program = append(program, stmt)
		}
	}
	return program, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.NextToken()
}

// lookAhead peeks n tokens past peekToken without consuming anything.
func (p *Parser) lookAhead(n int) token.Token {
	return p.stream.PeekAt(n + 1)
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expect checks the current token and consumes it, aborting with the given
// error kind if it isn't what the grammar demands.
func (p *Parser) expect(t token.TokenType, kind err.Kind) token.Token {
	if p.curToken.Type != t {
		p.throw(kind, p.curToken.Literal)
	}
	tok := p.curToken
	p.nextToken()
	return tok
}

func (p *Parser) throw(kind err.Kind, args ...any) {
	tok := p.curToken
	panic(parseAbort{&err.Error{Kind: kind, Severity: err.ERROR, Token: &tok, Args: args}})
}

// skipSemicolons consumes optional statement terminators. Semicolons are
// never required.
func (p *Parser) skipSemicolons() {
	for p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// Statement parsing. Dispatch is a fixed first-token lookup.

func (p *Parser) parseStatement() ast.Node {
	switch p.curToken.Type {
	case token.SEMICOLON:
		p.nextToken()
		return nil
	case token.VAR, token.LET, token.CONST:
		return p.parseVariableDeclaration()
	case token.GLOBAL:
		return p.parseGlobalDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		tok := p.curToken
		p.nextToken()
		p.skipSemicolons()
		return &ast.BreakStatement{Token: tok}
	case token.CONTINUE:
		tok := p.curToken
		p.nextToken()
		p.skipSemicolons()
		return &ast.ContinueStatement{Token: tok}
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVariableDeclaration handles 'var a', 'var a = 1, b = 2', 'let x',
// 'const K = 3'. A single declaration stays a standalone statement; more
// than one desugars into a synthetic block of single declarations.
func (p *Parser) parseVariableDeclaration() ast.Node {
	stmt := p.parseVariableDeclarationCore()
	p.skipSemicolons()
	return stmt
}

// parseVariableDeclarationCore parses the declaration without touching its
// terminator, which the classic for header needs to check itself.
func (p *Parser) parseVariableDeclarationCore() ast.Node {
	declarator := p.curToken
	isConstant := p.curTokenIs(token.CONST)
	p.nextToken()
	decls := []ast.Node{}
	for {
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.VARIABLE_NAME_EXPECTED, p.curToken.Literal)
		}
		name := p.curToken
		p.nextToken()
		var value ast.Node
		if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			value = p.parseExpression(LOWEST)
		}
		decls = append(decls, &ast.VariableDeclaration{
			Token: declarator, Name: name, Value: value, IsConstant: isConstant})
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if len(decls) == 1 {
		return decls[0]
	}
	return &ast.BlockStatement{Token: declarator, Statements: decls, Synthetic: true}
}

func (p *Parser) parseGlobalDeclaration() ast.Node {
	declarator := p.curToken
	p.nextToken()
	decls := []ast.Node{}
	for {
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.VARIABLE_NAME_EXPECTED, p.curToken.Literal)
		}
		name := p.curToken
		p.nextToken()
		var value ast.Node
		if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			value = p.parseExpression(LOWEST)
		}
		decls = append(decls, &ast.GlobalDeclaration{Token: declarator, Name: name, Value: value})
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	p.skipSemicolons()
	if len(decls) == 1 {
		return decls[0]
	}
	return &ast.BlockStatement{Token: declarator, Statements: decls, Synthetic: true}
}

func (p *Parser) parseFunctionDeclaration() ast.Node {
	tok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.throw(err.FUNCTION_NAME_EXPECTED, p.curToken.Literal)
	}
	name := p.curToken
	p.nextToken()
	params := p.parseParameterList()
	var returnAnn *ast.TypeAnnotation
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		returnAnn = p.parseTypeAnnotation()
	}
	body := p.parseBlockStatement()
	return &ast.FunctionDeclaration{Token: tok, Name: name, Parameters: params,
		ReturnAnn: returnAnn, Body: body.(*ast.BlockStatement)}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	p.expect(token.LPAREN, err.OPENING_PARENTHESIS_EXPECTED)
	params := []*ast.Parameter{}
	seen := map[string]bool{}
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.throw(err.CLOSING_PARENTHESIS_EXPECTED, p.curToken.Literal)
		}
		param := &ast.Parameter{}
		// A type annotation is an identifier followed by another
		// identifier or a reference marker.
		if p.curTokenIs(token.IDENT) && (p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.AT) || p.peekTokenIs(token.LT)) {
			param.TypeAnn = p.parseTypeAnnotation()
		}
		if p.curTokenIs(token.AT) {
			param.IsRef = true
			p.nextToken()
		}
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.PARAMETER_NAME_EXPECTED, p.curToken.Literal)
		}
		if seen[p.curToken.Literal] {
			p.throw(err.DUPLICATE_PARAMETER, p.curToken.Literal)
		}
		seen[p.curToken.Literal] = true
		param.Name = p.curToken
		p.nextToken()
		params = append(params, param)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.nextToken() // past the ')'
	return params
}

// parseTypeAnnotation reads a type name with optional bracketed arguments,
// e.g. Array<integer>. Whether the name denotes a type is the analyzer's
// business, not ours.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	if !p.curTokenIs(token.IDENT) {
		p.throw(err.TYPE_NAME_EXPECTED, p.curToken.Literal)
	}
	ann := &ast.TypeAnnotation{Token: p.curToken, Name: p.curToken.Literal}
	p.nextToken()
	if p.curTokenIs(token.LT) {
		p.nextToken()
		for {
			ann.Args = append(ann.Args, p.parseTypeAnnotation())
			if !p.curTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
		if !p.curTokenIs(token.GT) {
			p.throw(err.UNEXPECTED_TOKEN, p.curToken.Literal, "'>'")
		}
		p.nextToken()
	}
	return ann
}

func (p *Parser) parseClassDeclaration() ast.Node {
	tok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.throw(err.CLASS_NAME_EXPECTED, p.curToken.Literal)
	}
	name := p.curToken
	p.nextToken()
	var parent *token.Token
	if p.curTokenIs(token.EXTENDS) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.PARENT_CLASS_NAME_EXPECTED, p.curToken.Literal)
		}
		parentTok := p.curToken
		parent = &parentTok
		p.nextToken()
	}
	decl := &ast.ClassDeclaration{Token: tok, Name: name, Parent: parent}
	p.expect(token.LBRACE, err.OPENING_BRACE_EXPECTED)
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.throw(err.CLOSING_BRACE_EXPECTED, p.curToken.Literal)
		}
		p.parseClassMember(decl)
	}
	p.nextToken() // past the '}'
	p.skipSemicolons()
	return decl
}

func (p *Parser) parseClassMember(decl *ast.ClassDeclaration) {
	isStatic := false
	if p.curTokenIs(token.STATIC) {
		isStatic = true
		p.nextToken()
	}
	if !p.curTokenIs(token.IDENT) {
		p.throw(err.MEMBER_NAME_EXPECTED, p.curToken.Literal)
	}
	// Two identifiers in a row mean the first is a type annotation.
	var typeAnn *ast.TypeAnnotation
	if p.peekTokenIs(token.IDENT) || (p.peekTokenIs(token.LT) && p.lookAhead(0).Type == token.IDENT) {
		typeAnn = p.parseTypeAnnotation()
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.MEMBER_NAME_EXPECTED, p.curToken.Literal)
		}
	}
	name := p.curToken
	p.nextToken()
	if p.curTokenIs(token.LPAREN) {
		params := p.parseParameterList()
		var returnAnn *ast.TypeAnnotation
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			returnAnn = p.parseTypeAnnotation()
		}
		body := p.parseBlockStatement()
		method := &ast.FunctionDeclaration{Token: name, Name: name, Parameters: params,
			ReturnAnn: returnAnn, Body: body.(*ast.BlockStatement), IsStatic: isStatic}
		if name.Literal == "constructor" {
			decl.Constructors = append(decl.Constructors, method)
		} else {
			decl.Methods = append(decl.Methods, method)
		}
		return
	}
	field := &ast.FieldDeclaration{Token: name, Name: name, TypeAnn: typeAnn, IsStatic: isStatic}
	if p.curTokenIs(token.ASSIGN) {
		p.nextToken()
		field.Value = p.parseExpression(LOWEST)
	}
	decl.Fields = append(decl.Fields, field)
	p.skipSemicolons()
}

func (p *Parser) parseReturnStatement() ast.Node {
	tok := p.curToken
	p.nextToken()
	if p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.RBRACE) || p.curTokenIs(token.EOF) {
		p.skipSemicolons()
		return &ast.ReturnStatement{Token: tok}
	}
	value := p.parseExpression(LOWEST)
	p.skipSemicolons()
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseIfStatement() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LPAREN, err.OPENING_PARENTHESIS_EXPECTED)
	condition := p.parseExpression(LOWEST)
	p.expect(token.RPAREN, err.CLOSING_PARENTHESIS_EXPECTED)
	consequence := p.parseStatement()
	var alternative ast.Node
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		alternative = p.parseStatement()
	}
	return &ast.IfStatement{Token: tok, Condition: condition,
		Consequence: consequence, Alternative: alternative}
}

func (p *Parser) parseWhileStatement() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LPAREN, err.OPENING_PARENTHESIS_EXPECTED)
	condition := p.parseExpression(LOWEST)
	p.expect(token.RPAREN, err.CLOSING_PARENTHESIS_EXPECTED)
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Condition: condition, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Node {
	tok := p.curToken
	p.nextToken()
	body := p.parseStatement()
	if !p.curTokenIs(token.WHILE) {
		p.throw(err.WHILE_EXPECTED, p.curToken.Literal)
	}
	p.nextToken()
	p.expect(token.LPAREN, err.OPENING_PARENTHESIS_EXPECTED)
	condition := p.parseExpression(LOWEST)
	p.expect(token.RPAREN, err.CLOSING_PARENTHESIS_EXPECTED)
	p.skipSemicolons()
	return &ast.DoWhileStatement{Token: tok, Body: body, Condition: condition}
}

func (p *Parser) parseForStatement() ast.Node {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LPAREN, err.OPENING_PARENTHESIS_EXPECTED)
	if p.forClauseIsIteration() {
		return p.parseForInStatement(tok)
	}
	var init, condition, update ast.Node
	if !p.curTokenIs(token.SEMICOLON) {
		if token.IsDeclarator(p.curToken.Type) {
			init = p.parseVariableDeclarationCore()
		} else {
			init = &ast.ExpressionStatement{Token: p.curToken, Expression: p.parseExpression(LOWEST)}
		}
		p.expect(token.SEMICOLON, err.INVALID_FOR_CLAUSE)
	} else {
		p.nextToken()
	}
	if !p.curTokenIs(token.SEMICOLON) {
		condition = p.parseExpression(LOWEST)
	}
	p.expect(token.SEMICOLON, err.INVALID_FOR_CLAUSE)
	if !p.curTokenIs(token.RPAREN) {
		update = p.parseExpression(LOWEST)
	}
	p.expect(token.RPAREN, err.CLOSING_PARENTHESIS_EXPECTED)
	body := p.parseStatement()
	return &ast.ForStatement{Token: tok, Init: init, Condition: condition, Update: update, Body: body}
}

// forClauseIsIteration scans ahead for an 'in' before the closing
// parenthesis or a semicolon, which distinguishes the iteration forms from
// the classic three-part header.
func (p *Parser) forClauseIsIteration() bool {
	if p.curTokenIs(token.IN) || p.peekTokenIs(token.IN) {
		return true
	}
	depth := 0
	for i := 0; ; i++ {
		tok := p.lookAhead(i)
		switch tok.Type {
		case token.IN:
			if depth == 0 {
				return true
			}
		case token.LPAREN, token.LBRACK:
			depth++
		case token.RPAREN, token.RBRACK:
			if depth == 0 {
				return false
			}
			depth--
		case token.SEMICOLON, token.EOF:
			return false
		}
	}
}

// parseForInStatement handles 'for (x in xs)', 'for (var x in xs)', and
// 'for (k : v in m)' with optional declarators on either variable.
func (p *Parser) parseForInStatement(tok token.Token) ast.Node {
	skipDeclarator := func() {
		if token.IsDeclarator(p.curToken.Type) {
			p.nextToken()
		}
	}
	skipDeclarator()
	if !p.curTokenIs(token.IDENT) {
		p.throw(err.VARIABLE_NAME_EXPECTED, p.curToken.Literal)
	}
	first := p.curToken
	p.nextToken()
	var key *token.Token
	value := first
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		skipDeclarator()
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.VARIABLE_NAME_EXPECTED, p.curToken.Literal)
		}
		key = &first
		value = p.curToken
		p.nextToken()
	}
	if !p.curTokenIs(token.IN) {
		p.throw(err.KEYWORD_IN_EXPECTED, p.curToken.Literal)
	}
	p.nextToken()
	collection := p.parseExpression(LOWEST)
	p.expect(token.RPAREN, err.CLOSING_PARENTHESIS_EXPECTED)
	body := p.parseStatement()
	return &ast.ForInStatement{Token: tok, Key: key, Value: value, Collection: collection, Body: body}
}

func (p *Parser) parseBlockStatement() ast.Node {
	tok := p.expect(token.LBRACE, err.OPENING_BRACE_EXPECTED)
	statements := []ast.Node{}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.throw(err.CLOSING_BRACE_EXPECTED, p.curToken.Literal)
		}
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.nextToken() // past the '}'
	p.skipSemicolons()
	return &ast.BlockStatement{Token: tok, Statements: statements}
}

func (p *Parser) parseExpressionStatement() ast.Node {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	p.skipSemicolons()
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

// Expression parsing: precedence climbing.

func (p *Parser) parseExpression(precedence int) ast.Node {
	left := p.parsePrefix()
	for precedence < lookupPrecedence(p.curToken.Type) {
		left = p.parseInfix(left)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Node {
	switch p.curToken.Type {
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		tok := p.curToken
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.TRUE, token.FALSE:
		tok := p.curToken
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.NULL:
		tok := p.curToken
		p.nextToken()
		return &ast.NullLiteral{Token: tok}
	case token.IDENT:
		tok := p.curToken
		p.nextToken()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		p.expect(token.RPAREN, err.CLOSING_PARENTHESIS_EXPECTED)
		return expr
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.MINUS, token.NOT, token.BIT_NOT:
		tok := p.curToken
		p.nextToken()
		right := p.parseExpression(UNARY - 1)
		return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Right: right}
	case token.INCREMENT, token.DECREMENT:
		tok := p.curToken
		p.nextToken()
		right := p.parseExpression(UNARY - 1)
		return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Right: right}
	case token.FUNCTION:
		return p.parseFunctionExpression()
	case token.NEW:
		return p.parseNewExpression()
	case token.EOF:
		p.throw(err.END_OF_SCRIPT_UNEXPECTED)
	}
	p.throw(err.EXPRESSION_EXPECTED, p.curToken.Literal)
	return nil
}

func (p *Parser) parseNumberLiteral() ast.Node {
	tok := p.curToken
	p.nextToken()
	switch tok.Literal {
	case "π":
		return &ast.NumberLiteral{Token: tok, Real: math.Pi}
	case "∞":
		return &ast.NumberLiteral{Token: tok, Real: math.Inf(1)}
	}
	if n, e := strconv.ParseInt(tok.Literal, 0, 64); e == nil {
		return &ast.NumberLiteral{Token: tok, IsInteger: true, Int: n}
	}
	f, _ := strconv.ParseFloat(tok.Literal, 64)
	return &ast.NumberLiteral{Token: tok, Real: f}
}

// parseArrayLiteral tolerates a trailing comma.
func (p *Parser) parseArrayLiteral() ast.Node {
	tok := p.curToken
	p.nextToken()
	elements := []ast.Node{}
	for !p.curTokenIs(token.RBRACK) {
		if p.curTokenIs(token.EOF) {
			p.throw(err.CLOSING_BRACKET_EXPECTED, p.curToken.Literal)
		}
		elements = append(elements, p.parseExpression(LOWEST))
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.curTokenIs(token.RBRACK) {
			p.throw(err.CLOSING_BRACKET_EXPECTED, p.curToken.Literal)
		}
	}
	p.nextToken() // past the ']'
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseFunctionExpression() ast.Node {
	tok := p.curToken
	p.nextToken()
	params := p.parseParameterList()
	var returnAnn *ast.TypeAnnotation
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		returnAnn = p.parseTypeAnnotation()
	}
	body := p.parseBlockStatement()
	return &ast.FunctionExpression{Token: tok, Parameters: params,
		ReturnAnn: returnAnn, Body: body.(*ast.BlockStatement)}
}

func (p *Parser) parseNewExpression() ast.Node {
	tok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.throw(err.CLASS_NAME_EXPECTED, p.curToken.Literal)
	}
	class := p.curToken
	p.nextToken()
	arguments := []ast.Node{}
	if p.curTokenIs(token.LPAREN) {
		arguments = p.parseArgumentList()
	}
	return &ast.NewExpression{Token: tok, Class: class, Arguments: arguments}
}

func (p *Parser) parseInfix(left ast.Node) ast.Node {
	switch p.curToken.Type {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.TIMES_ASSIGN,
		token.DIVIDE_ASSIGN, token.MODULO_ASSIGN, token.POWER_ASSIGN,
		token.BITOR_ASSIGN, token.BITAND_ASSIGN, token.BITXOR_ASSIGN,
		token.SHL_ASSIGN, token.SHR_ASSIGN, token.USHR_ASSIGN:
		tok := p.curToken
		p.nextToken()
		// Right-associative: a = b = c is a = (b = c).
		right := p.parseExpression(ASSIGNMENT - 1)
		return &ast.AssignmentExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	case token.QUESTION:
		tok := p.curToken
		p.nextToken()
		consequence := p.parseExpression(LOWEST)
		p.expect(token.COLON, err.COLON_EXPECTED)
		alternative := p.parseExpression(TERNARY - 1)
		return &ast.TernaryExpression{Token: tok, Condition: left,
			Consequence: consequence, Alternative: alternative}
	case token.POWER:
		tok := p.curToken
		p.nextToken()
		// Right-associative: 2 ** 3 ** 2 is 2 ** (3 ** 2).
		right := p.parseExpression(POWER - 1)
		return &ast.BinaryExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	case token.LPAREN:
		tok := p.curToken
		arguments := p.parseArgumentList()
		return &ast.CallExpression{Token: tok, Function: left, Arguments: arguments}
	case token.LBRACK:
		tok := p.curToken
		p.nextToken()
		index := p.parseExpression(LOWEST)
		p.expect(token.RBRACK, err.CLOSING_BRACKET_EXPECTED)
		return &ast.IndexExpression{Token: tok, Left: left, Index: index}
	case token.DOT:
		tok := p.curToken
		p.nextToken()
		if !p.curTokenIs(token.IDENT) {
			p.throw(err.MEMBER_NAME_EXPECTED, p.curToken.Literal)
		}
		member := p.curToken
		p.nextToken()
		return &ast.MemberExpression{Token: tok, Object: left, Member: member}
	case token.INCREMENT, token.DECREMENT:
		tok := p.curToken
		p.nextToken()
		return &ast.PostfixExpression{Token: tok, Operator: tok.Literal, Left: left}
	}
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(lookupPrecedence(tok.Type))
	return &ast.BinaryExpression{Token: tok, Operator: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseArgumentList() []ast.Node {
	p.expect(token.LPAREN, err.OPENING_PARENTHESIS_EXPECTED)
	arguments := []ast.Node{}
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.throw(err.CLOSING_PARENTHESIS_EXPECTED, p.curToken.Literal)
		}
		arguments = append(arguments, p.parseExpression(LOWEST))
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.curTokenIs(token.RPAREN) {
			p.throw(err.CLOSING_PARENTHESIS_EXPECTED, p.curToken.Literal)
		}
	}
	p.nextToken() // past the ')'
	return arguments
}
