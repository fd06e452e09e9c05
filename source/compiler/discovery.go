package compiler

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/folder"
	"github.com/Bux42/leekscript-vscode-sub000/source/lexer"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/symtab"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

// The declaration-discovery pass scans the raw token stream of a unit, with
// no full parse, for the names that must be visible before anything is
// type-checked: includes, globals, functions, and classes. Each include
// recurses into the resolved target. A unit already visited is skipped
// silently, so diamond and cyclic include graphs both just work; the
// visited-set ceiling is what bounds pathological graphs.
func (c *Compiler) discover(unit *folder.Unit) {
	if unit == nil || c.visited.Contains(unit) {
		return
	}
	if len(c.visited) >= settings.MAX_INCLUDED_UNITS {
		panic(abort{&err.Error{Kind: err.TOO_MANY_INCLUDED_AIS, Severity: err.ERROR,
			Token: c.rootToken(), Args: []any{settings.MAX_INCLUDED_UNITS}}})
	}
	c.visited.Add(unit)

	toks, lexErr := lexer.NewLexer(unit.Path, unit.Source, c.version()).Tokenize()
	if lexErr != nil {
		c.collector.AddAll(err.Errors{lexErr})
		c.failed.Add(unit)
	}
	c.tokens[unit] = toks

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch {
		case tok.Type == token.IDENT && tok.Literal == "include":
			c.checkDeadline()
			i = c.discoverInclude(unit, toks, i)
		case tok.Type == token.GLOBAL:
			c.checkDeadline()
			i = c.discoverGlobals(toks, i)
		case tok.Type == token.FUNCTION:
			c.checkDeadline()
			i = c.discoverFunction(toks, i)
		case tok.Type == token.CLASS:
			c.checkDeadline()
			i = c.discoverClass(toks, i)
		}
	}
	// Includes land in the order before their includer, so the passes see
	// a unit's dependencies first.
	c.order = append(c.order, unit)
}

// discoverInclude handles 'include("path")' in the token stream, recursing
// into the target unit. Returns the index to resume scanning at.
func (c *Compiler) discoverInclude(unit *folder.Unit, toks []token.Token, i int) int {
	if i+1 >= len(toks) || toks[i+1].Type != token.LPAREN {
		return i
	}
	if i+2 >= len(toks) || toks[i+2].Type != token.STRING {
		c.throw(err.INCLUDE_PATH_MUST_BE_STRING, &toks[i])
		return i + 1
	}
	path := toks[i+2].Literal
	if unit.Folder == nil {
		c.throw(err.AI_NOT_EXISTING, &toks[i+2], path)
		return i + 2
	}
	target, ok := unit.Folder.Resolve(path)
	if !ok {
		c.throw(err.AI_NOT_EXISTING, &toks[i+2], path)
		return i + 2
	}
	c.discover(target)
	return i + 2
}

// discoverGlobals registers 'global a, b = 1, c'. The initializer tokens are
// skipped at bracket depth zero until the comma introducing the next name.
func (c *Compiler) discoverGlobals(toks []token.Token, i int) int {
	i++
	for i < len(toks) && toks[i].Type == token.IDENT {
		if !c.table.DeclareGlobal(&symtab.Symbol{
			Name: toks[i].Literal, Kind: symtab.GLOBAL, Type: types.ANY, Token: &toks[i]}) {
			c.throw(err.GLOBAL_NAME_UNAVAILABLE, &toks[i], toks[i].Literal)
		}
		i++
		depth := 0
		more := false
	scan:
		for i < len(toks) {
			switch toks[i].Type {
			case token.LPAREN, token.LBRACK, token.LBRACE:
				depth++
			case token.RPAREN, token.RBRACK, token.RBRACE:
				depth--
			case token.COMMA:
				if depth == 0 {
					i++
					more = true
					break scan
				}
			case token.SEMICOLON, token.GLOBAL, token.FUNCTION, token.CLASS, token.EOF:
				if depth == 0 {
					break scan
				}
			}
			if depth < 0 {
				break scan
			}
			i++
		}
		if !more {
			break
		}
	}
	return i - 1
}

// discoverFunction registers a function name with its arity; the parameter
// and return types are refined by pre-registration once the AST exists.
func (c *Compiler) discoverFunction(toks []token.Token, i int) int {
	if i+1 >= len(toks) || toks[i+1].Type != token.IDENT {
		return i
	}
	name := toks[i+1]
	arity := 0
	j := i + 2
	if j < len(toks) && toks[j].Type == token.LPAREN {
		depth := 1
		sawAny := false
		for j++; j < len(toks) && depth > 0; j++ {
			switch toks[j].Type {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
			case token.COMMA:
				if depth == 1 {
					arity++
				}
			default:
				if depth == 1 {
					sawAny = true
				}
			}
		}
		if sawAny {
			arity++
		}
	}
	params := make([]types.Type, arity)
	for k := range params {
		params[k] = types.ANY
	}
	if !c.table.DeclareGlobal(&symtab.Symbol{
		Name: name.Literal, Kind: symtab.FUNCTION, Token: &toks[i+1],
		Type: c.bank.Function(params, types.ANY), Initialized: true}) {
		c.throw(err.FUNCTION_NAME_UNAVAILABLE, &toks[i+1], name.Literal)
	}
	return j - 1
}

func (c *Compiler) discoverClass(toks []token.Token, i int) int {
	if i+1 >= len(toks) || toks[i+1].Type != token.IDENT {
		return i
	}
	name := toks[i+1]
	cls := c.bank.Class(name.Literal)
	if !c.table.DeclareGlobal(&symtab.Symbol{
		Name: name.Literal, Kind: symtab.CLASS, Token: &toks[i+1],
		Type: cls, Initialized: true}) {
		c.throw(err.CLASS_NAME_UNAVAILABLE, &toks[i+1], name.Literal)
	}
	return i + 1
}
