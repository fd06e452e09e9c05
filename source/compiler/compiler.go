package compiler

import (
	"fmt"
	"time"

	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/dtypes"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/folder"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/symtab"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

// Options for one analysis request. Version selects the language level the
// whole request is analyzed at; Strict turns on the style warnings.
// EnableOperations and UseExtra are accepted for callers that also drive an
// evaluator, where they gate cost accounting and the extended library;
// static analysis has nothing to do with either.
type Options struct {
	Version          int
	Strict           bool
	UseCache         bool
	EnableOperations bool
	UseExtra         bool
}

func DefaultOptions() Options {
	return Options{Version: settings.MAX_VERSION, UseCache: true}
}

// The Result of one analysis request. On a catastrophic failure (timeout,
// error ceiling) Success is false and Failure holds the reason; the
// diagnostics collected up to that point are still returned.
type Result struct {
	Success       bool
	Failure       *err.Error
	Diagnostics   err.Errors
	IncludedUnits []*folder.Unit
	ParseTimeMs   int64
	AnalyzeTimeMs int64
}

// Encode renders the diagnostics as the tuples the editor tooling consumes.
func (r *Result) Encode() [][]any {
	result := make([][]any, len(r.Diagnostics))
	for i, e := range r.Diagnostics {
		result[i] = e.Encode()
	}
	return result
}

// A Compiler drives the four-pass pipeline over one root unit and its
// transitively included units. It is single-threaded and good for one
// request; concurrent analyses each need their own Compiler.
type Compiler struct {
	options    Options
	bank       *types.Bank
	table      *symtab.SymbolTable
	collector  *err.Collector
	primitives map[string]types.Type

	root    *folder.Unit
	visited dtypes.Set[*folder.Unit]
	failed  dtypes.Set[*folder.Unit] // lexing or parsing failed; later passes skip these
	order   []*folder.Unit           // include order, root last
	tokens  map[*folder.Unit][]token.Token
	parsed  map[*folder.Unit][]ast.Node

	started   time.Time
	loopDepth int
	functions *dtypes.Stack[*functionContext]
	classes   *dtypes.Stack[*types.Class]
}

// The function whose body is being checked, for return statements.
type functionContext struct {
	name     string
	returns  types.Type
	declared bool // an annotated return type is enforced; an inferred one is advisory
}

// An abort unwinds the whole request on timeout or error ceiling.
type abort struct {
	e *err.Error
}

func New(options Options) *Compiler {
	c := &Compiler{
		options:    options,
		bank:       types.NewBank(),
		table:      symtab.New(),
		collector:  err.NewCollector(),
		primitives: types.Primitives(),
		visited:    make(dtypes.Set[*folder.Unit]),
		failed:     make(dtypes.Set[*folder.Unit]),
		tokens:     map[*folder.Unit][]token.Token{},
		parsed:     map[*folder.Unit][]ast.Node{},
		functions:  dtypes.NewStack[*functionContext](),
		classes:    dtypes.NewStack[*types.Class](),
	}
	c.seedBuiltins()
	return c
}

func (c *Compiler) Bank() *types.Bank          { return c.bank }
func (c *Compiler) Table() *symtab.SymbolTable { return c.table }

// Analyze runs the whole pipeline. It never panics out: a timeout or error
// ceiling surfaces as a failed Result carrying the diagnostics so far.
func (c *Compiler) Analyze(unit *folder.Unit) (result Result) {
	c.root = unit
	c.started = time.Now()
	defer func() {
		if r := recover(); r != nil {
			if a, ok := r.(abort); ok {
				result = c.failedResult(a.e)
				return
			}
			panic(r)
		}
	}()

	parseStart := time.Now()
	c.discover(unit)
	if settings.SHOW_ANALYZER {
		fmt.Printf("discovered %d unit(s), %d global symbol(s)\n",
			len(c.order), len(c.table.GlobalSymbols()))
	}
	rootParsed := c.construct()
	parseTime := time.Since(parseStart)

	analyzeStart := time.Now()
	if rootParsed {
		c.checkDeadline()
		for _, u := range c.order {
			c.preRegisterUnit(c.parsed[u])
		}
		c.checkDeadline()
		for _, u := range c.order {
			c.typeCheckUnit(c.parsed[u])
		}
	}
	analyzeTime := time.Since(analyzeStart)
	if settings.SHOW_ANALYZER {
		fmt.Printf("analysis done: %d error(s), %d warning(s)\n",
			c.collector.ErrorCount(), c.collector.WarningCount())
	}

	return Result{
		Success:       rootParsed && c.collector.ErrorCount() == 0,
		Diagnostics:   c.collector.All(),
		IncludedUnits: c.includedUnits(),
		ParseTimeMs:   parseTime.Milliseconds(),
		AnalyzeTimeMs: analyzeTime.Milliseconds(),
	}
}

func (c *Compiler) failedResult(e *err.Error) Result {
	return Result{
		Success:       false,
		Failure:       e,
		Diagnostics:   c.collector.All(),
		IncludedUnits: c.includedUnits(),
	}
}

func (c *Compiler) includedUnits() []*folder.Unit {
	result := []*folder.Unit{}
	for _, u := range c.order {
		if u != c.root {
			result = append(result, u)
		}
	}
	return result
}

// checkDeadline is called at the start of each pass and inside the
// innermost discovery loop, so a pathological input cannot run unbounded.
func (c *Compiler) checkDeadline() {
	if time.Since(c.started) > settings.ANALYSIS_TIMEOUT {
		tok := c.rootToken()
		panic(abort{&err.Error{Kind: err.ANALYSIS_TIMEOUT, Severity: err.ERROR, Token: tok}})
	}
}

func (c *Compiler) throw(kind err.Kind, tok *token.Token, args ...any) {
	c.collector.Throw(kind, tok, args...)
	if c.collector.TooMany() {
		panic(abort{&err.Error{Kind: err.TOO_MANY_ERRORS, Severity: err.ERROR, Token: c.rootToken()}})
	}
}

// throwSpan reports a diagnostic covering a whole expression, from its
// leftmost token to its rightmost one.
func (c *Compiler) throwSpan(kind err.Kind, node ast.Node, args ...any) {
	c.collector.ThrowWithEnd(kind, firstToken(node), lastToken(node), args...)
	if c.collector.TooMany() {
		panic(abort{&err.Error{Kind: err.TOO_MANY_ERRORS, Severity: err.ERROR, Token: c.rootToken()}})
	}
}

// firstToken finds the leftmost token under a node. A node's own token can
// sit in the middle of its span; a binary expression carries its operator.
func firstToken(node ast.Node) *token.Token {
	first := node.GetToken()
	for _, child := range node.Children() {
		if t := firstToken(child); t.Offset < first.Offset {
			first = t
		}
	}
	return first
}

// lastToken finds the rightmost token under a node.
func lastToken(node ast.Node) *token.Token {
	last := node.GetToken()
	for _, child := range node.Children() {
		if t := lastToken(child); t.Offset > last.Offset {
			last = t
		}
	}
	return last
}

func (c *Compiler) rootToken() *token.Token {
	path := ""
	if c.root != nil {
		path = c.root.Path
	}
	return &token.Token{Line: 1, Source: path}
}

func (c *Compiler) version() int {
	if c.options.Version >= settings.MIN_VERSION && c.options.Version <= settings.MAX_VERSION {
		return c.options.Version
	}
	return settings.MAX_VERSION
}
