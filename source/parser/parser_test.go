package parser_test

import (
	"strings"
	"testing"

	"github.com/Bux42/leekscript-vscode-sub000/source/ast"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/parser"
)

type testItem struct {
	input    string
	expected string
}

func parseAll(t *testing.T, input string, version int) []ast.Node {
	t.Helper()
	program, e := parser.Parse("test", input, version)
	if e != nil {
		t.Fatalf("parsing %q: %s", input, e.Message())
	}
	return program
}

func render(program []ast.Node) string {
	parts := make([]string, len(program))
	for i, stmt := range program {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "; ")
}

func runTests(t *testing.T, version int, tests []testItem) {
	t.Helper()
	for _, test := range tests {
		got := render(parseAll(t, test.input, version))
		if got != test.expected {
			t.Errorf("parsing %q: got %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestExpressions(t *testing.T) {
	tests := []testItem{
		{`2 + 2`, `(2 + 2)`},
		{`2 + 3 * 4`, `(2 + (3 * 4))`},
		{`2 * 3 + 4`, `((2 * 3) + 4)`},
		{`-a * b`, `((-a) * b)`},
		{`!a == b`, `((!a) == b)`},
		{`~x | y`, `((~x) | y)`},
		{`a + b + c`, `((a + b) + c)`},
		{`2 ** 3 ** 2`, `(2 ** (3 ** 2))`},
		{`a = b = c`, `(a = (b = c))`},
		{`x += y * 2`, `(x += (y * 2))`},
		{`a ? b : c ? d : e`, `(a ? b : (c ? d : e))`},
		{`a || b && c`, `(a || (b && c))`},
		{`a and b or c`, `((a and b) or c)`},
		{`a xor b`, `(a xor b)`},
		{`1 < 2 == 3 < 4`, `((1 < 2) == (3 < 4))`},
		{`a === b !== c`, `((a === b) !== c)`},
		{`x << 2 + 1`, `(x << (2 + 1))`},
		{`x >>> 1 | y <<< 2`, `((x >>> 1) | (y <<< 2))`},
		{`7 \ 2 % 3`, `((7 \ 2) % 3)`},
		{`i++`, `(i++)`},
		{`--i * 2`, `((--i) * 2)`},
		{`a.b.c`, `((a.b).c)`},
		{`a.f(x)`, `(a.f)(x)`},
		{`f(x)(y)`, `f(x)(y)`},
		{`a[0] + a[1]`, `((a[0]) + (a[1]))`},
		{`a[i][j]`, `((a[i])[j])`},
		{`[1, 2, 3]`, `[1, 2, 3]`},
		{`[1, 2,]`, `[1, 2]`},
		{`[]`, `[]`},
		{`[1..10]`, `[(1 .. 10)]`},
		{`"moo" + 'baa'`, `("moo" + "baa")`},
		{`null == x`, `(null == x)`},
		{`true and false`, `(true and false)`},
		{`π * 2`, `(π * 2)`},
		{`new Leek(4)`, `new Leek(4)`},
		{`new Leek`, `new Leek()`},
		{`new Leek(4).level`, `(new Leek(4).level)`},
		{`(function(x) { return x })(4)`, `function(x) { return x }(4)`},
	}
	runTests(t, 4, tests)
}

func TestStatements(t *testing.T) {
	tests := []testItem{
		{`var x = 1`, `var x = 1`},
		{`var x`, `var x`},
		{`let x = 1`, `let x = 1`},
		{`const K = 3`, `const K = 3`},
		{`global chips = 0`, `global chips = 0`},
		{`return`, `return`},
		{`return x + 1`, `return (x + 1)`},
		{`break`, `break`},
		{`continue`, `continue`},
		{`if (x) y else z`, `if (x) y else z`},
		{`if (x) { y } else if (z) { w }`, `if (x) { y } else if (z) { w }`},
		{`while (i < n) i++`, `while ((i < n)) (i++)`},
		{`do { i++ } while (i < n)`, `do { (i++) } while ((i < n))`},
		{`for (var i = 0; i < n; i++) {}`, `for (var i = 0; (i < n); (i++)) { }`},
		{`for (;;) {}`, `for (; ; ) { }`},
		{`for (x in xs) {}`, `for (x in xs) { }`},
		{`for (var x in xs) {}`, `for (x in xs) { }`},
		{`for (k : v in m) {}`, `for (k : v in m) { }`},
		{`for (var k : var v in m) {}`, `for (k : v in m) { }`},
		{`function f(a, b) { return a }`, `function f(a, b) { return a }`},
		{`x = 1; y = 2`, `(x = 1); (y = 2)`},
		{`x = 1
		y = 2`, `(x = 1); (y = 2)`},
	}
	runTests(t, 4, tests)
}

func TestFunctionSyntax(t *testing.T) {
	tests := []testItem{
		{`function f(integer a) : integer { return a }`, `function f(integer a) { return a }`},
		{`function f(@a) { a = 1 }`, `function f(@a) { (a = 1) }`},
		{`function f(Array<integer> @xs) {}`, `function f(Array<integer> @xs) { }`},
		{`var g = function(x) { return x * x }`, `var g = function(x) { return (x * x) }`},
	}
	runTests(t, 4, tests)
}

// A statement declaring one variable stays a single declaration node. Two
// or more desugar into a synthetic block of single declarations.
func TestMultiVariableDesugaring(t *testing.T) {
	single := parseAll(t, `var a = 1`, 4)
	if _, ok := single[0].(*ast.VariableDeclaration); !ok {
		t.Fatalf("single declaration: got %T, expected *ast.VariableDeclaration", single[0])
	}
	multi := parseAll(t, `var a = 1, b = 2, c`, 4)
	block, ok := multi[0].(*ast.BlockStatement)
	if !ok {
		t.Fatalf("multiple declaration: got %T, expected *ast.BlockStatement", multi[0])
	}
	if !block.Synthetic {
		t.Error("desugared block should be synthetic")
	}
	if len(block.Statements) != 3 {
		t.Errorf("desugared block has %d statements, expected 3", len(block.Statements))
	}
	braces := parseAll(t, `{ var a = 1 }`, 4)
	if b := braces[0].(*ast.BlockStatement); b.Synthetic {
		t.Error("a written block should not be synthetic")
	}
}

func TestClassBodies(t *testing.T) {
	program := parseAll(t, `
		class Leek extends Entity {
			level = 1
			static count = 0
			integer hp
			constructor(l) { this.level = l }
			attack(target) { return target }
			static reset() { count = 0 }
		}`, 4)
	decl, ok := program[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("got %T, expected *ast.ClassDeclaration", program[0])
	}
	if decl.Name.Literal != "Leek" {
		t.Errorf("class name is %q, expected Leek", decl.Name.Literal)
	}
	if decl.Parent == nil || decl.Parent.Literal != "Entity" {
		t.Error("parent class not recorded")
	}
	if len(decl.Fields) != 3 {
		t.Errorf("got %d fields, expected 3", len(decl.Fields))
	}
	if !decl.Fields[1].IsStatic {
		t.Error("count should be static")
	}
	if decl.Fields[2].TypeAnn == nil || decl.Fields[2].TypeAnn.Name != "integer" {
		t.Error("hp should carry an integer annotation")
	}
	if len(decl.Constructors) != 1 {
		t.Errorf("got %d constructors, expected 1", len(decl.Constructors))
	}
	if len(decl.Methods) != 2 {
		t.Errorf("got %d methods, expected 2", len(decl.Methods))
	}
	if !decl.Methods[1].IsStatic {
		t.Error("reset should be static")
	}
}

// Below version 2 'let' is an ordinary identifier, so 'let x = 1' parses as
// an identifier statement followed by an assignment. The analyzer merges
// such pairs into typed declarations.
func TestKeywordGating(t *testing.T) {
	old := parseAll(t, `let x = 1`, 1)
	if len(old) != 2 {
		t.Fatalf("got %d statements, expected 2", len(old))
	}
	if render(old) != `let; (x = 1)` {
		t.Errorf("got %q", render(old))
	}
	modern := parseAll(t, `let x = 1`, 2)
	if len(modern) != 1 {
		t.Fatalf("got %d statements, expected 1", len(modern))
	}
	if _, ok := modern[0].(*ast.VariableDeclaration); !ok {
		t.Errorf("got %T, expected *ast.VariableDeclaration", modern[0])
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected err.Kind
	}{
		{`var 1 = 2`, err.VARIABLE_NAME_EXPECTED},
		{`1 +`, err.END_OF_SCRIPT_UNEXPECTED},
		{`(1 + 2`, err.CLOSING_PARENTHESIS_EXPECTED},
		{`[1, 2`, err.CLOSING_BRACKET_EXPECTED},
		{`a[1`, err.CLOSING_BRACKET_EXPECTED},
		{`if x`, err.OPENING_PARENTHESIS_EXPECTED},
		{`a ? b`, err.COLON_EXPECTED},
		{`do { } until (x)`, err.WHILE_EXPECTED},
		{`function { }`, err.FUNCTION_NAME_EXPECTED},
		{`function f(a, a) { }`, err.DUPLICATE_PARAMETER},
		{`class { }`, err.CLASS_NAME_EXPECTED},
		{`class A extends { }`, err.PARENT_CLASS_NAME_EXPECTED},
		{`a.1`, err.MEMBER_NAME_EXPECTED},
		{`new 4`, err.CLASS_NAME_EXPECTED},
		{`{ var x = 1`, err.CLOSING_BRACE_EXPECTED},
		{`for (var i = 0 i < n; i++) {}`, err.INVALID_FOR_CLAUSE},
		{`* 2`, err.EXPRESSION_EXPECTED},
	}
	for _, test := range tests {
		_, e := parser.Parse("test", test.input, 4)
		if e == nil {
			t.Errorf("parsing %q: unexpected success", test.input)
			continue
		}
		if e.Kind != test.expected {
			t.Errorf("parsing %q: got kind %d %q, expected %d", test.input, e.Kind, e.Message(), test.expected)
		}
	}
}
