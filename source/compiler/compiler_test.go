package compiler_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/Bux42/leekscript-vscode-sub000/source/compiler"
	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/folder"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
)

// tree builds an in-memory file tree from path→source and returns the unit
// named "main".
func tree(paths map[string]string) *folder.Unit {
	root := folder.NewRoot()
	var main *folder.Unit
	id := 0
	for path, source := range paths {
		id++
		u := root.AddUnit(path, &folder.Unit{ID: id, Path: path, Source: source})
		if path == "main" {
			main = u
		}
	}
	return main
}

func analyze(t *testing.T, source string) compiler.Result {
	t.Helper()
	return analyzeWith(t, source, compiler.DefaultOptions())
}

func analyzeWith(t *testing.T, source string, options compiler.Options) compiler.Result {
	t.Helper()
	if settings.SHOW_TESTS {
		t.Logf("analyzing %q", source)
	}
	return compiler.New(options).Analyze(tree(map[string]string{"main": source}))
}

func kinds(result compiler.Result) []err.Kind {
	ks := make([]err.Kind, len(result.Diagnostics))
	for i, e := range result.Diagnostics {
		ks[i] = e.Kind
	}
	return ks
}

func expectClean(t *testing.T, source string) {
	t.Helper()
	result := analyze(t, source)
	if !result.Success {
		t.Errorf("analyzing %q: expected success, got %v", source, result.Diagnostics)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("analyzing %q: unexpected diagnostics %v", source, result.Diagnostics)
	}
}

func expectKinds(t *testing.T, source string, expected ...err.Kind) {
	t.Helper()
	result := analyze(t, source)
	got := kinds(result)
	if len(got) != len(expected) {
		t.Errorf("analyzing %q: got %v, expected kinds %v", source, result.Diagnostics, expected)
		return
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("analyzing %q: diagnostic %d is %v, expected %v", source, i, got[i], expected[i])
		}
	}
}

func TestCleanPrograms(t *testing.T) {
	sources := []string{
		"return 1 + 2 * 3;",
		"var x = 5; return x * x;",
		"var xs = [1, 2, 3]; push(xs, 4); return count(xs);",
		"function fib(n) { if (n < 2) { return n; } return fib(n - 1) + fib(n - 2); } return fib(10);",
		"var total = 0; for (var i = 0; i < 10; i++) { total += i; } return total;",
		"var total = 0; for (var v in [1, 2, 3]) { total += v; } return total;",
		"while (true) { break; }",
		"do { continue; } while (false);",
		"global turn = 0; turn++;",
		"return min(3, max(1, 2));",
		"var f = function(a, b) { return a + b; }; return f(1, 2);",
		"integer x = 3; return x + 1;",
		"var s = \"abc\"; return charAt(s, 0) + toUpper(s);",
	}
	for _, source := range sources {
		expectClean(t, source)
	}
}

func TestNameResolution(t *testing.T) {
	expectKinds(t, "return x;", err.UNKNOWN_VARIABLE)
	expectKinds(t, "frobnicate(1);", err.UNKNOWN_FUNCTION)
	expectKinds(t, "var x = 1; var x = 2;", err.VARIABLE_NAME_UNAVAILABLE)
	expectKinds(t, "function f() {} function f() {}", err.FUNCTION_NAME_UNAVAILABLE)
	expectKinds(t, "global g; global g;", err.GLOBAL_NAME_UNAVAILABLE)
	expectKinds(t, "var x; var y = x; return y;", err.VARIABLE_NOT_INITIALIZED)
}

func TestLoopPlacement(t *testing.T) {
	expectKinds(t, "break;", err.BREAK_OUTSIDE_LOOP)
	expectKinds(t, "continue;", err.CONTINUE_OUTSIDE_LOOP)
	expectKinds(t, "if (1 < 2) { break; }", err.BREAK_OUTSIDE_LOOP)
	expectClean(t, "while (1 < 2) { if (true) { continue; } }")
}

func TestTypeRules(t *testing.T) {
	expectKinds(t, "integer x = \"hello\";", err.INCOMPATIBLE_TYPE)
	expectKinds(t, "const x = 1; x = 2;", err.REASSIGN_CONSTANT)
	expectKinds(t, "const x;", err.CONSTANT_NOT_INITIALIZED)
	expectKinds(t, "var x = \"a\" - 1;", err.CANNOT_SUBTRACT_TYPES)
	expectKinds(t, "var x = [1] * 2;", err.CANNOT_MULTIPLY_TYPES)
	expectKinds(t, "var x = 1 / 0;", err.DIVISION_BY_ZERO)
	expectKinds(t, "var x = 1 % 0;", err.MODULO_BY_ZERO)
	expectKinds(t, "var x = 5; x();", err.NOT_A_FUNCTION)
	expectKinds(t, "function f(a, b) { return a; } f(1);", err.WRONG_ARGUMENT_COUNT)
	expectKinds(t, "var x = 3[0];", err.NOT_INDEXABLE)
	expectKinds(t, "var x = [1, 2]; return x[\"a\"];", err.INVALID_INDEX_TYPE)

	// An untyped variable widens instead of erroring.
	expectClean(t, "var x = 1; x = \"now a string\"; return x;")
	expectClean(t, "function f(string s) { return s; } return f(\"ok\");")
	expectKinds(t, "function f(string s) { return s; } return f([1]);", err.WRONG_ARGUMENT_TYPE)
}

func TestReturnChecking(t *testing.T) {
	expectKinds(t, "function f(): integer { return \"nope\"; } f();", err.RETURN_TYPE_MISMATCH)
	expectKinds(t, "function f(): integer { return; } f();", err.MISSING_RETURN_VALUE)
	expectKinds(t, "function f(): void { return 1; } f();", err.VOID_FUNCTION_RETURNS_VALUE)
	expectClean(t, "function f(): integer { return 42; } return f();")
	// The unit top level is an implicit function; a bare top-level return
	// is fine.
	expectClean(t, "return;")
}

func TestClasses(t *testing.T) {
	expectClean(t, `
		class Leek {
			level = 1
			static kind = "vegetable"
			getLevel() { return this.level }
		}
		var l = new Leek()
		return l.getLevel() + Leek.kind;`)
	expectClean(t, `
		class Chip {}
		class Weapon extends Chip {}
		var w = new Weapon()
		return w;`)
	expectKinds(t, "var x = new Missing();", err.UNKNOWN_CLASS)
	expectKinds(t, "var y = 1; var x = new y();", err.NEW_OF_NON_CLASS)
	expectKinds(t, "class A {} var a = new A(1);", err.CONSTRUCTOR_ARGUMENT_COUNT)
	expectKinds(t, "class A {} var a = new A(); return a.missing;", err.UNKNOWN_FIELD)
	expectKinds(t, "class A {} return A.missing;", err.UNKNOWN_STATIC_MEMBER)
	expectKinds(t, "return this;", err.THIS_OUTSIDE_CLASS)
	expectKinds(t, "class A extends B {}", err.UNKNOWN_PARENT_CLASS)
	expectKinds(t, "class A extends A {}", err.CLASS_EXTENDS_ITSELF)
}

func TestIncludes(t *testing.T) {
	main := tree(map[string]string{
		"main": `include("lib") return double(21) + base;`,
		"lib":  `global base = 0; function double(x) { return x * 2; }`,
	})
	result := compiler.New(compiler.DefaultOptions()).Analyze(main)
	if !result.Success {
		t.Fatalf("include test failed: %v", result.Diagnostics)
	}
	if len(result.IncludedUnits) != 1 || result.IncludedUnits[0].Path != "lib" {
		t.Errorf("expected one included unit 'lib', got %v", result.IncludedUnits)
	}

	// Re-inclusion is a silent no-op, including through a diamond.
	main = tree(map[string]string{
		"main": `include("a") include("b") return v;`,
		"a":    `include("shared")`,
		"b":    `include("shared")`,
		"shared": `global v = 1;`,
	})
	result = compiler.New(compiler.DefaultOptions()).Analyze(main)
	if !result.Success {
		t.Fatalf("diamond include failed: %v", result.Diagnostics)
	}
	if len(result.IncludedUnits) != 3 {
		t.Errorf("expected three included units, got %d", len(result.IncludedUnits))
	}
}

func TestIncludeErrors(t *testing.T) {
	expectKinds(t, `include("missing")`, err.AI_NOT_EXISTING)
	expectKinds(t, `include(42)`,
		err.INCLUDE_PATH_MUST_BE_STRING, err.INCLUDE_PATH_MUST_BE_STRING)
	// Discovery follows the include before type checking flags its placement.
	expectKinds(t, `function f() { include("x") } f();`,
		err.AI_NOT_EXISTING, err.INCLUDE_ONLY_AT_TOP_LEVEL)
}

func TestSubfolderIncludes(t *testing.T) {
	root := folder.NewRoot()
	sub := root.AddFolder("utils")
	sub.AddUnit("math", &folder.Unit{ID: 2, Path: "utils/math", Source: "global tau = 6.28;"})
	main := root.AddUnit("main", &folder.Unit{ID: 1, Path: "main",
		Source: `include("utils/math") return tau;`})
	result := compiler.New(compiler.DefaultOptions()).Analyze(main)
	if !result.Success {
		t.Fatalf("subfolder include failed: %v", result.Diagnostics)
	}
}

func TestStrictWarnings(t *testing.T) {
	options := compiler.DefaultOptions()
	options.Strict = true

	result := analyzeWith(t, "function f(a) { var x = 1; return a; } f(2);", options)
	if !result.Success {
		t.Fatalf("strict warnings should not fail analysis: %v", result.Diagnostics)
	}
	got := kinds(result)
	if len(got) != 1 || got[0] != err.UNUSED_VARIABLE {
		t.Errorf("expected one UNUSED_VARIABLE, got %v", result.Diagnostics)
	}

	result = analyzeWith(t, "if (1 == 1) { debug(1); }", options)
	found := false
	for _, k := range kinds(result) {
		if k == err.NON_STRICT_EQUALITY {
			found = true
		}
	}
	if !found {
		t.Errorf("expected NON_STRICT_EQUALITY under strict, got %v", result.Diagnostics)
	}
}

func TestErrorCeiling(t *testing.T) {
	source := strings.Repeat("nope;\n", 150)
	result := analyze(t, source)
	if result.Success {
		t.Fatal("expected failure at the error ceiling")
	}
	if result.Failure == nil || result.Failure.Kind != err.TOO_MANY_ERRORS {
		t.Fatalf("expected TOO_MANY_ERRORS, got %v", result.Failure)
	}
	if len(result.Diagnostics) != 100 {
		t.Errorf("expected the diagnostics collected up to the ceiling, got %d", len(result.Diagnostics))
	}
}

func TestIncludeCeiling(t *testing.T) {
	root := folder.NewRoot()
	const chain = 520
	for i := 0; i <= chain; i++ {
		name := fmt.Sprintf("u%d", i)
		source := ""
		if i < chain {
			source = fmt.Sprintf("include(%q)", fmt.Sprintf("u%d", i+1))
		}
		root.AddUnit(name, &folder.Unit{ID: i + 1, Path: name, Source: source})
	}
	main, _ := root.Resolve("u0")
	result := compiler.New(compiler.DefaultOptions()).Analyze(main)
	if result.Success {
		t.Fatal("expected failure at the include ceiling")
	}
	if result.Failure == nil || result.Failure.Kind != err.TOO_MANY_INCLUDED_AIS {
		t.Fatalf("expected TOO_MANY_INCLUDED_AIS, got %v", result.Failure)
	}
}

func TestForwardReferences(t *testing.T) {
	// Discovery registers names before anything is checked, so use before
	// declaration is fine at the unit level.
	expectClean(t, "return f(); function f() { return 1; }")
	expectClean(t, "var l = new Leek(); class Leek {} return l;")
	expectClean(t, "function a() { return b(); } function b() { return a(); } a();")
}

func TestIncludedUnitFailureIsolation(t *testing.T) {
	// A type error in an included unit lands in the shared diagnostics
	// without stopping the analysis of the includer.
	main := tree(map[string]string{
		"main": `include("lib") return missing;`,
		"lib":  `integer x = "oops";`,
	})
	result := compiler.New(compiler.DefaultOptions()).Analyze(main)
	got := kinds(result)
	if len(got) != 2 || got[0] != err.INCOMPATIBLE_TYPE || got[1] != err.UNKNOWN_VARIABLE {
		t.Errorf("expected lib's error then main's, got %v", result.Diagnostics)
	}

	// A parse error drops the included unit but the includer still parses
	// and runs the later passes.
	main = tree(map[string]string{
		"main": `include("broken") return 1;`,
		"broken": `function {`,
	})
	result = compiler.New(compiler.DefaultOptions()).Analyze(main)
	if result.Failure != nil {
		t.Fatalf("a parse error in an include must not abort the request: %v", result.Failure)
	}
	if result.Success || len(result.Diagnostics) == 0 {
		t.Error("expected the include's parse error in the diagnostics")
	}
	if len(result.IncludedUnits) != 1 {
		t.Errorf("the broken unit is still an included unit, got %v", result.IncludedUnits)
	}
}

func TestTypedDeclarationMerge(t *testing.T) {
	expectClean(t, "integer x = 3; integer y; y = x + 1; return y;")
	expectClean(t, "string s = \"hi\"; return s;")
	expectKinds(t, "string s = 42;", err.INCOMPATIBLE_TYPE)
}

// message analyzes one strict-mode source and returns the rendered text of
// the first diagnostic of the wanted kind.
func message(t *testing.T, source string, kind err.Kind) string {
	t.Helper()
	options := compiler.DefaultOptions()
	options.Strict = true
	result := analyzeWith(t, source, options)
	for _, e := range result.Diagnostics {
		if e.Kind == kind {
			return e.Message()
		}
	}
	t.Fatalf("no diagnostic of kind %d for %q, got %v", kind, source, result.Diagnostics)
	return ""
}

// Every diagnostic must come out of its template fully substituted; a
// leftover {N} hole means a throw site and its template disagree on the
// argument list.
func TestMessageRendering(t *testing.T) {
	hole := regexp.MustCompile(`\{\d+\}`)
	options := compiler.DefaultOptions()
	options.Strict = true
	sources := []string{
		"function f(a) { return a; } f(1, 2);",
		"function f(string s) { return s; } return f([1]);",
		"function f(): integer { return; } f();",
		"function f(): void { return 1; } f();",
		"var a = \"a\" - 1; return a;",
		"var a = [1] + 1; return a;",
		"var a = \"a\" & 1; return a;",
		"var a = \"a\" << 1; return a;",
		"var a = ~\"a\"; return a;",
		"var a = 5; return a();",
		"var a = 1; return a.member;",
		"if (true) {}",
		"include(1, 2);",
		"class A { x = 1\n x = 2 }",
		"class A { f() {}\n f() {} }",
		"class A { static s = 1\n static s = 2 }",
		"class A { constructor() {}\n constructor(a) {} }",
		"class A {} var a = new A(); return a.missing;",
		"class A {} return A.missing;",
		"class A {} var a = new A(1); return a;",
	}
	for _, source := range sources {
		result := analyzeWith(t, source, options)
		if len(result.Diagnostics) == 0 {
			t.Errorf("expected diagnostics for %q", source)
		}
		for _, e := range result.Diagnostics {
			if hole.MatchString(e.Message()) {
				t.Errorf("unfilled placeholder in %q for source %q", e.Message(), source)
			}
		}
	}

	renderings := []struct {
		source string
		kind   err.Kind
		want   string
	}{
		{"function f(a) { return a; } f(1, 2);", err.WRONG_ARGUMENT_COUNT,
			"function 'f' takes 1 arguments, 2 given"},
		{"function f(integer n) { return n; } f(\"x\");", err.WRONG_ARGUMENT_TYPE,
			"argument 1 of 'f' should be of type integer, not string"},
		{"function f(): integer { return; } f();", err.MISSING_RETURN_VALUE,
			"function 'f' must return a value of type integer"},
		{"function f(): void { return 1; } f();", err.VOID_FUNCTION_RETURNS_VALUE,
			"function 'f' returns void and cannot return a value"},
		{"var a = \"a\" - 1; return a;", err.CANNOT_SUBTRACT_TYPES,
			"cannot subtract integer from string"},
		{"var a = \"a\" & 1; return a;", err.CANNOT_BITWISE_TYPES,
			"bitwise operator '&' expects integers, not string and integer"},
		{"if (true) {}", err.CONSTANT_CONDITION,
			"this condition is always true"},
		{"class A {} var a = new A(); return a.missing;", err.UNKNOWN_FIELD,
			"class 'A' has no field named 'missing'"},
		{"class A {} return A.missing;", err.UNKNOWN_STATIC_MEMBER,
			"class 'A' has no static member named 'missing'"},
	}
	for _, r := range renderings {
		if got := message(t, r.source, r.kind); got != r.want {
			t.Errorf("for %q expected %q, got %q", r.source, r.want, got)
		}
	}
}

// A type mismatch on a declaration covers the whole initializer in the
// encoded range, not just its first token.
func TestDiagnosticSpans(t *testing.T) {
	result := analyze(t, `string s = 10 + 20;`)
	rows := result.Encode()
	if len(rows) != 1 {
		t.Fatalf("expected one diagnostic, got %v", rows)
	}
	row := rows[0]
	if row[6] != int(err.INCOMPATIBLE_TYPE) {
		t.Fatalf("expected the INCOMPATIBLE_TYPE code, got %v", row[6])
	}
	if row[2] != 1 || row[3] != 12 || row[4] != 1 || row[5] != 19 {
		t.Errorf("expected the range of '10 + 20', got %v", row)
	}
}

func TestResultEncoding(t *testing.T) {
	result := analyze(t, "return missing;")
	rows := result.Encode()
	if len(rows) != 1 {
		t.Fatalf("expected one encoded diagnostic, got %d", len(rows))
	}
	row := rows[0]
	if len(row) != 8 {
		t.Fatalf("expected 8 fields with params, got %d: %v", len(row), row)
	}
	if row[0] != int(err.ERROR) || row[1] != "main" || row[2] != 1 {
		t.Errorf("unexpected encoding prefix: %v", row)
	}
	if row[6] != int(err.UNKNOWN_VARIABLE) {
		t.Errorf("expected the UNKNOWN_VARIABLE code, got %v", row[6])
	}
	params, ok := row[7].([]string)
	if !ok || len(params) != 1 || params[0] != "missing" {
		t.Errorf("expected params [missing], got %v", row[7])
	}
}
