package lexer_test

import (
	"testing"

	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/lexer"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

type lexedToken struct {
	tType   token.TokenType
	literal string
}

func tokenize(t *testing.T, input string, version int) []token.Token {
	t.Helper()
	toks, e := lexer.NewLexer("test", input, version).Tokenize()
	if e != nil {
		t.Fatalf("tokenizing %q: %s", input, e.Message())
	}
	return toks
}

func checkTokens(t *testing.T, input string, version int, expected []lexedToken) {
	t.Helper()
	toks := tokenize(t, input, version)
	if len(toks) != len(expected) {
		t.Fatalf("tokenizing %q: got %d tokens, expected %d", input, len(toks), len(expected))
	}
	for i, want := range expected {
		if toks[i].Type != want.tType || toks[i].Literal != want.literal {
			t.Errorf("tokenizing %q: token %d is {%s %q}, expected {%s %q}",
				input, i, toks[i].Type, toks[i].Literal, want.tType, want.literal)
		}
	}
}

func TestOperators(t *testing.T) {
	checkTokens(t, `a >>>= b === c <<< d !== e ** f .. g`, 4, []lexedToken{
		{token.IDENT, "a"},
		{token.USHR_ASSIGN, ">>>="},
		{token.IDENT, "b"},
		{token.STRICT_EQ, "==="},
		{token.IDENT, "c"},
		{token.USHL, "<<<"},
		{token.IDENT, "d"},
		{token.STRICT_NE, "!=="},
		{token.IDENT, "e"},
		{token.POWER, "**"},
		{token.IDENT, "f"},
		{token.DOTDOT, ".."},
		{token.IDENT, "g"},
	})
}

func TestWordOperators(t *testing.T) {
	checkTokens(t, `a and b or not c xor d`, 4, []lexedToken{
		{token.IDENT, "a"},
		{token.AND, "and"},
		{token.IDENT, "b"},
		{token.OR, "or"},
		{token.NOT, "not"},
		{token.IDENT, "c"},
		{token.BIT_XOR, "xor"},
		{token.IDENT, "d"},
	})
}

func TestNumbers(t *testing.T) {
	checkTokens(t, `42 3.14 1e6 2.5e-3 0x2A 0b101 π ∞ 1..5`, 4, []lexedToken{
		{token.NUMBER, "42"},
		{token.NUMBER, "3.14"},
		{token.NUMBER, "1e6"},
		{token.NUMBER, "2.5e-3"},
		{token.NUMBER, "0x2A"},
		{token.NUMBER, "0b101"},
		{token.NUMBER, "π"},
		{token.NUMBER, "∞"},
		{token.NUMBER, "1"},
		{token.DOTDOT, ".."},
		{token.NUMBER, "5"},
	})
}

func TestStrings(t *testing.T) {
	checkTokens(t, `"moo" 'baa' "es\"caped"`, 4, []lexedToken{
		{token.STRING, "moo"},
		{token.STRING, "baa"},
		{token.STRING, `es"caped`},
	})
}

func TestComments(t *testing.T) {
	checkTokens(t, "a // line comment\nb /* block\ncomment */ c", 4, []lexedToken{
		{token.IDENT, "a"},
		{token.IDENT, "b"},
		{token.IDENT, "c"},
	})
}

// Below version 2 keywords are matched case-insensitively and the newer
// declarators don't exist yet.
func TestVersionedKeywords(t *testing.T) {
	checkTokens(t, `VAR x`, 1, []lexedToken{
		{token.VAR, "VAR"},
		{token.IDENT, "x"},
	})
	checkTokens(t, `VAR x`, 2, []lexedToken{
		{token.IDENT, "VAR"},
		{token.IDENT, "x"},
	})
	checkTokens(t, `let x`, 1, []lexedToken{
		{token.IDENT, "let"},
		{token.IDENT, "x"},
	})
	checkTokens(t, `let x`, 2, []lexedToken{
		{token.LET, "let"},
		{token.IDENT, "x"},
	})
	checkTokens(t, `class A`, 2, []lexedToken{
		{token.IDENT, "class"},
		{token.IDENT, "A"},
	})
	checkTokens(t, `class A`, 3, []lexedToken{
		{token.CLASS, "class"},
		{token.IDENT, "A"},
	})
}

func TestPositions(t *testing.T) {
	toks := tokenize(t, "ab\n  cd", 4)
	if toks[0].Line != 1 || toks[0].ChStart != 0 || toks[0].ChEnd != 2 {
		t.Errorf("first token at line %d, chars %d-%d", toks[0].Line, toks[0].ChStart, toks[0].ChEnd)
	}
	if toks[1].Line != 2 || toks[1].ChStart != 2 || toks[1].ChEnd != 4 {
		t.Errorf("second token at line %d, chars %d-%d", toks[1].Line, toks[1].ChStart, toks[1].ChEnd)
	}
	if toks[1].Source != "test" {
		t.Errorf("token source is %q", toks[1].Source)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected err.Kind
	}{
		{`"unterminated`, err.UNTERMINATED_STRING},
		{"\"newline\nin string\"", err.UNTERMINATED_STRING},
		{`1.2.3`, err.MULTIPLE_DECIMAL_POINTS},
		{`0x`, err.INVALID_NUMBER},
		{`§`, err.INVALID_CHARACTER},
	}
	for _, test := range tests {
		_, e := lexer.NewLexer("test", test.input, 4).Tokenize()
		if e == nil {
			t.Errorf("tokenizing %q: unexpected success", test.input)
			continue
		}
		if e.Kind != test.expected {
			t.Errorf("tokenizing %q: got kind %d %q, expected %d", test.input, e.Kind, e.Message(), test.expected)
		}
	}
}
