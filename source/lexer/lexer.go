package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

type Lexer struct {
	runes   *RuneSupplier
	source  string
	version int
	lineNo  int
	tstart  int // rune position in the line at the start of the current token
	ostart  int // rune position in the whole text at the start of the current token
}

func NewLexer(source, input string, version int) *Lexer {
	return &Lexer{
		runes:   NewRuneSupplier([]rune(input)),
		source:  source,
		version: version,
		lineNo:  1,
	}
}

// Tokenize runs the whole input through the lexer, returning the token
// stream terminated by EOF. A lexical error is fatal: tokenization stops
// and the tokens so far are returned along with the error.
func (l *Lexer) Tokenize() ([]token.Token, *err.Error) {
	result := []token.Token{}
	for {
		tok, lexErr := l.nextToken()
		if lexErr != nil {
			return result, lexErr
		}
		result = append(result, tok)
		if tok.Type == token.EOF {
			return result, nil
		}
	}
}

// One token per call, left to right, one rune of lookahead except where the
// operator rules need more. The dispatch order matters: whitespace, string,
// comment, number, the numeric glyphs, identifier/keyword, operator.
func (l *Lexer) nextToken() (token.Token, *err.Error) {
	for {
		l.skipWhitespace()
		if l.runes.CurrentRune() == '/' && l.runes.PeekRune() == '/' {
			l.skipLineComment()
			continue
		}
		if l.runes.CurrentRune() == '/' && l.runes.PeekRune() == '*' {
			l.skipBlockComment()
			continue
		}
		break
	}
	l.lineNo, l.tstart = l.runes.Position()
	l.ostart = l.runes.Offset()

	ch := l.runes.CurrentRune()
	switch {
	case ch == 0:
		return l.makeToken(token.EOF, "EOF"), nil
	case ch == '"' || ch == '\'':
		return l.readString(ch)
	case isDigit(ch):
		return l.readNumber()
	case ch == '.' && isDigit(l.runes.PeekRune()):
		return l.readNumber()
	case ch == 'π' || ch == '∞':
		return l.newToken(token.NUMBER, string(ch)), nil
	case isLegalStart(ch):
		return l.readIdentifier(), nil
	}
	if tok, ok := l.readOperator(); ok {
		return tok, nil
	}
	return token.Token{}, l.throw(err.INVALID_CHARACTER, string(ch))
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.runes.CurrentRune() {
		case ' ', '\t', '\r', '\n':
			l.runes.Next()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for l.runes.CurrentRune() != '\n' && l.runes.CurrentRune() != 0 {
		l.runes.Next()
	}
}

func (l *Lexer) skipBlockComment() {
	l.runes.Next()
	l.runes.Next()
	for l.runes.CurrentRune() != 0 {
		if l.runes.CurrentRune() == '*' && l.runes.PeekRune() == '/' {
			l.runes.Next()
			l.runes.Next()
			return
		}
		l.runes.Next()
	}
}

// readString consumes a quoted literal. The escape flag stops an escaped
// quote from terminating it; a newline or the end of the text inside the
// literal is fatal.
func (l *Lexer) readString(quote rune) (token.Token, *err.Error) {
	escape := false
	result := ""
	for {
		l.runes.Next()
		ch := l.runes.CurrentRune()
		if ch == 0 || ch == '\n' || ch == '\r' {
			return token.Token{}, l.throw(err.UNTERMINATED_STRING)
		}
		if escape {
			escape = false
			switch ch {
			case 'n':
				result = result + "\n"
			case 't':
				result = result + "\t"
			case 'r':
				result = result + "\r"
			case '\\', '\'', '"':
				result = result + string(ch)
			default:
				result = result + "\\" + string(ch)
			}
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == quote {
			return l.newToken(token.STRING, result), nil
		}
		result = result + string(ch)
	}
}

// readNumber accepts embedded letters so that hex, binary, and scientific
// literals come through as one token. A '.' is part of the number unless a
// second '.' follows it (that's the range operator) or one has been seen
// already, which is fatal.
func (l *Lexer) readNumber() (token.Token, *err.Error) {
	result := string(l.runes.CurrentRune())
	seenDot := l.runes.CurrentRune() == '.'
	for {
		next := l.runes.PeekRune()
		if next == '.' {
			if l.runes.PeekAt(2) == '.' {
				break // reserved for the range operator
			}
			if seenDot {
				return token.Token{}, l.throw(err.MULTIPLE_DECIMAL_POINTS, result+".")
			}
			seenDot = true
			l.runes.Next()
			result = result + "."
			continue
		}
		if isDigit(next) || unicode.IsLetter(next) ||
			((next == '+' || next == '-') && (l.runes.CurrentRune() == 'e' || l.runes.CurrentRune() == 'E') && strings.HasPrefix(result, "0x") == false) {
			l.runes.Next()
			result = result + string(l.runes.CurrentRune())
			continue
		}
		break
	}
	if !validNumber(result) {
		return token.Token{}, l.throw(err.INVALID_NUMBER, result)
	}
	return l.newToken(token.NUMBER, result), nil
}

func validNumber(s string) bool {
	if _, e := strconv.ParseInt(s, 0, 64); e == nil {
		return true
	}
	if _, e := strconv.ParseFloat(s, 64); e == nil {
		return true
	}
	if len(s) > 2 && (s[:2] == "0b" || s[:2] == "0B") {
		_, e := strconv.ParseInt(s[2:], 2, 64)
		return e == nil
	}
	return false
}

func (l *Lexer) readIdentifier() token.Token {
	result := string(l.runes.CurrentRune())
	for isLegalPart(l.runes.PeekRune()) {
		l.runes.Next()
		result = result + string(l.runes.CurrentRune())
	}
	return l.newToken(token.LookupIdent(result, l.version), result)
}

// The operators, longest first, so that '>>>=' wins over '>>>' wins over
// '>>' wins over '>'.
var operators = []string{
	">>>=",
	"===", "!==", "<<<", ">>>", "**=", "<<=", ">>=",
	"==", "!=", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=", "%=",
	"|=", "&=", "^=", "++", "--", "**", "<<", ">>", "=>", "..",
	"+", "-", "*", "/", "%", "\\", "=", "<", ">", "!", "&", "|", "^",
	"~", "?", ":", ".", ",", ";", "@",
	"(", ")", "[", "]", "{", "}",
}

func (l *Lexer) readOperator() (token.Token, bool) {
	for _, op := range operators {
		runes := []rune(op)
		match := true
		for i, r := range runes {
			if l.runes.PeekAt(i) != r {
				match = false
				break
			}
		}
		if match {
			for range runes[1:] {
				l.runes.Next()
			}
			return l.newToken(token.TokenType(op), op), true
		}
	}
	return token.Token{}, false
}

// newToken consumes the current rune and stamps the token with the
// position recorded at the start of the lexeme.
func (l *Lexer) newToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.makeToken(tokenType, st)
}

func (l *Lexer) makeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		fmt.Println(tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Source: l.source,
		Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo, Offset: l.ostart}
}

func (l *Lexer) throw(kind err.Kind, args ...any) *err.Error {
	tok := l.makeToken(token.ILLEGAL, "")
	return &err.Error{Kind: kind, Severity: err.ERROR, Token: &tok, Args: args}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLegalStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isLegalPart(ch rune) bool {
	return unicode.IsLetter(ch) || isDigit(ch) || ch == '_'
}
