package token

import (
	"strings"

	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
)

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // add, foobar, x, y, ...
	NUMBER = "NUMBER" // 1343456, 1.23, 0xFF, 6.02e23, π, ∞
	STRING = "STRING" // "foo", 'bar'

	// Operators
	ASSIGN         = "="
	PLUS_ASSIGN    = "+="
	MINUS_ASSIGN   = "-="
	TIMES_ASSIGN   = "*="
	DIVIDE_ASSIGN  = "/="
	MODULO_ASSIGN  = "%="
	POWER_ASSIGN   = "**="
	BITOR_ASSIGN   = "|="
	BITAND_ASSIGN  = "&="
	BITXOR_ASSIGN  = "^="
	SHL_ASSIGN     = "<<="
	SHR_ASSIGN     = ">>="
	USHR_ASSIGN    = ">>>="

	PLUS      = "+"
	MINUS     = "-"
	TIMES     = "*"
	DIVIDE    = "/"
	INT_DIV   = "\\"
	MODULO    = "%"
	POWER     = "**"
	INCREMENT = "++"
	DECREMENT = "--"

	EQ        = "=="
	STRICT_EQ = "==="
	NOT_EQ    = "!="
	STRICT_NE = "!=="
	LT        = "<"
	GT        = ">"
	LTE       = "<="
	GTE       = ">="

	AND = "&&"
	OR  = "||"
	NOT = "!"

	BIT_AND = "&"
	BIT_OR  = "|"
	BIT_XOR = "^"
	BIT_NOT = "~"
	SHL     = "<<"
	SHR     = ">>"
	USHL    = "<<<"
	USHR    = ">>>"

	QUESTION = "?"
	COLON    = ":"
	ARROW    = "=>"
	DOT      = "."
	DOTDOT   = ".."
	COMMA    = ","
	SEMICOLON = ";"
	AT       = "@"

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"

	// Keywords
	VAR      = "var"
	LET      = "let"
	CONST    = "const"
	GLOBAL   = "global"
	FUNCTION = "function"
	CLASS    = "class"
	EXTENDS  = "extends"
	STATIC   = "static"
	NEW      = "new"
	RETURN   = "return"
	IF       = "if"
	ELSE     = "else"
	WHILE    = "while"
	DO       = "do"
	FOR      = "for"
	IN       = "in"
	BREAK    = "break"
	CONTINUE = "continue"
	TRUE     = "true"
	FALSE    = "false"
	NULL     = "null"
)

// A token. ChStart and ChEnd are rune positions within the line; Offset is
// the rune position within the whole source text. Source identifies the
// unit the token came from, for diagnostics.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Offset  int
	Source  string
}

// A keyword and the language version it appeared in. Below that version the
// word lexes as a plain identifier. This multi-version behavior is wanted:
// old scripts use 'let' and 'class' as variable names.
type keywordInfo struct {
	tType TokenType
	since int
}

var keywords = map[string]keywordInfo{
	"var":      {VAR, 1},
	"global":   {GLOBAL, 1},
	"function": {FUNCTION, 1},
	"return":   {RETURN, 1},
	"if":       {IF, 1},
	"else":     {ELSE, 1},
	"while":    {WHILE, 1},
	"do":       {DO, 1},
	"for":      {FOR, 1},
	"in":       {IN, 1},
	"break":    {BREAK, 1},
	"continue": {CONTINUE, 1},
	"true":     {TRUE, 1},
	"false":    {FALSE, 1},
	"null":     {NULL, 1},

	"and": {AND, 1},
	"or":  {OR, 1},
	"not": {NOT, 1},
	"xor": {BIT_XOR, 1},

	"let":   {LET, 2},
	"const": {CONST, 2},

	"class":   {CLASS, 3},
	"extends": {EXTENDS, 3},
	"static":  {STATIC, 3},
	"new":     {NEW, 3},
}

// LookupIdent decides whether an identifier is in fact a keyword at the
// given language version. Below CASE_SENSITIVE_FROM keywords are matched
// case-insensitively, so 'While' means 'while'.
func LookupIdent(ident string, version int) TokenType {
	key := ident
	if version < settings.CASE_SENSITIVE_FROM {
		key = strings.ToLower(ident)
	}
	if kw, ok := keywords[key]; ok && version >= kw.since {
		return kw.tType
	}
	return IDENT
}

// IsDeclarator says whether a token type begins a variable declaration.
func IsDeclarator(t TokenType) bool {
	return t == VAR || t == LET || t == CONST || t == GLOBAL
}
