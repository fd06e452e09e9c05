package parser

import (
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

// The precedence ladder, low to high. Assignment and power are
// right-associative, which their parse functions handle by recursing at
// one level below their own precedence.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT     // = += -= ...
	INTERVAL       // ..
	TERNARY        // ?:
	LOGICAL_OR     // || or
	LOGICAL_AND    // && and
	BITWISE_OR     // |
	BITWISE_XOR    // ^ xor
	BITWISE_AND    // &
	EQUALITY       // == != === !==
	RELATIONAL     // < > <= >=
	SHIFT          // << >> <<< >>>
	ADDITIVE       // + -
	MULTIPLICATIVE // * / % \
	POWER          // **
	UNARY          // prefix - ! ~ ++ --
	POSTFIX        // calls, indexing, member access, x++ x--
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:        ASSIGNMENT,
	token.PLUS_ASSIGN:   ASSIGNMENT,
	token.MINUS_ASSIGN:  ASSIGNMENT,
	token.TIMES_ASSIGN:  ASSIGNMENT,
	token.DIVIDE_ASSIGN: ASSIGNMENT,
	token.MODULO_ASSIGN: ASSIGNMENT,
	token.POWER_ASSIGN:  ASSIGNMENT,
	token.BITOR_ASSIGN:  ASSIGNMENT,
	token.BITAND_ASSIGN: ASSIGNMENT,
	token.BITXOR_ASSIGN: ASSIGNMENT,
	token.SHL_ASSIGN:    ASSIGNMENT,
	token.SHR_ASSIGN:    ASSIGNMENT,
	token.USHR_ASSIGN:   ASSIGNMENT,

	token.DOTDOT: INTERVAL,

	token.QUESTION: TERNARY,

	token.OR:  LOGICAL_OR,
	token.AND: LOGICAL_AND,

	token.BIT_OR:  BITWISE_OR,
	token.BIT_XOR: BITWISE_XOR,
	token.BIT_AND: BITWISE_AND,

	token.EQ:        EQUALITY,
	token.STRICT_EQ: EQUALITY,
	token.NOT_EQ:    EQUALITY,
	token.STRICT_NE: EQUALITY,

	token.LT:  RELATIONAL,
	token.GT:  RELATIONAL,
	token.LTE: RELATIONAL,
	token.GTE: RELATIONAL,

	token.SHL:  SHIFT,
	token.SHR:  SHIFT,
	token.USHL: SHIFT,
	token.USHR: SHIFT,

	token.PLUS:  ADDITIVE,
	token.MINUS: ADDITIVE,

	token.TIMES:   MULTIPLICATIVE,
	token.DIVIDE:  MULTIPLICATIVE,
	token.INT_DIV: MULTIPLICATIVE,
	token.MODULO:  MULTIPLICATIVE,

	token.POWER: POWER,

	token.LPAREN:    POSTFIX,
	token.LBRACK:    POSTFIX,
	token.DOT:       POSTFIX,
	token.INCREMENT: POSTFIX,
	token.DECREMENT: POSTFIX,
}

func lookupPrecedence(t token.TokenType) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
