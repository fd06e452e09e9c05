package token

// A TokenStream holds the tokens of one unit as a forward cursor for the
// parser. Running off the end yields EOF tokens positioned at the last
// real token.
type TokenStream struct {
	position int
	code     []Token
}

func NewStream(code []Token) *TokenStream {
	return &TokenStream{position: -1, code: code}
}

func (ts *TokenStream) NextToken() Token {
	if ts.position+1 < len(ts.code) {
		ts.position++
		return ts.code[ts.position]
	}
	if len(ts.code) == 0 {
		return Token{Type: EOF, Literal: "EOF", Line: 1}
	}
	last := ts.code[len(ts.code)-1]
	return Token{Type: EOF, Literal: "EOF",
		Line: last.Line, ChStart: last.ChStart, ChEnd: last.ChEnd,
		Offset: last.Offset, Source: last.Source}
}

// PeekAt returns the token n places ahead of the current position without
// moving it, or EOF if there is no such token.
func (ts *TokenStream) PeekAt(n int) Token {
	if ts.position+n < len(ts.code) && ts.position+n >= 0 {
		return ts.code[ts.position+n]
	}
	save := ts.position
	ts.position = len(ts.code) - 1
	result := ts.NextToken()
	ts.position = save
	return result
}
