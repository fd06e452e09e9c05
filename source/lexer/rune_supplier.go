package lexer

// The RuneSupplier separates the business of walking runes and tracking
// line/column positions from the token rules, which only want a cursor
// with a little lookahead.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	return rs.PeekAt(1)
}

// PeekAt looks n runes ahead without consuming anything. The operator rules
// need up to three runes of lookahead, for '>>>=' and friends.
func (rs *RuneSupplier) PeekAt(n int) rune {
	if rs.pos+n < len(rs.code) {
		return rs.code[rs.pos+n]
	}
	return 0
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.pos >= 0 && rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

// Position returns the current line number and the rune position within
// that line.
func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

// Offset returns the rune position within the whole text.
func (rs *RuneSupplier) Offset() int {
	return rs.pos
}
