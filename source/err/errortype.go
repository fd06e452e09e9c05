package err

import (
	"fmt"
	"strings"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

type Severity int

const (
	ERROR Severity = iota
	WARNING
)

// The 'error' type. Start and End delimit the offending source range; End
// may be nil, in which case the error covers just the Start token.
type Error struct {
	Kind     Kind
	Severity Severity
	Token    *token.Token
	End      *token.Token
	Args     []any
}

type Errors []*Error

// Message substitutes the error's arguments into its template. Placeholders
// are positional: {0}, {1}, ...
func (e *Error) Message() string {
	msg := e.Kind.Template()
	for i, arg := range e.Args {
		msg = strings.ReplaceAll(msg, "{"+fmt.Sprint(i)+"}", fmt.Sprint(arg))
	}
	return msg
}

// Encode produces the tuple consumed by the editor tooling:
// [severity, unit, startLine, startCol, endLine, endCol, code, params...]
// with 1-based lines and columns, and the params array omitted when empty.
func (e *Error) Encode() []any {
	endLine, endCol := e.Token.Line, e.Token.ChEnd+1
	if e.End != nil {
		endLine, endCol = e.End.Line, e.End.ChEnd+1
	}
	result := []any{int(e.Severity), e.Token.Source, e.Token.Line, e.Token.ChStart + 1,
		endLine, endCol, int(e.Kind)}
	if len(e.Args) > 0 {
		params := make([]string, len(e.Args))
		for i, arg := range e.Args {
			params[i] = fmt.Sprint(arg)
		}
		result = append(result, params)
	}
	return result
}

func (e *Error) String() string {
	sev := "error"
	if e.Severity == WARNING {
		sev = "warning"
	}
	return fmt.Sprintf("[%s] %s (line %d) %s", sev, e.Token.Source, e.Token.Line, e.Message())
}

// A Collector accumulates the diagnostics of one analysis request. The
// backing store is a persistent vector so that a pass can take a snapshot
// of the diagnostics so far and the snapshots share structure.
type Collector struct {
	list     vector.Vector
	errors   int
	warnings int
}

func NewCollector() *Collector {
	return &Collector{list: vector.Empty}
}

func (c *Collector) Throw(kind Kind, tok *token.Token, args ...any) *Error {
	e := &Error{Kind: kind, Severity: kind.DefaultSeverity(), Token: tok, Args: args}
	c.add(e)
	return e
}

func (c *Collector) ThrowWithEnd(kind Kind, start, end *token.Token, args ...any) *Error {
	e := &Error{Kind: kind, Severity: kind.DefaultSeverity(), Token: start, End: end, Args: args}
	c.add(e)
	return e
}

func (c *Collector) AddAll(errs Errors) {
	for _, e := range errs {
		c.add(e)
	}
}

func (c *Collector) add(e *Error) {
	c.list = c.list.Conj(e)
	if e.Severity == ERROR {
		c.errors++
	} else {
		c.warnings++
	}
}

func (c *Collector) ErrorCount() int   { return c.errors }
func (c *Collector) WarningCount() int { return c.warnings }

// TooMany reports whether the error ceiling has been hit, at which point the
// whole request is aborted.
func (c *Collector) TooMany() bool {
	return c.errors >= settings.MAX_ERRORS
}

// Snapshot returns the diagnostic list as it stands. Appending to the
// collector afterwards does not disturb the snapshot.
func (c *Collector) Snapshot() vector.Vector {
	return c.list
}

func (c *Collector) All() Errors {
	result := make(Errors, 0, c.list.Len())
	for it := c.list.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(*Error))
	}
	return result
}
