package types

import (
	"sort"
	"strings"
)

// How well a type accepts a value of another type, from safest to least
// safe. Assignment checking maps INCOMPATIBLE to an error and
// UNSAFE_DOWNCAST to a warning; everything else is silent.
type CastRank int

const (
	EQUALS CastRank = iota
	UPCAST
	SAFE_DOWNCAST
	UNSAFE_DOWNCAST
	INCOMPATIBLE
)

func (r CastRank) String() string {
	switch r {
	case EQUALS:
		return "equals"
	case UPCAST:
		return "upcast"
	case SAFE_DOWNCAST:
		return "safe downcast"
	case UNSAFE_DOWNCAST:
		return "unsafe downcast"
	}
	return "incompatible"
}

// A Type is an element of the lattice. Signature returns the structural key
// used by the interning Bank: two types are structurally equal iff their
// signatures are equal.
type Type interface {
	Accepts(other Type) CastRank
	Signature() string
	String() string
}

// The primitive types are process-wide singletons: compare them with ==.
type Primitive struct {
	name string
}

var (
	VOID    = &Primitive{"void"}
	ANY     = &Primitive{"any"}
	NULL    = &Primitive{"null"}
	BOOLEAN = &Primitive{"boolean"}
	INTEGER = &Primitive{"integer"}
	REAL    = &Primitive{"real"}
	STRING  = &Primitive{"string"}
	ERROR   = &Primitive{"error"}
)

func (p *Primitive) Signature() string { return p.name }
func (p *Primitive) String() string    { return p.name }

func (p *Primitive) Accepts(other Type) CastRank {
	if p == other {
		return EQUALS
	}
	if p == ANY {
		return UPCAST
	}
	if rank, done := acceptsUniversal(p, other); done {
		return rank
	}
	q, ok := other.(*Primitive)
	if !ok {
		return INCOMPATIBLE
	}
	// Numeric types convert in both directions, losing either precision
	// or exactness.
	if (p == INTEGER && q == REAL) || (p == REAL && q == INTEGER) {
		return SAFE_DOWNCAST
	}
	return INCOMPATIBLE
}

// acceptsUniversal handles the cases every non-any type treats alike: an
// 'any' or 'null' candidate can always be squeezed in, but unsafely, and a
// compound candidate is accepted only as well as its worst member.
func acceptsUniversal(t Type, other Type) (CastRank, bool) {
	if other == ANY || other == NULL {
		return UNSAFE_DOWNCAST, true
	}
	if c, ok := other.(*Compound); ok {
		worst := EQUALS
		for _, m := range c.Members {
			r := t.Accepts(m)
			if r > worst {
				worst = r
			}
		}
		if worst == EQUALS {
			worst = UPCAST // a compound is never identical to a non-compound
		}
		return worst, true
	}
	return INCOMPATIBLE, false
}

// Array types are covariant on the element type.
type Array struct {
	Element   Type
	signature string
}

func (a *Array) Signature() string { return a.signature }
func (a *Array) String() string    { return a.signature }

func (a *Array) Accepts(other Type) CastRank {
	if a == other {
		return EQUALS
	}
	if rank, done := acceptsUniversal(a, other); done {
		return rank
	}
	if b, ok := other.(*Array); ok {
		return a.Element.Accepts(b.Element)
	}
	return INCOMPATIBLE
}

type Map struct {
	Key       Type
	Value     Type
	signature string
}

func (m *Map) Signature() string { return m.signature }
func (m *Map) String() string    { return m.signature }

func (m *Map) Accepts(other Type) CastRank {
	if m == other {
		return EQUALS
	}
	if rank, done := acceptsUniversal(m, other); done {
		return rank
	}
	if n, ok := other.(*Map); ok {
		return worstOf(m.Key.Accepts(n.Key), m.Value.Accepts(n.Value))
	}
	return INCOMPATIBLE
}

type Set struct {
	Element   Type
	signature string
}

func (s *Set) Signature() string { return s.signature }
func (s *Set) String() string    { return s.signature }

func (s *Set) Accepts(other Type) CastRank {
	if s == other {
		return EQUALS
	}
	if rank, done := acceptsUniversal(s, other); done {
		return rank
	}
	if t, ok := other.(*Set); ok {
		return s.Element.Accepts(t.Element)
	}
	return INCOMPATIBLE
}

// Function types require equal arity; they are covariant in the return
// type and contravariant in the parameter types.
type Function struct {
	Params    []Type
	Return    Type
	signature string
}

func (f *Function) Signature() string { return f.signature }
func (f *Function) String() string    { return f.signature }

func (f *Function) Accepts(other Type) CastRank {
	if f == other {
		return EQUALS
	}
	if rank, done := acceptsUniversal(f, other); done {
		return rank
	}
	g, ok := other.(*Function)
	if !ok {
		return INCOMPATIBLE
	}
	if len(f.Params) != len(g.Params) {
		return INCOMPATIBLE
	}
	worst := f.Return.Accepts(g.Return)
	for i, p := range f.Params {
		worst = worstOf(worst, g.Params[i].Accepts(p))
	}
	return worst
}

// A class type. Fields and methods are filled in by the analyzer's
// pre-registration pass; acceptance is by identity or parent chain.
type Class struct {
	Name    string
	Parent  *Class
	Fields  map[string]Type
	Statics map[string]Type
	Methods map[string]*Function
}

func (c *Class) Signature() string { return "class " + c.Name }
func (c *Class) String() string    { return c.Name }

func (c *Class) Accepts(other Type) CastRank {
	if c == other {
		return EQUALS
	}
	if rank, done := acceptsUniversal(c, other); done {
		return rank
	}
	if d, ok := other.(*Class); ok {
		for p := d.Parent; p != nil; p = p.Parent {
			if p == c {
				return UPCAST
			}
		}
	}
	return INCOMPATIBLE
}

// FindMember looks a field or method up through the parent chain.
func (c *Class) FindMember(name string) (Type, bool) {
	for cl := c; cl != nil; cl = cl.Parent {
		if t, ok := cl.Fields[name]; ok {
			return t, true
		}
		if m, ok := cl.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (c *Class) FindStatic(name string) (Type, bool) {
	for cl := c; cl != nil; cl = cl.Parent {
		if t, ok := cl.Statics[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// A Compound is a union of alternatives. Construction (see Bank.Compound)
// guarantees the members are flattened, deduplicated, sorted by signature,
// and at least two in number.
type Compound struct {
	Members   []Type
	signature string
}

func (c *Compound) Signature() string { return c.signature }
func (c *Compound) String() string    { return c.signature }

func (c *Compound) Accepts(other Type) CastRank {
	if c == other {
		return EQUALS
	}
	if other == ANY || other == NULL {
		return UNSAFE_DOWNCAST
	}
	// A compound accepts a candidate if any member does: exactly if some
	// member matches exactly, otherwise unsafely. If no member accepts at
	// all the candidate is incompatible.
	best := INCOMPATIBLE
	for _, m := range c.Members {
		if r := m.Accepts(other); r < best {
			best = r
		}
	}
	if best == EQUALS {
		return EQUALS
	}
	if best < INCOMPATIBLE {
		return UNSAFE_DOWNCAST
	}
	return INCOMPATIBLE
}

func (c *Compound) Contains(t Type) bool {
	for _, m := range c.Members {
		if m == t {
			return true
		}
	}
	return false
}

func worstOf(a, b CastRank) CastRank {
	if a > b {
		return a
	}
	return b
}

// LeastUpperBound returns the most specific type accepting both arguments.
// Unrelated types fold into a compound; folding again grows the compound
// rather than nesting it.
func LeastUpperBound(bank *Bank, a, b Type) Type {
	if a == b {
		return a
	}
	if r := a.Accepts(b); r == EQUALS || r == UPCAST {
		return a
	}
	if r := b.Accepts(a); r == EQUALS || r == UPCAST {
		return b
	}
	return bank.Compound(a, b)
}

func sortedSignatures(members []Type) []string {
	sigs := make([]string, len(members))
	for i, m := range members {
		sigs[i] = m.Signature()
	}
	sort.Strings(sigs)
	return sigs
}

func compoundSignature(members []Type) string {
	return strings.Join(sortedSignatures(members), "|")
}
