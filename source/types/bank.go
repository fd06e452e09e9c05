package types

import (
	"sort"
	"strings"
)

// A Bank interns composite types so that structurally equal types are the
// same instance and can be compared with ==. One bank serves one analysis
// request; tests make a fresh one per case.
type Bank struct {
	arrays    map[string]*Array
	maps      map[string]*Map
	sets      map[string]*Set
	functions map[string]*Function
	compounds map[string]*Compound
	classes   map[string]*Class
}

func NewBank() *Bank {
	return &Bank{
		arrays:    make(map[string]*Array),
		maps:      make(map[string]*Map),
		sets:      make(map[string]*Set),
		functions: make(map[string]*Function),
		compounds: make(map[string]*Compound),
		classes:   make(map[string]*Class),
	}
}

func (bk *Bank) Array(element Type) *Array {
	sig := "array<" + element.Signature() + ">"
	if a, ok := bk.arrays[sig]; ok {
		return a
	}
	a := &Array{Element: element, signature: sig}
	bk.arrays[sig] = a
	return a
}

func (bk *Bank) Map(key, value Type) *Map {
	sig := "map<" + key.Signature() + "," + value.Signature() + ">"
	if m, ok := bk.maps[sig]; ok {
		return m
	}
	m := &Map{Key: key, Value: value, signature: sig}
	bk.maps[sig] = m
	return m
}

func (bk *Bank) Set(element Type) *Set {
	sig := "set<" + element.Signature() + ">"
	if s, ok := bk.sets[sig]; ok {
		return s
	}
	s := &Set{Element: element, signature: sig}
	bk.sets[sig] = s
	return s
}

func (bk *Bank) Function(params []Type, ret Type) *Function {
	sigs := make([]string, len(params))
	for i, p := range params {
		sigs[i] = p.Signature()
	}
	sig := "function(" + strings.Join(sigs, ",") + "):" + ret.Signature()
	if f, ok := bk.functions[sig]; ok {
		return f
	}
	f := &Function{Params: params, Return: ret, signature: sig}
	bk.functions[sig] = f
	return f
}

// Compound builds a union type. Nested compounds are flattened, duplicates
// removed by structural identity, and the member signatures sorted before
// keying the cache, so that the same set of alternatives built in any merge
// order is the same instance. A one-element union is not a union: it
// collapses back to its element.
func (bk *Bank) Compound(members ...Type) Type {
	flat := []Type{}
	seen := map[string]bool{}
	var add func(t Type)
	add = func(t Type) {
		if c, ok := t.(*Compound); ok {
			for _, m := range c.Members {
				add(m)
			}
			return
		}
		if !seen[t.Signature()] {
			seen[t.Signature()] = true
			flat = append(flat, t)
		}
	}
	for _, m := range members {
		add(m)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	sort.Slice(flat, func(i, j int) bool { return flat[i].Signature() < flat[j].Signature() })
	sig := compoundSignature(flat)
	if c, ok := bk.compounds[sig]; ok {
		return c
	}
	c := &Compound{Members: flat, signature: sig}
	bk.compounds[sig] = c
	return c
}

// Class registers or retrieves a class type by name. The analyzer fills in
// the parent and member tables afterwards.
func (bk *Bank) Class(name string) *Class {
	if c, ok := bk.classes[name]; ok {
		return c
	}
	c := &Class{
		Name:    name,
		Fields:  make(map[string]Type),
		Statics: make(map[string]Type),
		Methods: make(map[string]*Function),
	}
	bk.classes[name] = c
	return c
}

func (bk *Bank) FindClass(name string) (*Class, bool) {
	c, ok := bk.classes[name]
	return c, ok
}

// Primitive maps a type name as written in source to the singleton it
// denotes, if it denotes one.
func Primitives() map[string]Type {
	return map[string]Type{
		"void":    VOID,
		"any":     ANY,
		"null":    NULL,
		"boolean": BOOLEAN,
		"bool":    BOOLEAN,
		"integer": INTEGER,
		"int":     INTEGER,
		"real":    REAL,
		"string":  STRING,
		"error":   ERROR,
	}
}
