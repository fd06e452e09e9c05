package types_test

import (
	"testing"

	"github.com/Bux42/leekscript-vscode-sub000/source/types"
)

func TestPrimitiveRanks(t *testing.T) {
	tests := []struct {
		target    types.Type
		candidate types.Type
		expected  types.CastRank
	}{
		{types.INTEGER, types.INTEGER, types.EQUALS},
		{types.INTEGER, types.REAL, types.SAFE_DOWNCAST},
		{types.REAL, types.INTEGER, types.SAFE_DOWNCAST},
		{types.INTEGER, types.STRING, types.INCOMPATIBLE},
		{types.BOOLEAN, types.NULL, types.UNSAFE_DOWNCAST},
		{types.STRING, types.ANY, types.UNSAFE_DOWNCAST},
		{types.ANY, types.ANY, types.EQUALS},
		{types.ANY, types.INTEGER, types.UPCAST},
		{types.ANY, types.NULL, types.UPCAST},
	}
	for _, test := range tests {
		got := test.target.Accepts(test.candidate)
		if got != test.expected {
			t.Errorf("%s accepts %s: got %s, expected %s",
				test.target, test.candidate, got, test.expected)
		}
	}
}

// The bank interns structurally: asking twice for the same shape must
// return the same pointer.
func TestInterning(t *testing.T) {
	bank := types.NewBank()
	a := bank.Array(types.INTEGER)
	b := bank.Array(types.INTEGER)
	if a != b {
		t.Error("two Array<integer> types are distinct")
	}
	if bank.Map(types.STRING, types.REAL) != bank.Map(types.STRING, types.REAL) {
		t.Error("two Map<string, real> types are distinct")
	}
	if bank.Array(types.INTEGER) == bank.Array(types.REAL) {
		t.Error("Array<integer> and Array<real> are identical")
	}
	f := bank.Function([]types.Type{types.INTEGER}, types.VOID)
	if f != bank.Function([]types.Type{types.INTEGER}, types.VOID) {
		t.Error("two identical function types are distinct")
	}
}

func TestContainerRanks(t *testing.T) {
	bank := types.NewBank()
	ints := bank.Array(types.INTEGER)
	reals := bank.Array(types.REAL)
	anys := bank.Array(types.ANY)
	if got := ints.Accepts(ints); got != types.EQUALS {
		t.Errorf("Array<integer> accepts itself: %s", got)
	}
	if got := ints.Accepts(reals); got != types.SAFE_DOWNCAST {
		t.Errorf("element conversion should carry through: %s", got)
	}
	if got := anys.Accepts(ints); got != types.UPCAST {
		t.Errorf("Array<any> accepts Array<integer>: %s", got)
	}
	if got := ints.Accepts(types.INTEGER); got != types.INCOMPATIBLE {
		t.Errorf("an array is not its element type: %s", got)
	}
	m := bank.Map(types.STRING, types.INTEGER)
	n := bank.Map(types.STRING, types.REAL)
	if got := m.Accepts(n); got != types.SAFE_DOWNCAST {
		t.Errorf("map value conversion is the worst of key and value: %s", got)
	}
}

func TestFunctionVariance(t *testing.T) {
	bank := types.NewBank()
	f := bank.Function([]types.Type{types.ANY}, types.INTEGER)
	g := bank.Function([]types.Type{types.INTEGER}, types.INTEGER)
	// Passing g where f is expected narrows the parameter, which is unsafe
	// in the parameter direction.
	if got := f.Accepts(g); got != types.UNSAFE_DOWNCAST {
		t.Errorf("contravariant parameter: got %s", got)
	}
	if got := g.Accepts(f); got != types.UPCAST {
		t.Errorf("widening the parameter is an upcast: got %s", got)
	}
	h := bank.Function([]types.Type{}, types.INTEGER)
	if got := f.Accepts(h); got != types.INCOMPATIBLE {
		t.Errorf("arity mismatch: got %s", got)
	}
}

func TestClassRanks(t *testing.T) {
	bank := types.NewBank()
	entity := bank.Class("Entity")
	leek := bank.Class("Leek")
	leek.Parent = entity
	bulb := bank.Class("Bulb")
	if got := entity.Accepts(leek); got != types.UPCAST {
		t.Errorf("parent accepts child: got %s", got)
	}
	if got := leek.Accepts(entity); got != types.INCOMPATIBLE {
		t.Errorf("child does not accept parent: got %s", got)
	}
	if got := leek.Accepts(bulb); got != types.INCOMPATIBLE {
		t.Errorf("unrelated classes: got %s", got)
	}
	entity.Fields = map[string]types.Type{"hp": types.INTEGER}
	if _, ok := leek.FindMember("hp"); !ok {
		t.Error("inherited field not found through the parent chain")
	}
}

func TestCompounds(t *testing.T) {
	bank := types.NewBank()
	iOrS := bank.Compound(types.INTEGER, types.STRING)
	// Member order must not matter to interning.
	if iOrS != bank.Compound(types.STRING, types.INTEGER) {
		t.Error("compound interning is order-sensitive")
	}
	// A single member collapses to the member itself.
	if bank.Compound(types.INTEGER, types.INTEGER) != types.INTEGER {
		t.Error("a one-member compound should collapse")
	}
	// Nesting flattens.
	three := bank.Compound(iOrS, types.BOOLEAN)
	if three != bank.Compound(types.BOOLEAN, types.STRING, types.INTEGER) {
		t.Error("nested compounds should flatten")
	}
	if got := iOrS.Accepts(types.INTEGER); got != types.EQUALS {
		t.Errorf("an exact member matches exactly: got %s", got)
	}
	if got := iOrS.Accepts(types.REAL); got != types.UNSAFE_DOWNCAST {
		t.Errorf("an inexact member match downcasts: got %s", got)
	}
	if got := iOrS.Accepts(types.BOOLEAN); got != types.INCOMPATIBLE {
		t.Errorf("no member accepts boolean: got %s", got)
	}
	// The other direction: a primitive accepts a compound as well as the
	// compound's worst member.
	if got := types.INTEGER.Accepts(iOrS); got != types.INCOMPATIBLE {
		t.Errorf("integer accepts integer|string: got %s", got)
	}
	iOrR := bank.Compound(types.INTEGER, types.REAL)
	if got := types.INTEGER.Accepts(iOrR); got != types.SAFE_DOWNCAST {
		t.Errorf("integer accepts integer|real: got %s", got)
	}
}

func TestLeastUpperBound(t *testing.T) {
	bank := types.NewBank()
	if types.LeastUpperBound(bank, types.INTEGER, types.INTEGER) != types.INTEGER {
		t.Error("lub of a type with itself is itself")
	}
	if types.LeastUpperBound(bank, types.ANY, types.STRING) != types.ANY {
		t.Error("lub with any is any")
	}
	got := types.LeastUpperBound(bank, types.INTEGER, types.STRING)
	if got != bank.Compound(types.INTEGER, types.STRING) {
		t.Errorf("lub of unrelated types should be their compound: got %s", got)
	}
	entity := bank.Class("Entity")
	leek := bank.Class("Leek")
	leek.Parent = entity
	if types.LeastUpperBound(bank, entity, leek) != types.Type(entity) {
		t.Error("lub of parent and child is the parent")
	}
}
