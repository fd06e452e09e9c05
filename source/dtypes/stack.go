package dtypes

// A generic stack. The parser uses one to track bracket nesting, the
// analyzer to track the functions enclosing the code being checked.

type Stack[E any] struct {
	elements []E
}

func NewStack[E any]() *Stack[E] {
	return &Stack[E]{elements: []E{}}
}

func (s *Stack[E]) Push(v E) {
	s.elements = append(s.elements, v)
}

func (s *Stack[E]) Pop() (E, bool) {
	var empty E
	if len(s.elements) == 0 {
		return empty, false
	}
	result := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return result, true
}

func (s *Stack[E]) HeadValue() (E, bool) {
	var empty E
	if len(s.elements) == 0 {
		return empty, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[E]) Len() int {
	return len(s.elements)
}

// Find returns how many elements we would have to pop to reach the given
// value, or -1 if it isn't there. Equality is by the supplied predicate.
func (s *Stack[E]) FindBy(pred func(E) bool) int {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if pred(s.elements[i]) {
			return len(s.elements) - 1 - i
		}
	}
	return -1
}
