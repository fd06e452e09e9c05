package dtypes

// A generic set type, used wherever we need to keep track of a collection
// of names, units, or types without caring about order.

type Set[E comparable] map[E]struct{}

func MakeFromSlice[E comparable](slice []E) Set[E] {
	result := Set[E]{}
	for _, v := range slice {
		result.Add(v)
	}
	return result
}

func (s Set[E]) Add(v E) Set[E] {
	s[v] = struct{}{}
	return s
}

func (s Set[E]) Contains(v E) bool {
	_, ok := s[v]
	return ok
}
