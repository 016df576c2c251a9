package spread

// StringSet is a set of strings, e.g. the aesthetics a layer understands.
type StringSet map[string]struct{}

// NewStringSetFrom returns the set of all elements of init.
func NewStringSetFrom(init []string) StringSet {
	s := make(StringSet, len(init))
	for _, v := range init {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}
