package collections

// Set is an unordered collection of distinct values
type Set[V comparable] map[V]struct{}

// NewSet returns a set holding the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}
