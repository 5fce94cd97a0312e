package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Pairs groups s into consecutive (first, second) pairs.
// ok is false when s has an odd length; the trailing element is dropped.
func Pairs[S ~[]E, E any](s S) (pairs [][2]E, ok bool) {
	pairs = make([][2]E, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		pairs = append(pairs, [2]E{s[i], s[i+1]})
	}

	return pairs, len(s)%2 == 0
}
