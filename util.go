package viterbi

// stateSet collects the distinct states in a list.
func stateSet(states []State) map[State]bool {
	set := make(map[State]bool, len(states))
	for _, s := range states {
		set[s] = true
	}
	return set
}

// symbolSet collects the distinct symbols in an
// observation sequence.
func symbolSet(obs []Obs) map[Obs]bool {
	set := map[Obs]bool{}
	for _, o := range obs {
		set[o] = true
	}
	return set
}

// stateKeysEqual reports whether the keys of m are
// exactly the members of set.
func stateKeysEqual[V any](m map[State]V, set map[State]bool) bool {
	if len(m) != len(set) {
		return false
	}
	for s := range m {
		if !set[s] {
			return false
		}
	}
	return true
}

// obsKeysEqual reports whether the keys of m are exactly
// the members of set.
func obsKeysEqual[V any](m map[Obs]V, set map[Obs]bool) bool {
	if len(m) != len(set) {
		return false
	}
	for o := range m {
		if !set[o] {
			return false
		}
	}
	return true
}
