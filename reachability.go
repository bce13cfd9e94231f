package nfa

// AccessibleFrom returns the states reachable from state in exactly one step, on any symbol.
func (a *Automaton) AccessibleFrom(state int) *Set[int] {
	mustExist(a, "AccessibleFrom")
	acc := NewSet[int]()
	for symbol := range a.alphabet.All() {
		acc.AddAll(a.Neighbors(state, symbol))
	}
	return acc
}

// Accessible returns the one-step image of the initial states over every symbol of the alphabet.
// It's a single subset-construction step, not the transitive closure; for that, see Reachable.
func (a *Automaton) Accessible() *Set[int] {
	mustExist(a, "Accessible")
	acc := NewSet[int]()
	for symbol := range a.alphabet.All() {
		a.deltaInto(acc, a.initial, symbol)
	}
	return acc
}

// Reachable returns every state that can be reached from an initial state by zero or more
// transitions, so the initial states themselves are always included. It's computed by applying
// AccessibleFrom to a frontier until nothing new turns up.
func (a *Automaton) Reachable() *Set[int] {
	mustExist(a, "Reachable")
	reached := a.initial.Clone()
	frontier := a.initial.Slice()
	for len(frontier) != 0 {
		var next []int
		for _, state := range frontier {
			for dest := range a.AccessibleFrom(state).All() {
				if !reached.Contains(dest) {
					reached.Add(dest)
					next = append(next, dest)
				}
			}
		}
		frontier = next
	}
	return reached
}

// PruneToAccessible returns a new automaton with the unreachable states removed, along with every
// transition and final-state membership that mentions them. The alphabet is kept whole.
func (a *Automaton) PruneToAccessible() *Automaton {
	mustExist(a, "PruneToAccessible")
	reachable := a.Reachable()
	unreachable := SetDifference[int](a.states, reachable)

	res := New()
	for s := range reachable.All() {
		res.AddState(s)
	}
	for s := range a.initial.All() {
		res.AddInitial(s)
	}
	for s := range a.final.All() {
		if !unreachable.Contains(s) {
			res.AddFinal(s)
		}
	}
	for c := range a.alphabet.All() {
		res.AddSymbol(c)
	}
	for t := range a.Transitions() {
		// a reachable origin implies a reachable destination
		if !unreachable.Contains(t.Origin) {
			res.AddTransition(t.Origin, t.Symbol, t.Dest)
		}
	}
	return res
}
