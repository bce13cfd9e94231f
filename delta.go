package nfa

// This groups the functions that run words through an automaton

// Delta1 returns a fresh copy of Neighbors(origin, symbol), which the caller is free to modify.
func (a *Automaton) Delta1(origin int, symbol rune) *Set[int] {
	mustExist(a, "Delta1")
	return CollectSet(a.Neighbors(origin, symbol).All())
}

// Delta is one step of the subset construction: the union, over every state in current, of the
// states reachable on symbol.
func (a *Automaton) Delta(current SetView[int], symbol rune) *Set[int] {
	mustExist(a, "Delta")
	next := NewSet[int]()
	a.deltaInto(next, current, symbol)
	return next
}

func (a *Automaton) deltaInto(next *Set[int], current SetView[int], symbol rune) {
	for state := range current.All() {
		if dests, ok := a.transitions.get(transitionKey{origin: state, symbol: symbol}); ok {
			next.AddAll(dests)
		}
	}
}

// DeltaStar feeds word to the automaton one rune at a time, starting from current, and returns the
// set of states it ends up in. The empty word gives back a copy of current. Once the active set
// goes empty there's nowhere left to go, so we stop early.
func (a *Automaton) DeltaStar(current SetView[int], word string) *Set[int] {
	mustExist(a, "DeltaStar")
	currentStates := CollectSet(current.All())
	nextStates := NewSet[int]()
	for _, symbol := range word {
		if currentStates.Len() == 0 {
			break
		}
		a.deltaInto(nextStates, currentStates, symbol)

		// re-use these
		swap := currentStates
		currentStates = nextStates
		nextStates = swap
		nextStates.Clear()
	}
	return currentStates
}

// Recognizes reports whether some path labeled with word leads from an initial state to a final one.
func (a *Automaton) Recognizes(word string) bool {
	mustExist(a, "Recognizes")
	return a.DeltaStar(a.initial, word).Intersects(a.final)
}

// FromWord builds the chain automaton which recognizes exactly word: states 0 through the number of
// runes in word, with a transition i -word[i]-> i+1 for each rune, 0 initial and the last state final.
func FromWord(word string) *Automaton {
	a := New()
	i := 0
	for _, symbol := range word {
		a.AddTransition(i, symbol, i+1)
		i++
	}
	a.AddInitial(0)
	a.AddFinal(i)
	return a
}
