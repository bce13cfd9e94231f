package nfa

import "math"

// Translate returns a copy of a with offset added to every state id. It's how two automata are
// given disjoint state spaces before being combined. Ids wrap around at the ends of the int range.
func (a *Automaton) Translate(offset int) *Automaton {
	mustExist(a, "Translate")
	return a.mapStates(func(s int) int { return s + offset })
}

// mapStates returns a copy of a with every state id s replaced by f(s). f must be one-to-one over
// a's states.
func (a *Automaton) mapStates(f func(int) int) *Automaton {
	res := New()
	for s := range a.states.All() {
		res.AddState(f(s))
	}
	for s := range a.initial.All() {
		res.AddInitial(f(s))
	}
	for s := range a.final.All() {
		res.AddFinal(f(s))
	}
	for c := range a.alphabet.All() {
		res.AddSymbol(c)
	}
	for t := range a.Transitions() {
		res.AddTransition(f(t.Origin), t.Symbol, f(t.Dest))
	}
	return res
}

// TranslateToAvoid returns a copy of a renumbered so that its smallest state id is one more than the
// largest state id of other. If either automaton has no states there's nothing to avoid and you get
// a plain copy.
//
// When a's id span doesn't fit between other's largest id and math.MaxInt, no offset can do that.
// Instead a's states are given, in ascending order, the first ids following other.MaxState() which
// other doesn't use, wrapping around to math.MinInt. Either way the result shares no state with other.
func (a *Automaton) TranslateToAvoid(other *Automaton) *Automaton {
	mustExist(a, "TranslateToAvoid")
	mustExist(other, "TranslateToAvoid")
	if a.states.Len() == 0 || other.states.Len() == 0 {
		return a.Copy()
	}
	// unsigned differences are exact here, since both are nonnegative and below 2^64
	span := uint(a.MaxState()) - uint(a.MinState())
	room := uint(math.MaxInt) - uint(other.MaxState())
	if span < room {
		// the offset may wrap, but every translated id lands inside the int range
		return a.Translate(other.MaxState() - a.MinState() + 1)
	}
	return a.renumberAvoiding(other.states, other.MaxState())
}

// renumberAvoiding maps a's states, in ascending order, onto the ids after start which aren't in
// taken, wrapping from math.MaxInt to math.MinInt.
func (a *Automaton) renumberAvoiding(taken SetView[int], start int) *Automaton {
	ids := make(map[int]int, a.states.Len())
	next := start
	for s := range a.states.All() {
		next++
		for taken.Contains(next) {
			next++
		}
		ids[s] = next
	}
	return a.mapStates(func(s int) int { return ids[s] })
}

// Union returns an automaton recognizing L(a) ∪ L(b). If the two share any state ids, b is first
// renumbered with TranslateToAvoid so that nothing gets accidentally merged; automata whose state
// spaces are already disjoint are combined as they are.
func Union(a, b *Automaton) *Automaton {
	mustExist(a, "Union")
	mustExist(b, "Union")
	if a.states.Intersects(b.states) {
		b = b.TranslateToAvoid(a)
	}
	res := a.Copy()
	for s := range b.initial.All() {
		res.AddInitial(s)
	}
	for s := range b.final.All() {
		res.AddFinal(s)
	}
	for s := range b.states.All() {
		res.AddState(s)
	}
	for c := range b.alphabet.All() {
		res.AddSymbol(c)
	}
	for t := range b.Transitions() {
		res.AddTransition(t.Origin, t.Symbol, t.Dest)
	}
	return res
}

// Mirror returns the automaton with every transition reversed and the initial and final states
// swapped. It recognizes the reversal of every word a recognizes.
func (a *Automaton) Mirror() *Automaton {
	mustExist(a, "Mirror")
	res := New()
	for s := range a.initial.All() {
		res.AddFinal(s)
	}
	for s := range a.final.All() {
		res.AddInitial(s)
	}
	for c := range a.alphabet.All() {
		res.AddSymbol(c)
	}
	for s := range a.states.All() {
		res.AddState(s)
	}
	for t := range a.Transitions() {
		res.AddTransition(t.Dest, t.Symbol, t.Origin)
	}
	return res
}
