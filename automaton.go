package nfa

import (
	"iter"
	"math"
)

// Automaton is a nondeterministic finite automaton over an alphabet of runes. States are plain ints.
// The zero value is not usable; start with New() or one of the transforms.
// INVARIANT: every state mentioned by initial, final, or a transition is in states
// INVARIANT: every symbol on a transition is in alphabet
type Automaton struct {
	states      *Set[int]
	alphabet    *Set[rune]
	initial     *Set[int]
	final       *Set[int]
	transitions transitionTable
}

// Transition is one (origin, symbol, dest) triple of the transition relation.
type Transition struct {
	Origin int
	Symbol rune
	Dest   int
}

// New returns an automaton with no states, symbols, or transitions.
func New() *Automaton {
	return &Automaton{
		states:      NewSet[int](),
		alphabet:    NewSet[rune](),
		initial:     NewSet[int](),
		final:       NewSet[int](),
		transitions: newTransitionTable(),
	}
}

// mustExist enforces the calling contract: a nil automaton is a programming error, not something
// to limp along with.
func mustExist(a *Automaton, op string) {
	if a == nil {
		panic("nfa: " + op + " called on nil automaton")
	}
}

// AddState adds s to the states; adding it again changes nothing.
func (a *Automaton) AddState(s int) {
	mustExist(a, "AddState")
	a.states.Add(s)
}

// AddSymbol adds c to the alphabet, whether or not any transition uses it.
func (a *Automaton) AddSymbol(c rune) {
	mustExist(a, "AddSymbol")
	a.alphabet.Add(c)
}

// AddTransition adds origin -symbol-> dest, and as a side effect adds both states and the symbol.
// Adding a transition that's already there changes nothing.
func (a *Automaton) AddTransition(origin int, symbol rune, dest int) {
	mustExist(a, "AddTransition")
	a.states.Add(origin)
	a.states.Add(dest)
	a.alphabet.Add(symbol)
	a.transitions.add(transitionKey{origin: origin, symbol: symbol}, dest)
}

// AddInitial makes s an initial state, adding it to the states if need be.
func (a *Automaton) AddInitial(s int) {
	mustExist(a, "AddInitial")
	a.states.Add(s)
	a.initial.Add(s)
}

// AddFinal makes s a final state, adding it to the states if need be.
func (a *Automaton) AddFinal(s int) {
	mustExist(a, "AddFinal")
	a.states.Add(s)
	a.final.Add(s)
}

// States returns a read-only view of every state, live rather than a snapshot.
func (a *Automaton) States() SetView[int] {
	mustExist(a, "States")
	return a.states
}

// Initial returns a read-only view of the initial states.
func (a *Automaton) Initial() SetView[int] {
	mustExist(a, "Initial")
	return a.initial
}

// Final returns a read-only view of the final states.
func (a *Automaton) Final() SetView[int] {
	mustExist(a, "Final")
	return a.final
}

// Alphabet returns a read-only view of the symbols.
func (a *Automaton) Alphabet() SetView[rune] {
	mustExist(a, "Alphabet")
	return a.alphabet
}

// Neighbors returns the states reachable from origin on symbol in one step. It never returns nil;
// when there's no such transition you get a shared empty set.
func (a *Automaton) Neighbors(origin int, symbol rune) SetView[int] {
	mustExist(a, "Neighbors")
	if dests, ok := a.transitions.get(transitionKey{origin: origin, symbol: symbol}); ok {
		return dests
	}
	return emptyStates
}

// HasTransition reports whether origin -symbol-> dest is a transition.
func (a *Automaton) HasTransition(origin int, symbol rune, dest int) bool {
	return a.Neighbors(origin, symbol).Contains(dest)
}

// HasState reports whether s is one of the states.
func (a *Automaton) HasState(s int) bool {
	return a.States().Contains(s)
}

// IsInitial reports whether s is an initial state.
func (a *Automaton) IsInitial(s int) bool {
	return a.Initial().Contains(s)
}

// IsFinal reports whether s is a final state.
func (a *Automaton) IsFinal(s int) bool {
	return a.Final().Contains(s)
}

// HasSymbol reports whether c is in the alphabet.
func (a *Automaton) HasSymbol(c rune) bool {
	return a.Alphabet().Contains(c)
}

// Transitions yields every transition, ordered by origin, then symbol, then destination.
func (a *Automaton) Transitions() iter.Seq[Transition] {
	mustExist(a, "Transitions")
	return func(yield func(Transition) bool) {
		for key, dests := range a.transitions.all() {
			for dest := range dests.All() {
				if !yield(Transition{Origin: key.origin, Symbol: key.symbol, Dest: dest}) {
					return
				}
			}
		}
	}
}

// TransitionCount is the number of (origin, symbol, dest) triples.
func (a *Automaton) TransitionCount() int {
	mustExist(a, "TransitionCount")
	n := 0
	for _, dests := range a.transitions.all() {
		n += dests.Len()
	}
	return n
}

// Copy returns a deep duplicate; changing one afterward never affects the other.
func (a *Automaton) Copy() *Automaton {
	mustExist(a, "Copy")
	return a.Translate(0)
}

// Equal reports whether a and b have exactly the same states, symbols, initial & final states,
// and transitions. It's structural, not language equivalence.
func (a *Automaton) Equal(b *Automaton) bool {
	mustExist(a, "Equal")
	mustExist(b, "Equal")
	if !a.states.Equal(b.states) || !a.alphabet.Equal(b.alphabet) ||
		!a.initial.Equal(b.initial) || !a.final.Equal(b.final) {
		return false
	}
	if a.transitions.len() != b.transitions.len() {
		return false
	}
	for key, dests := range a.transitions.all() {
		other, ok := b.transitions.get(key)
		if !ok || !dests.Equal(other) {
			return false
		}
	}
	return true
}

// MaxState returns the largest state id, or math.MinInt if there are no states.
func (a *Automaton) MaxState() int {
	mustExist(a, "MaxState")
	largest := math.MinInt
	for s := range a.states.items {
		if s > largest {
			largest = s
		}
	}
	return largest
}

// MinState returns the smallest state id, or math.MaxInt if there are no states.
func (a *Automaton) MinState() int {
	mustExist(a, "MinState")
	smallest := math.MaxInt
	for s := range a.states.items {
		if s < smallest {
			smallest = s
		}
	}
	return smallest
}
