package nfa

import "fmt"

// Stats summarizes the size and shape of an automaton.
type Stats struct {
	States      int
	Symbols     int
	Initial     int
	Final       int
	Transitions int
	// Keys is the number of distinct (origin, symbol) pairs with at least one destination.
	Keys int
	// MaxFanout is the largest destination set of any (origin, symbol) pair; anything over 1
	// means the automaton is actually nondeterministic.
	MaxFanout int
	AvgFanout float64
}

// Stats counts the parts of a; it walks the transition table once.
func (a *Automaton) Stats() Stats {
	mustExist(a, "Stats")
	s := Stats{
		States:  a.states.Len(),
		Symbols: a.alphabet.Len(),
		Initial: a.initial.Len(),
		Final:   a.final.Len(),
		Keys:    a.transitions.len(),
	}
	for _, dests := range a.transitions.all() {
		s.Transitions += dests.Len()
		if dests.Len() > s.MaxFanout {
			s.MaxFanout = dests.Len()
		}
	}
	if s.Keys > 0 {
		s.AvgFanout = float64(s.Transitions) / float64(s.Keys)
	}
	return s
}

// IsDeterministic reports whether there's at most one initial state and no (origin, symbol) pair
// leads to more than one state.
func (s Stats) IsDeterministic() bool {
	return s.Initial <= 1 && s.MaxFanout <= 1
}

// String is a one-line summary, suitable for logging.
func (s Stats) String() string {
	avg := "n/a"
	if s.Keys > 0 {
		avg = fmt.Sprintf("%.3f", s.AvgFanout)
	}
	return fmt.Sprintf("States: %d (initial %d, final %d), Symbols: %d, Transitions: %d (max fanout %d, avg fanout %s)",
		s.States, s.Initial, s.Final, s.Symbols, s.Transitions, s.MaxFanout, avg)
}
