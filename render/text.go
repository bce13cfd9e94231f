package render

import (
	"github.com/automata-go/nfa"
	"github.com/muesli/termenv"
)

// Colors used by Text for initial and final states.
const (
	initialColor = "#22c55e"
	finalColor   = "#f472b6"
)

// Text is the automaton's String form with initial states in green and final states in pink.
// Pass termenv.Ascii to get no escape sequences at all.
func Text(a *nfa.Automaton, p termenv.Profile, labels map[int]string) string {
	return a.StyledString(labels, func(s int, name string) string {
		switch {
		case a.IsInitial(s) && a.IsFinal(s):
			return p.String(name).Foreground(p.Color(initialColor)).Underline().Bold().String()
		case a.IsInitial(s):
			return p.String(name).Foreground(p.Color(initialColor)).Bold().String()
		case a.IsFinal(s):
			return p.String(name).Foreground(p.Color(finalColor)).Bold().String()
		}
		return name
	})
}
