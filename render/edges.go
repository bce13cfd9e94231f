package render

import (
	"cmp"
	"slices"
	"strings"

	"github.com/automata-go/nfa"
)

// edge is every transition between one pair of states, symbols merged into a single label.
type edge struct {
	From, To int
	Symbols  []rune
}

func (e edge) label() string {
	names := make([]string, len(e.Symbols))
	for i, c := range e.Symbols {
		names[i] = nfa.SymbolName(c)
	}
	return strings.Join(names, ",")
}

// collectEdges groups the transitions of a by (origin, destination), ordered by origin then
// destination.
func collectEdges(a *nfa.Automaton) []edge {
	type pair struct{ from, to int }
	byPair := make(map[pair]*edge)
	for t := range a.Transitions() {
		p := pair{t.Origin, t.Dest}
		e, ok := byPair[p]
		if !ok {
			e = &edge{From: t.Origin, To: t.Dest}
			byPair[p] = e
		}
		e.Symbols = append(e.Symbols, t.Symbol)
	}
	edges := make([]edge, 0, len(byPair))
	for _, e := range byPair {
		slices.Sort(e.Symbols)
		edges = append(edges, *e)
	}
	slices.SortFunc(edges, func(x, y edge) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.To, y.To)
	})
	return edges
}
