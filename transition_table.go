package nfa

import (
	"cmp"
	"iter"
	"slices"
)

// transitionKey is the (origin, symbol) half of a transition; the table maps it to the set of
// destinations. Keys order by origin first, then symbol.
type transitionKey struct {
	origin int
	symbol rune
}

func compareKeys(a, b transitionKey) int {
	if c := cmp.Compare(a.origin, b.origin); c != 0 {
		return c
	}
	return cmp.Compare(a.symbol, b.symbol)
}

// transitionTable stores the transition relation. Lookups go through the map; iteration walks the
// keys in order, so anything that rebuilds an automaton by iterating its transitions is deterministic.
// INVARIANT: no stored destination set is empty
type transitionTable struct {
	dests map[transitionKey]*Set[int]
}

func newTransitionTable() transitionTable {
	return transitionTable{dests: make(map[transitionKey]*Set[int])}
}

func (t *transitionTable) get(key transitionKey) (*Set[int], bool) {
	d, ok := t.dests[key]
	return d, ok
}

// add records origin -symbol-> dest, creating the destination set if this is the key's first entry.
func (t *transitionTable) add(key transitionKey, dest int) {
	d, ok := t.dests[key]
	if !ok {
		d = NewSet[int]()
		t.dests[key] = d
	}
	d.Add(dest)
}

func (t *transitionTable) len() int {
	return len(t.dests)
}

func (t *transitionTable) keys() []transitionKey {
	keys := make([]transitionKey, 0, len(t.dests))
	for k := range t.dests {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// all yields (key, destinations) pairs in key order. Callers must not modify the yielded sets.
func (t *transitionTable) all() iter.Seq2[transitionKey, *Set[int]] {
	return func(yield func(transitionKey, *Set[int]) bool) {
		for _, k := range t.keys() {
			if !yield(k, t.dests[k]) {
				return
			}
		}
	}
}
