package nfa

// StatePair is a state of a shuffle product: A is a state of the first automaton, B of the second.
type StatePair struct {
	A, B int
}

// pairTable hands out a fresh canonical id for each distinct StatePair, in order of first sighting.
// No assumption is made about the id ranges of either side; negative and large ids are fine.
type pairTable struct {
	ids   map[StatePair]int
	pairs []StatePair
}

func newPairTable() *pairTable {
	return &pairTable{ids: make(map[StatePair]int)}
}

// intern returns the id for p and whether it had already been seen.
func (pt *pairTable) intern(p StatePair) (int, bool) {
	if id, ok := pt.ids[p]; ok {
		return id, true
	}
	id := len(pt.pairs)
	pt.ids[p] = id
	pt.pairs = append(pt.pairs, p)
	return id, false
}

// Shuffle returns an automaton recognizing the shuffle of L(a) and L(b): every word obtained by
// interleaving a word of L(a) with a word of L(b), keeping each word's own symbols in order.
// State ids of the result are 0..n-1; see ShuffleProduct for what they stand for.
func Shuffle(a, b *Automaton) *Automaton {
	res, _ := ShuffleProduct(a, b)
	return res
}

// ShuffleProduct builds the shuffle automaton and also returns the pair table: state i of the result
// is the product state pairs[i].
//
// From a product state (p, q), on symbol c, exactly one side takes a step: there's a transition to
// (p', q) for each p' in δa(p, c) and to (p, q') for each q' in δb(q, c). When both sides can consume
// c, both kinds of transition are present and the automaton picks nondeterministically.
//
// Every pair in initial(a)×initial(b) is initial and every pair in final(a)×final(b) is final. The
// textbook construction considers the whole product a.states×b.states, but many of those aren't
// reachable, so we start from the initial pairs and keep following the transitions coming out.
// Unreachable pairs can't contribute to the language anyway.
func ShuffleProduct(a, b *Automaton) (*Automaton, []StatePair) {
	mustExist(a, "Shuffle")
	mustExist(b, "Shuffle")

	res := New()
	alphabet := SetUnion[rune](a.alphabet, b.alphabet)
	for c := range alphabet.All() {
		res.AddSymbol(c)
	}

	pt := newPairTable()
	var worklist []StatePair
	visit := func(p StatePair) int {
		id, seen := pt.intern(p)
		if !seen {
			res.AddState(id)
			if a.final.Contains(p.A) && b.final.Contains(p.B) {
				res.AddFinal(id)
			}
			worklist = append(worklist, p)
		}
		return id
	}

	for p := range a.initial.All() {
		for q := range b.initial.All() {
			res.AddInitial(visit(StatePair{A: p, B: q}))
		}
	}

	for len(worklist) != 0 {
		pair := worklist[0]
		worklist = worklist[1:]
		origin := pt.ids[pair]
		for c := range alphabet.All() {
			for p := range a.Neighbors(pair.A, c).All() {
				res.AddTransition(origin, c, visit(StatePair{A: p, B: pair.B}))
			}
			for q := range b.Neighbors(pair.B, c).All() {
				res.AddTransition(origin, c, visit(StatePair{A: pair.A, B: q}))
			}
		}
	}
	return res, pt.pairs
}
