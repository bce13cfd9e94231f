package nfa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// automatonGenerator makes small random automata and words over {a,b,c}. It's seeded so failures
// can be reproduced.
type automatonGenerator struct {
	r        *rand.Rand
	alphabet []rune
}

func newAutomatonGenerator(seed int64) *automatonGenerator {
	return &automatonGenerator{
		r:        rand.New(rand.NewSource(seed)),
		alphabet: []rune{'a', 'b', 'c'},
	}
}

func (g *automatonGenerator) automaton() *Automaton {
	a := New()
	stateCount := 1 + g.r.Intn(8)
	base := g.r.Intn(20) - 10
	for i := 0; i < stateCount; i++ {
		a.AddState(base + i)
	}
	transitionCount := g.r.Intn(3 * stateCount)
	for i := 0; i < transitionCount; i++ {
		a.AddTransition(base+g.r.Intn(stateCount), g.alphabet[g.r.Intn(len(g.alphabet))], base+g.r.Intn(stateCount))
	}
	a.AddInitial(base + g.r.Intn(stateCount))
	if g.r.Intn(3) == 0 {
		a.AddInitial(base + g.r.Intn(stateCount))
	}
	for i := 0; i <= g.r.Intn(2); i++ {
		a.AddFinal(base + g.r.Intn(stateCount))
	}
	return a
}

func (g *automatonGenerator) word(maxLen int) string {
	n := g.r.Intn(maxLen + 1)
	w := make([]rune, n)
	for i := range w {
		w[i] = g.alphabet[g.r.Intn(len(g.alphabet))]
	}
	return string(w)
}

func (g *automatonGenerator) words(count int) []string {
	ws := make([]string, count)
	for i := range ws {
		ws[i] = g.word(6)
	}
	return ws
}

func TestCopyPreservesLanguage(t *testing.T) {
	g := newAutomatonGenerator(1)
	for i := 0; i < 100; i++ {
		a := g.automaton()
		c := a.Copy()
		for _, w := range g.words(20) {
			assert.Equalf(t, a.Recognizes(w), c.Recognizes(w), "word %q\n%s", w, a)
		}
		before := a.Copy()
		c.AddTransition(1000, 'a', 1001)
		c.AddInitial(1000)
		c.AddFinal(1001)
		assert.True(t, a.Equal(before))
	}
}

func TestMirrorIsAnInvolution(t *testing.T) {
	g := newAutomatonGenerator(2)
	for i := 0; i < 100; i++ {
		a := g.automaton()
		m := a.Mirror()
		mm := m.Mirror()
		require.True(t, a.Equal(mm))
		for _, w := range g.words(20) {
			assert.Equalf(t, a.Recognizes(w), mm.Recognizes(w), "word %q\n%s", w, a)
			assert.Equalf(t, a.Recognizes(w), m.Recognizes(reverse(w)), "word %q\n%s", w, a)
		}
	}
}

func TestTranslateToAvoidIsDisjoint(t *testing.T) {
	g := newAutomatonGenerator(3)
	for i := 0; i < 100; i++ {
		a, b := g.automaton(), g.automaton()
		moved := a.TranslateToAvoid(b)
		assert.Greater(t, moved.MinState(), b.MaxState())
		assert.Equal(t, a.States().Len(), moved.States().Len())
		assert.False(t, moved.States().(*Set[int]).Intersects(b.States()))
	}
}

func TestUnionIsLogicalOr(t *testing.T) {
	g := newAutomatonGenerator(4)
	for i := 0; i < 100; i++ {
		a, b := g.automaton(), g.automaton()
		explicit := Union(a, b.TranslateToAvoid(a))
		implicit := Union(a, b)
		for _, w := range g.words(20) {
			want := a.Recognizes(w) || b.Recognizes(w)
			assert.Equalf(t, want, explicit.Recognizes(w), "word %q\n%s\n%s", w, a, b)
			assert.Equalf(t, want, implicit.Recognizes(w), "word %q\n%s\n%s", w, a, b)
		}
	}
}

func TestShuffleOfWords(t *testing.T) {
	g := newAutomatonGenerator(5)
	for i := 0; i < 100; i++ {
		u, v := g.word(4), g.word(3)
		s := Shuffle(FromWord(u), FromWord(v))
		for _, w := range interleavings(u, v) {
			assert.Truef(t, s.Recognizes(w), "shuffle(%q, %q) rejects %q", u, v, w)
		}
		for _, w := range g.words(30) {
			assert.Equalf(t, isInterleaving(w, u, v), s.Recognizes(w), "shuffle(%q, %q) on %q", u, v, w)
		}
	}
}

// interleavings lists every way of merging u and v while keeping each one's order.
func interleavings(u, v string) []string {
	if u == "" {
		return []string{v}
	}
	if v == "" {
		return []string{u}
	}
	var out []string
	for _, rest := range interleavings(u[1:], v) {
		out = append(out, u[:1]+rest)
	}
	for _, rest := range interleavings(u, v[1:]) {
		out = append(out, v[:1]+rest)
	}
	return out
}

func isInterleaving(w, u, v string) bool {
	for _, candidate := range interleavings(u, v) {
		if candidate == w {
			return true
		}
	}
	return false
}
