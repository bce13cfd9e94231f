package nfa

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleAutomaton is over {a,b,c}; it loops in 1 on a and b, moves to 2 on c, loops in 2 on b and
// c, then an a takes it to the accepting sink 3.
func exampleAutomaton() *Automaton {
	a := New()
	a.AddTransition(1, 'a', 1)
	a.AddTransition(1, 'b', 1)
	a.AddTransition(1, 'c', 2)
	a.AddTransition(2, 'b', 2)
	a.AddTransition(2, 'c', 2)
	a.AddTransition(2, 'a', 3)
	a.AddTransition(3, 'a', 3)
	a.AddTransition(3, 'b', 3)
	a.AddTransition(3, 'c', 3)
	a.AddInitial(1)
	a.AddFinal(3)
	return a
}

func transitionsOf(a *Automaton) []Transition {
	return slices.Collect(a.Transitions())
}

func TestNewIsEmpty(t *testing.T) {
	a := New()
	assert.Equal(t, 0, a.States().Len())
	assert.Equal(t, 0, a.Alphabet().Len())
	assert.Equal(t, 0, a.Initial().Len())
	assert.Equal(t, 0, a.Final().Len())
	assert.Equal(t, 0, a.TransitionCount())
	assert.Empty(t, transitionsOf(a))
}

func TestMutatorsMaintainInvariants(t *testing.T) {
	a := New()
	a.AddTransition(4, 'x', 7)
	assert.Equal(t, []int{4, 7}, a.States().Slice())
	assert.Equal(t, []rune{'x'}, a.Alphabet().Slice())

	a.AddInitial(9)
	a.AddFinal(-2)
	assert.Equal(t, []int{-2, 4, 7, 9}, a.States().Slice())
	assert.True(t, a.IsInitial(9))
	assert.True(t, a.IsFinal(-2))
	assert.False(t, a.IsFinal(9))

	a.AddSymbol('y')
	a.AddState(100)
	assert.True(t, a.HasSymbol('y'))
	assert.True(t, a.HasState(100))
	assert.False(t, a.HasState(101))

	// every transition endpoint is a state and every symbol is in the alphabet
	for tr := range a.Transitions() {
		assert.True(t, a.HasState(tr.Origin))
		assert.True(t, a.HasState(tr.Dest))
		assert.True(t, a.HasSymbol(tr.Symbol))
	}
}

func TestAddTransitionIsIdempotent(t *testing.T) {
	a := New()
	a.AddTransition(1, 'a', 2)
	a.AddTransition(1, 'a', 2)
	a.AddTransition(1, 'a', 3)
	assert.Equal(t, 2, a.TransitionCount())
	assert.Equal(t, []int{2, 3}, a.Neighbors(1, 'a').Slice())
	assert.True(t, a.HasTransition(1, 'a', 3))
	assert.False(t, a.HasTransition(1, 'b', 3))
	assert.Equal(t, []Transition{{1, 'a', 2}, {1, 'a', 3}}, transitionsOf(a))
}

func TestNeighborsNeverNil(t *testing.T) {
	a := exampleAutomaton()
	n := a.Neighbors(42, 'z')
	require.NotNil(t, n)
	assert.Equal(t, 0, n.Len())
	assert.Equal(t, []int{3}, a.Neighbors(2, 'a').Slice())
}

func TestTransitionsOrdered(t *testing.T) {
	a := New()
	a.AddTransition(2, 'b', 1)
	a.AddTransition(1, 'b', 2)
	a.AddTransition(1, 'a', 5)
	a.AddTransition(1, 'a', 3)
	want := []Transition{{1, 'a', 3}, {1, 'a', 5}, {1, 'b', 2}, {2, 'b', 1}}
	assert.Equal(t, want, transitionsOf(a))

	// stopping early is fine
	for tr := range a.Transitions() {
		assert.Equal(t, Transition{1, 'a', 3}, tr)
		break
	}
}

func TestMaxMinState(t *testing.T) {
	auto1 := exampleAutomaton()
	auto2 := New()
	auto2.AddTransition(1, 'a', 44)
	auto2.AddInitial(1)
	auto2.AddFinal(44)
	auto3 := New()

	assert.Equal(t, 3, auto1.MaxState())
	assert.Equal(t, 1, auto1.MinState())
	assert.Equal(t, 44, auto2.MaxState())
	assert.Equal(t, 1, auto2.MinState())
	assert.Equal(t, math.MinInt, auto3.MaxState())
	assert.Equal(t, math.MaxInt, auto3.MinState())

	auto3.AddState(-7)
	assert.Equal(t, -7, auto3.MaxState())
	assert.Equal(t, -7, auto3.MinState())
}

func TestCopy(t *testing.T) {
	a := exampleAutomaton()
	a.AddSymbol('z')
	a.AddState(77)
	c := a.Copy()
	require.True(t, a.Equal(c))
	assert.Equal(t, transitionsOf(a), transitionsOf(c))

	c.AddTransition(3, 'd', 4)
	c.AddInitial(3)
	c.AddFinal(1)
	assert.False(t, a.Equal(c))
	assert.False(t, a.HasState(4))
	assert.False(t, a.HasSymbol('d'))
	assert.Equal(t, []int{1}, a.Initial().Slice())
	assert.Equal(t, []int{3}, a.Final().Slice())
	assert.Equal(t, []int{3}, a.Neighbors(3, 'a').Slice())

	// and the other way around
	a.AddTransition(1, 'a', 2)
	assert.False(t, c.HasTransition(1, 'a', 2))
}

func TestEqual(t *testing.T) {
	assert.True(t, New().Equal(New()))
	assert.True(t, exampleAutomaton().Equal(exampleAutomaton()))

	b := exampleAutomaton()
	b.AddTransition(1, 'a', 3)
	assert.False(t, exampleAutomaton().Equal(b))

	c := exampleAutomaton()
	c.AddSymbol('q')
	assert.False(t, exampleAutomaton().Equal(c))

	// same keys, different destinations
	d1 := New()
	d1.AddTransition(1, 'a', 2)
	d1.AddState(3)
	d2 := New()
	d2.AddTransition(1, 'a', 3)
	d2.AddState(2)
	assert.False(t, d1.Equal(d2))
}

func TestNilAutomatonPanics(t *testing.T) {
	var a *Automaton
	assert.PanicsWithValue(t, "nfa: AddState called on nil automaton", func() { a.AddState(1) })
	assert.Panics(t, func() { a.AddTransition(1, 'a', 2) })
	assert.Panics(t, func() { a.Neighbors(1, 'a') })
	assert.Panics(t, func() { a.Copy() })
	assert.Panics(t, func() { a.Recognizes("") })
	assert.Panics(t, func() { Union(a, New()) })
	assert.Panics(t, func() { Union(New(), a) })
	assert.Panics(t, func() { Shuffle(New(), a) })
	assert.Panics(t, func() { New().TranslateToAvoid(a) })
	assert.Equal(t, "<nil>", a.String())
}
