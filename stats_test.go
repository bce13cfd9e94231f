package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	s := exampleAutomaton().Stats()
	assert.Equal(t, Stats{
		States: 3, Symbols: 3, Initial: 1, Final: 1,
		Transitions: 9, Keys: 9, MaxFanout: 1, AvgFanout: 1,
	}, s)
	assert.True(t, s.IsDeterministic())
	assert.Equal(t, "States: 3 (initial 1, final 1), Symbols: 3, Transitions: 9 (max fanout 1, avg fanout 1.000)", s.String())

	a := FromWord("ab")
	a.AddTransition(0, 'a', 2)
	s = a.Stats()
	assert.Equal(t, 3, s.Transitions)
	assert.Equal(t, 2, s.Keys)
	assert.Equal(t, 2, s.MaxFanout)
	assert.InDelta(t, 1.5, s.AvgFanout, 1e-9)
	assert.False(t, s.IsDeterministic())

	empty := New().Stats()
	assert.Equal(t, Stats{}, empty)
	assert.Contains(t, empty.String(), "avg fanout n/a")
}
