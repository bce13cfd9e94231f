// Package definition reads and writes automata as YAML or JSON documents, which is how the nfa
// command takes its input and reports its results. A document looks like this:
//
//	name: ends-in-ab
//	alphabet: [a, b]     # optional, symbols on transitions are added anyway
//	states: [0, 1, 2]    # optional, if present every state used must be listed
//	initial: [0]
//	final: [2]
//	transitions:
//	  - {from: 0, symbol: a, to: 0}
//	  - {from: 0, symbol: b, to: 0}
//	  - {from: 0, symbol: a, to: 1}
//	  - {from: 1, symbol: b, to: 2}
package definition

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/automata-go/nfa"
)

var (
	// ErrInvalidDefinition is wrapped by every error describing a document which parses but doesn't
	// describe an automaton.
	ErrInvalidDefinition = errors.New("invalid automaton definition")
	// ErrUnknownFormat is returned for anything other than YAML or JSON.
	ErrUnknownFormat = errors.New("unknown definition format")
)

// Transition is one from -symbol-> to entry. Symbol must be exactly one character.
type Transition struct {
	From   int    `yaml:"from" json:"from" mapstructure:"from"`
	Symbol string `yaml:"symbol" json:"symbol" mapstructure:"symbol"`
	To     int    `yaml:"to" json:"to" mapstructure:"to"`
}

// Definition is the document form of an automaton.
type Definition struct {
	Name        string       `yaml:"name,omitempty" json:"name,omitempty" mapstructure:"name"`
	Alphabet    []string     `yaml:"alphabet,flow,omitempty" json:"alphabet,omitempty" mapstructure:"alphabet"`
	States      []int        `yaml:"states,flow,omitempty" json:"states,omitempty" mapstructure:"states"`
	Initial     []int        `yaml:"initial,flow" json:"initial" mapstructure:"initial"`
	Final       []int        `yaml:"final,flow" json:"final" mapstructure:"final"`
	Transitions []Transition `yaml:"transitions,omitempty" json:"transitions,omitempty" mapstructure:"transitions"`
}

// Validate checks that every symbol is a single character and, when the states are listed,
// that nothing refers to an unlisted state.
func (d *Definition) Validate() error {
	for _, symbol := range d.Alphabet {
		if utf8.RuneCountInString(symbol) != 1 {
			return fmt.Errorf("%w: alphabet symbol %q must be a single character", ErrInvalidDefinition, symbol)
		}
	}
	for i, t := range d.Transitions {
		if utf8.RuneCountInString(t.Symbol) != 1 {
			return fmt.Errorf("%w: transition %d: symbol %q must be a single character", ErrInvalidDefinition, i, t.Symbol)
		}
	}
	if len(d.States) == 0 {
		return nil
	}

	declared := nfa.NewSet(d.States...)
	check := func(what string, s int) error {
		if !declared.Contains(s) {
			return fmt.Errorf("%w: %s state %d is not listed in states", ErrInvalidDefinition, what, s)
		}
		return nil
	}
	for _, s := range d.Initial {
		if err := check("initial", s); err != nil {
			return err
		}
	}
	for _, s := range d.Final {
		if err := check("final", s); err != nil {
			return err
		}
	}
	for i, t := range d.Transitions {
		if err := check(fmt.Sprintf("transition %d origin", i), t.From); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("transition %d destination", i), t.To); err != nil {
			return err
		}
	}
	return nil
}

// Automaton validates d and builds the automaton it describes.
func (d *Definition) Automaton() (*nfa.Automaton, error) {
	if err := d.Validate(); err != nil {
		if d.Name != "" {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		return nil, err
	}
	a := nfa.New()
	for _, s := range d.States {
		a.AddState(s)
	}
	for _, symbol := range d.Alphabet {
		r, _ := utf8.DecodeRuneInString(symbol)
		a.AddSymbol(r)
	}
	for _, t := range d.Transitions {
		r, _ := utf8.DecodeRuneInString(t.Symbol)
		a.AddTransition(t.From, r, t.To)
	}
	for _, s := range d.Initial {
		a.AddInitial(s)
	}
	for _, s := range d.Final {
		a.AddFinal(s)
	}
	return a, nil
}

// FromAutomaton describes a; everything comes out sorted so the same automaton always produces
// the same document.
func FromAutomaton(name string, a *nfa.Automaton) *Definition {
	d := &Definition{
		Name:    name,
		States:  a.States().Slice(),
		Initial: a.Initial().Slice(),
		Final:   a.Final().Slice(),
	}
	for c := range a.Alphabet().All() {
		d.Alphabet = append(d.Alphabet, string(c))
	}
	for t := range a.Transitions() {
		d.Transitions = append(d.Transitions, Transition{From: t.Origin, Symbol: string(t.Symbol), To: t.Dest})
	}
	return d
}

// Equal reports whether d and other describe the same automaton, whatever order things are listed in.
func (d *Definition) Equal(other *Definition) bool {
	a, err := d.Automaton()
	if err != nil {
		return false
	}
	b, err := other.Automaton()
	if err != nil {
		return false
	}
	return a.Equal(b)
}
