package nfa

import (
	"fmt"
	"strings"
	"unicode"
)

// prettyPrinter makes a human-readable representation of an automaton. States may be given labels,
// which are shown next to the numeric id; ShuffleProduct's pair table is the obvious use. For an
// example of the output, see TestPrettyPrint in prettyprinter_test.go
type prettyPrinter struct {
	stateLabels map[int]string
	// styleName, if set, decorates each state's name (label included) wherever it's printed
	styleName func(state int, name string) string
}

func newPrettyPrinter() *prettyPrinter {
	return &prettyPrinter{stateLabels: make(map[int]string)}
}

func (pp *prettyPrinter) labelState(state int, label string) {
	pp.stateLabels[state] = label
}

func (pp *prettyPrinter) stateName(state int) string {
	name := fmt.Sprintf("%d", state)
	if label, ok := pp.stateLabels[state]; ok {
		name = fmt.Sprintf("%d[%s]", state, label)
	}
	if pp.styleName != nil {
		return pp.styleName(state, name)
	}
	return name
}

func (pp *prettyPrinter) stateSet(states SetView[int]) string {
	names := make([]string, 0, states.Len())
	for s := range states.All() {
		names = append(names, pp.stateName(s))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func (pp *prettyPrinter) printAutomaton(a *Automaton) string {
	var sb strings.Builder
	sb.WriteString("- States : " + pp.stateSet(a.states) + "\n")
	sb.WriteString("- Initial : " + pp.stateSet(a.initial) + "\n")
	sb.WriteString("- Final : " + pp.stateSet(a.final) + "\n")

	symbols := make([]string, 0, a.alphabet.Len())
	for c := range a.alphabet.All() {
		symbols = append(symbols, SymbolName(c))
	}
	sb.WriteString("- Alphabet : {" + strings.Join(symbols, ", ") + "}\n")

	sb.WriteString("- Transitions :")
	if a.transitions.len() == 0 {
		sb.WriteString(" none\n")
		return sb.String()
	}
	sb.WriteString("\n")
	for key, dests := range a.transitions.all() {
		sb.WriteString(fmt.Sprintf("    (%s, %s) → %s\n", pp.stateName(key.origin), SymbolName(key.symbol), pp.stateSet(dests)))
	}
	return sb.String()
}

// String lists the states, initial & final states, alphabet, and transitions, one key per line.
func (a *Automaton) String() string {
	if a == nil {
		return "<nil>"
	}
	return newPrettyPrinter().printAutomaton(a)
}

// LabeledString is String with labels shown next to the given states' ids.
func (a *Automaton) LabeledString(labels map[int]string) string {
	mustExist(a, "LabeledString")
	return a.StyledString(labels, nil)
}

// StyledString is LabeledString with every state name passed through style, e.g. to colorize it.
// labels and style may each be nil.
func (a *Automaton) StyledString(labels map[int]string, style func(state int, name string) string) string {
	mustExist(a, "StyledString")
	pp := newPrettyPrinter()
	for state, label := range labels {
		pp.labelState(state, label)
	}
	pp.styleName = style
	return pp.printAutomaton(a)
}

// PairLabels turns ShuffleProduct's pair table into labels suitable for LabeledString.
func PairLabels(pairs []StatePair) map[int]string {
	labels := make(map[int]string, len(pairs))
	for id, p := range pairs {
		labels[id] = fmt.Sprintf("%d,%d", p.A, p.B)
	}
	return labels
}

// SymbolName renders a symbol for display; printable runes stand for themselves, the ASCII control
// characters get their traditional names and anything else is shown as U+XXXX.
func SymbolName(c rune) string {
	controlNames := []string{
		"nul", "soh", "stx", "etx", "eot", "enq", "ack", "bel", "bs", "ht", "nl", "vt", "np", "cr", "so", "si", "dle",
		"dc1", "dc2", "dc3", "dc4", "nak", "syn", "etb", "can", "em", "sub", "esc", "fs", "gs", "rs", "us", "sp",
	}
	switch {
	case c >= 0 && int(c) < len(controlNames):
		return controlNames[c]
	case c == 0x7f:
		return "del"
	case unicode.IsPrint(c):
		return string(c)
	default:
		return fmt.Sprintf("%U", c)
	}
}
