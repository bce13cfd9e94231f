package render

import (
	"fmt"
	"strings"

	"github.com/automata-go/nfa"
)

// DOT generates Graphviz source for a. Final states are double circles and each initial state gets
// an arrow in from an invisible point. labels, which may be nil, are added to the node captions.
func DOT(a *nfa.Automaton, labels map[int]string) string {
	var sb strings.Builder
	sb.WriteString(`digraph NFA {
  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
`)
	for s := range a.States().All() {
		shape := ""
		if a.IsFinal(s) {
			shape = " shape=doublecircle"
		}
		sb.WriteString(fmt.Sprintf("  %q [label=%q%s];\n", dotID(s), caption(s, labels), shape))
	}
	for s := range a.Initial().All() {
		entry := "_start_" + dotID(s)
		sb.WriteString(fmt.Sprintf("  %q [shape=point style=invis];\n", entry))
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", entry, dotID(s)))
	}
	for _, e := range collectEdges(a) {
		sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", dotID(e.From), dotID(e.To), e.label()))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func dotID(s int) string {
	return fmt.Sprintf("%d", s)
}

func caption(s int, labels map[int]string) string {
	if label, ok := labels[s]; ok {
		return fmt.Sprintf("%d (%s)", s, label)
	}
	return fmt.Sprintf("%d", s)
}
