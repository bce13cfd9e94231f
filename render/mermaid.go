package render

import (
	"fmt"
	"strings"

	"github.com/automata-go/nfa"
)

// Mermaid produces a stateDiagram-v2 for a: [*] points at the initial states and the final states
// point at [*]. Mermaid ids can't start with a minus sign, so negative states are spelled sm<n>.
func Mermaid(a *nfa.Automaton, labels map[int]string) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	for s := range a.States().All() {
		sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", mermaidText(caption(s, labels)), mermaidID(s)))
	}
	for s := range a.Initial().All() {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", mermaidID(s)))
	}
	for _, e := range collectEdges(a) {
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n", mermaidID(e.From), mermaidID(e.To), mermaidText(e.label())))
	}
	for s := range a.Final().All() {
		sb.WriteString(fmt.Sprintf("    %s --> [*]\n", mermaidID(s)))
	}
	return sb.String()
}

func mermaidID(s int) string {
	if s < 0 {
		return fmt.Sprintf("sm%d", -s)
	}
	return fmt.Sprintf("s%d", s)
}

func mermaidText(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
