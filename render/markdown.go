package render

import (
	"fmt"
	"strings"

	"github.com/automata-go/nfa"
	"github.com/charmbracelet/glamour"
)

// Markdown summarizes a: a table of counts followed by one row per transition. title may be empty.
func Markdown(a *nfa.Automaton, title string) string {
	var sb strings.Builder
	if title == "" {
		title = "Automaton"
	}
	sb.WriteString("# " + markdownText(title) + "\n\n")

	st := a.Stats()
	kind := "nondeterministic"
	if st.IsDeterministic() {
		kind = "deterministic"
	}
	sb.WriteString("| property | value |\n|---|---|\n")
	rows := [][2]string{
		{"states", fmt.Sprintf("%d", st.States)},
		{"initial", setText(a.Initial())},
		{"final", setText(a.Final())},
		{"alphabet", symbolsText(a.Alphabet())},
		{"transitions", fmt.Sprintf("%d", st.Transitions)},
		{"max fanout", fmt.Sprintf("%d", st.MaxFanout)},
		{"kind", kind},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", row[0], row[1]))
	}

	sb.WriteString("\n## Transitions\n\n")
	if st.Transitions == 0 {
		sb.WriteString("_none_\n")
		return sb.String()
	}
	sb.WriteString("| from | symbol | to |\n|---|---|---|\n")
	for t := range a.Transitions() {
		sb.WriteString(fmt.Sprintf("| %d | %s | %d |\n", t.Origin, markdownText(nfa.SymbolName(t.Symbol)), t.Dest))
	}
	return sb.String()
}

// Terminal renders markdown for display in a terminal. style is one of glamour's standard style
// names ("dark", "light", "notty", ...); an empty style picks one to suit the terminal background.
func Terminal(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func setText(states nfa.SetView[int]) string {
	names := make([]string, 0, states.Len())
	for s := range states.All() {
		names = append(names, fmt.Sprintf("%d", s))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func symbolsText(symbols nfa.SetView[rune]) string {
	names := make([]string, 0, symbols.Len())
	for c := range symbols.All() {
		names = append(names, markdownText(nfa.SymbolName(c)))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`)

func markdownText(s string) string {
	return markdownEscaper.Replace(s)
}
