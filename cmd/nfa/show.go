package main

import (
	"io"

	"github.com/automata-go/nfa/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print an automaton",
		Long: `Prints the automaton in FILE, by default as text. Use --format dot or mermaid for a
diagram, or yaml/json to normalize the definition.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			automaton, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.emit(automaton, baseName(args[0]), nil, formatText)
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	var (
		style string
		width int
	)
	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Summarize an automaton as a Markdown report",
		Long: `Writes a Markdown report on the automaton in FILE: its size, whether it is deterministic,
and a table of its transitions. On a terminal, or with --color always, the report is rendered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			automaton, err := a.load(args[0])
			if err != nil {
				return err
			}
			md := render.Markdown(automaton, baseName(args[0]))
			if a.color == "never" || (a.color == "auto" && !a.isTerminal()) {
				_, err = io.WriteString(a.out, md)
				return err
			}
			if width == 0 {
				width = a.terminalWidth()
			}
			out, err := render.Terminal(md, style, width)
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.out, out)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "Rendering style: dark, light, notty, ... (default: chosen for the terminal)")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap the rendered report at this width (default: terminal width)")
	return cmd
}

// terminalWidth is the width of the terminal output is going to, or 80 if there isn't one.
func (a *app) terminalWidth() int {
	const fallback = 80
	fd, ok := a.terminal()
	if !ok {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
