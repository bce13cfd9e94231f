package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/automata-go/nfa"
	"github.com/automata-go/nfa/definition"
	"github.com/automata-go/nfa/internal/logging"
	"github.com/automata-go/nfa/render"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app is the state shared by every command: where output goes, how it's formatted, and the logger.
type app struct {
	out      io.Writer
	errOut   io.Writer
	log      *slog.Logger
	logLevel string
	format   string
	color    string
}

// output formats beyond the definition formats
const (
	formatText     = "text"
	formatDOT      = "dot"
	formatMermaid  = "mermaid"
	formatMarkdown = "markdown"
)

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, errOut: stderr, log: logging.NewNop()}
	root := &cobra.Command{
		Use:   "nfa",
		Short: "nfa builds and combines nondeterministic finite automata",
		Long: `nfa reads automata described in YAML or JSON files, combines them (union, mirror,
shuffle, pruning to the accessible states), and tests words against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = logging.New(a.errOut, level)
			switch a.color {
			case "auto", "always", "never":
			default:
				return fmt.Errorf("--color must be auto, always or never, not %q", a.color)
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringVarP(&a.format, "format", "f", "", "Output format: yaml, json, text, dot, mermaid or markdown")
	flags.StringVar(&a.color, "color", "auto", "Colorize text output: auto, always or never")

	root.AddCommand(
		newRecognizeCmd(a),
		newWordCmd(a),
		newUnionCmd(a),
		newMirrorCmd(a),
		newShuffleCmd(a),
		newPruneCmd(a),
		newTranslateCmd(a),
		newShowCmd(a),
		newDescribeCmd(a),
		newVersionCmd(a),
	)
	return root
}

// load reads the automaton described by the file at path.
func (a *app) load(path string) (*nfa.Automaton, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, err
	}
	automaton, err := def.Automaton()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("loaded automaton", "path", path, "stats", automaton.Stats().String())
	return automaton, nil
}

// emit writes automaton in the selected format, falling back to fallback when --format wasn't
// given. labels, which may be nil, annotate states in the text and diagram formats.
func (a *app) emit(automaton *nfa.Automaton, name string, labels map[int]string, fallback string) error {
	format := a.format
	if format == "" {
		format = fallback
	}
	switch strings.ToLower(format) {
	case formatText:
		_, err := io.WriteString(a.out, render.Text(automaton, a.profile(), labels))
		return err
	case formatDOT:
		_, err := io.WriteString(a.out, render.DOT(automaton, labels))
		return err
	case formatMermaid:
		_, err := io.WriteString(a.out, render.Mermaid(automaton, labels))
		return err
	case formatMarkdown:
		_, err := io.WriteString(a.out, render.Markdown(automaton, name))
		return err
	}
	defFormat, err := definition.ParseFormat(format)
	if err != nil {
		return err
	}
	return definition.FromAutomaton(name, automaton).Write(a.out, defFormat)
}

// terminal returns the file descriptor of the terminal output is going straight to, if it is.
func (a *app) terminal() (int, bool) {
	f, ok := a.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

func (a *app) isTerminal() bool {
	_, ok := a.terminal()
	return ok
}

func (a *app) profile() termenv.Profile {
	switch a.color {
	case "always":
		return termenv.ANSI256
	case "never":
		return termenv.Ascii
	}
	if a.isTerminal() {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// baseName is the file name without directory or extension, used to name results.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
