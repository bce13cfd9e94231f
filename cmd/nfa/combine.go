package main

import (
	"errors"
	"fmt"

	"github.com/automata-go/nfa"
	"github.com/automata-go/nfa/definition"
	"github.com/spf13/cobra"
)

func newWordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "word WORD",
		Short: "Build the automaton recognizing exactly WORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(nfa.FromWord(args[0]), fmt.Sprintf("word(%s)", args[0]), nil, string(definition.YAML))
		},
	}
}

func newUnionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "union A B",
		Short: "Build an automaton recognizing L(A) ∪ L(B)",
		Long: `Combines the automata in files A and B. If they share state ids, B's states are
renumbered to follow A's.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := a.loadPair(args)
			if err != nil {
				return err
			}
			res := nfa.Union(left, right)
			a.log.Debug("union built", "stats", res.Stats().String())
			return a.emit(res, fmt.Sprintf("union(%s,%s)", baseName(args[0]), baseName(args[1])), nil, string(definition.YAML))
		},
	}
}

func newMirrorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mirror FILE",
		Short: "Build the automaton recognizing every word of FILE's language reversed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			automaton, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.emit(automaton.Mirror(), fmt.Sprintf("mirror(%s)", baseName(args[0])), nil, string(definition.YAML))
		},
	}
}

func newShuffleCmd(a *app) *cobra.Command {
	var labels bool
	cmd := &cobra.Command{
		Use:   "shuffle A B",
		Short: "Build the shuffle product of two automata",
		Long: `Builds an automaton recognizing every interleaving of a word of L(A) with a word of L(B).
Only product states reachable from the initial pairs are built. With --labels, the text, dot and
mermaid formats show which pair of states each product state stands for.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := a.loadPair(args)
			if err != nil {
				return err
			}
			res, pairs := nfa.ShuffleProduct(left, right)
			a.log.Debug("shuffle product built", "pairs", len(pairs), "stats", res.Stats().String())
			var stateLabels map[int]string
			if labels {
				stateLabels = nfa.PairLabels(pairs)
			}
			return a.emit(res, fmt.Sprintf("shuffle(%s,%s)", baseName(args[0]), baseName(args[1])), stateLabels, string(definition.YAML))
		},
	}
	cmd.Flags().BoolVar(&labels, "labels", false, "Label product states with the pair they stand for")
	return cmd
}

func newPruneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prune FILE",
		Short: "Remove the states that can't be reached from an initial state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			automaton, err := a.load(args[0])
			if err != nil {
				return err
			}
			res := automaton.PruneToAccessible()
			if removed := automaton.States().Len() - res.States().Len(); removed != 0 {
				a.log.Info("pruned unreachable states", "removed", removed)
			}
			return a.emit(res, fmt.Sprintf("prune(%s)", baseName(args[0])), nil, string(definition.YAML))
		},
	}
}

var errTranslateTarget = errors.New("exactly one of --offset and --avoid is required")

func newTranslateCmd(a *app) *cobra.Command {
	var (
		offset int
		avoid  string
	)
	cmd := &cobra.Command{
		Use:   "translate FILE (--offset N | --avoid OTHER)",
		Short: "Renumber an automaton's states",
		Long: `Adds N to every state id, or with --avoid, shifts the state ids so that the smallest
comes right after the largest state id of the automaton in OTHER.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byOffset := cmd.Flags().Changed("offset")
			if byOffset == (avoid != "") {
				return errTranslateTarget
			}
			automaton, err := a.load(args[0])
			if err != nil {
				return err
			}
			var res *nfa.Automaton
			if byOffset {
				res = automaton.Translate(offset)
			} else {
				other, err := a.load(avoid)
				if err != nil {
					return err
				}
				res = automaton.TranslateToAvoid(other)
			}
			return a.emit(res, baseName(args[0]), nil, string(definition.YAML))
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Add N to every state id")
	cmd.Flags().StringVar(&avoid, "avoid", "", "Renumber past the states of the automaton in this file")
	return cmd
}

func (a *app) loadPair(args []string) (*nfa.Automaton, *nfa.Automaton, error) {
	left, err := a.load(args[0])
	if err != nil {
		return nil, nil, err
	}
	right, err := a.load(args[1])
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
