package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecognizeCmd(a *app) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "recognize FILE WORD...",
		Short: "Test words against an automaton",
		Long: `Reports, for each WORD, whether the automaton in FILE accepts it. With --quiet nothing is
printed and the command fails unless every word is accepted.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			automaton, err := a.load(args[0])
			if err != nil {
				return err
			}
			rejected := 0
			for _, word := range args[1:] {
				ok := automaton.Recognizes(word)
				a.log.Debug("recognize", "word", word, "accepted", ok)
				if !ok {
					rejected++
				}
				if quiet {
					continue
				}
				verdict := "rejected"
				if ok {
					verdict = "accepted"
				}
				fmt.Fprintf(a.out, "%q: %s\n", word, verdict)
			}
			if quiet && rejected != 0 {
				return fmt.Errorf("%d of %d words rejected", rejected, len(args)-1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; fail if any word is rejected")
	return cmd
}
