package main

import (
	"fmt"

	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/mcfg"
	"github.com/spf13/cobra"
)

func newRecognizeCmd() *cobra.Command {
	var grammarPath string
	var debug bool
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "recognize [tokens...]",
		Short: "Report whether a tokenized sentence is in the grammar's language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarPath)
			if err != nil {
				return err
			}
			g.Strategy = buildParser(debug, maxSteps)

			res, err := g.Run(tokenize(args), mcfg.ModeRecognize)
			if err != nil {
				return err
			}
			if res.Recognized {
				fmt.Println("recognized")
			} else {
				fmt.Println("rejected")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "path to a grammar file (defaults to the bundled English fragment)")
	cmd.Flags().BoolVar(&debug, "debug", false, "trace agenda steps to stderr")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "cap on agenda dequeues (0 = unbounded)")

	return cmd
}
