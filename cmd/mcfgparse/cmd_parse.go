package main

import (
	"fmt"

	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/mcfg"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var grammarPath string
	var debug bool
	var maxSteps int
	var withPattern bool

	cmd := &cobra.Command{
		Use:   "parse [tokens...]",
		Short: "Print every derivation tree for a tokenized sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarPath)
			if err != nil {
				return err
			}
			g.Strategy = buildParser(debug, maxSteps)

			res, err := g.Run(tokenize(args), mcfg.ModeParse)
			if err != nil {
				return err
			}
			if !res.Recognized {
				return fmt.Errorf("sentence is not in the grammar's language")
			}
			for _, tree := range res.Trees {
				if withPattern {
					fmt.Println(tree.StringWithPattern())
				} else {
					fmt.Println(tree.String())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "path to a grammar file (defaults to the bundled English fragment)")
	cmd.Flags().BoolVar(&debug, "debug", false, "trace agenda steps to stderr")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "cap on agenda dequeues (0 = unbounded)")
	cmd.Flags().BoolVar(&withPattern, "pattern", false, "annotate each node with the producing rule's composition pattern")

	return cmd
}
