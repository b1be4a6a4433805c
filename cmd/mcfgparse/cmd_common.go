package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/examples"
	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/mcfg"
	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/ruletext"
)

// loadGrammar reads the grammar from path, or falls back to the bundled
// English fragment when path is empty.
func loadGrammar(path string) (*mcfg.Grammar, error) {
	if path == "" {
		return ruletext.LoadGrammar(examples.EnglishFragment)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar file: %w", err)
	}
	return ruletext.LoadGrammar(string(text))
}

func buildParser(debug bool, maxSteps int) *mcfg.AgendaParser {
	return mcfg.NewAgendaParser(
		mcfg.WithDebug(debug),
		mcfg.WithMaxSteps(maxSteps),
	)
}

func tokenize(args []string) []string {
	if len(args) == 1 && strings.ContainsRune(args[0], ' ') {
		return strings.Fields(args[0])
	}
	return args
}
