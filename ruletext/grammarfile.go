package ruletext

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/mcfg"
)

const startDirective = ";start:"

// LoadGrammar parses a whole grammar file's text into a *mcfg.Grammar.
// Blank lines are ignored; a line beginning with ';' is a comment unless
// it is the ";start: S1 S2 …" directive naming the grammar's start
// nonterminal(s), which may appear anywhere in the file and more than
// once (the named sets are unioned).
//
// Grounded on ling0322-pcfg/grammar.go's ParseGrammar, generalizing its
// ";!exports:" directive to ";start:" and dropping the CNF-oriented
// DebugMode/ConvertToCNF pipeline that followed it, since this reader's
// only job is to hand NewGrammar a validated rule set.
func LoadGrammar(grammarText string) (*mcfg.Grammar, error) {
	var rules []*mcfg.Rule
	start := make(map[mcfg.Nonterminal]bool)

	for lineNo, line := range strings.Split(grammarText, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, startDirective) {
			for _, name := range strings.Fields(line[len(startDirective):]) {
				start[mcfg.Nonterminal(name)] = true
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		rule, err := ParseRule(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo+1)
		}
		rules = append(rules, rule)
	}

	if len(start) == 0 {
		return nil, errors.Wrap(mcfg.ErrUnparsable, "grammar text names no start nonterminal (missing ;start: directive)")
	}

	return mcfg.NewGrammar(rules, start, nil)
}
