package mcfg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode selects what Grammar.Run computes.
type Mode string

const (
	// ModeRecognize decides whether the input is in the language.
	ModeRecognize Mode = "recognize"
	// ModeParse enumerates every derivation tree for the input.
	ModeParse Mode = "parse"
)

// Result is what Grammar.Run returns: a recognition answer and, in
// ModeParse, the set of derivation trees.
type Result struct {
	Recognized bool
	Trees      []*Tree
}

// ParseStrategy is the engine a Grammar dispatches to. The agenda-based
// parser in this package is the default; spec.md section 9 notes that
// alternative engines (e.g. CKY) could be substituted behind the same
// interface.
type ParseStrategy interface {
	Parse(g *Grammar, tokens []string, mode Mode) (*Result, error)
}

type rhsOccurrence struct {
	Rule *Rule
	Pos  int
}

// Grammar is an immutable set of rules, a terminal alphabet, and a set
// of designated start nonterminals. It is the entry point for parsing:
// construction validates every rule and builds the indices the parser
// needs; Run dispatches to the configured ParseStrategy.
type Grammar struct {
	Rules    []*Rule
	Alphabet map[string]bool
	Start    map[Nonterminal]bool
	Strategy ParseStrategy

	Debug bool

	rulesByLHS     map[Nonterminal][]*Rule
	terminalsByTok map[string][]*Rule
	rhsOccurrences map[Nonterminal][]rhsOccurrence
}

// NewGrammar validates rules and builds a Grammar. If alphabet is nil or
// empty, it is inferred from the grammar's terminal rules, mirroring
// original_source/src/mcfg_parser/grammar.py's
// MultipleContextFreeGrammar.__init__ falling back to
// {rule.left_side.string_variables[0][0] for rule in rules if
// rule.is_epsilon} when no alphabet is supplied.
func NewGrammar(rules []*Rule, start map[Nonterminal]bool, alphabet map[string]bool) (*Grammar, error) {
	if len(start) == 0 {
		return nil, errors.Wrap(ErrMalformedRule, "grammar: at least one start nonterminal is required")
	}

	g := &Grammar{
		Rules:          rules,
		Start:          start,
		rulesByLHS:     make(map[Nonterminal][]*Rule),
		terminalsByTok: make(map[string][]*Rule),
		rhsOccurrences: make(map[Nonterminal][]rhsOccurrence),
	}

	variables := make(map[Nonterminal]bool)
	inferredAlphabet := make(map[string]bool)
	for _, r := range rules {
		variables[r.LHS] = true
		g.rulesByLHS[r.LHS] = append(g.rulesByLHS[r.LHS], r)

		if r.IsTerminal() {
			inferredAlphabet[r.Terminal] = true
			g.terminalsByTok[r.Terminal] = append(g.terminalsByTok[r.Terminal], r)
			continue
		}
		for pos, child := range r.RHS {
			variables[child.Name] = true
			g.rhsOccurrences[child.Name] = append(g.rhsOccurrences[child.Name], rhsOccurrence{Rule: r, Pos: pos})
		}
	}

	if len(alphabet) == 0 {
		alphabet = inferredAlphabet
	}
	g.Alphabet = alphabet

	for nt := range start {
		if !variables[nt] {
			return nil, errors.Wrapf(ErrMalformedRule, "grammar: start nonterminal %q is not the left-hand side of any rule", nt)
		}
	}

	g.Strategy = &AgendaParser{}
	return g, nil
}

// InAlphabet reports whether tok is a permitted terminal token.
func (g *Grammar) InAlphabet(tok string) bool {
	return g.Alphabet[tok]
}

// RulesWithLHS returns every rule whose left-hand side is nt.
func (g *Grammar) RulesWithLHS(nt Nonterminal) []*Rule {
	return g.rulesByLHS[nt]
}

// terminalRulesFor returns every terminal rule yielding tok.
func (g *Grammar) terminalRulesFor(tok string) []*Rule {
	return g.terminalsByTok[tok]
}

// rhsOccurrencesFor returns every (rule, position) pair where nt appears
// on the rule's right-hand side at that position — the index the
// inference step uses to find rules to try combining a newly processed
// item into.
func (g *Grammar) rhsOccurrencesFor(nt Nonterminal) []rhsOccurrence {
	return g.rhsOccurrences[nt]
}

// Run parses tokens against the grammar in the given mode.
func (g *Grammar) Run(tokens []string, mode Mode) (*Result, error) {
	if mode != ModeRecognize && mode != ModeParse {
		return nil, errors.Wrapf(ErrInvalidMode, "mode must be %q or %q, got %q", ModeRecognize, ModeParse, mode)
	}
	return g.Strategy.Parse(g, tokens, mode)
}

func (g *Grammar) String() string {
	return fmt.Sprintf("Grammar{%d rules, %d terminals, start=%v}", len(g.Rules), len(g.Alphabet), g.Start)
}
