// Package ruletext reads the textual multiple context-free grammar
// syntax into *mcfg.Rule values:
//
//	Nonterminal(comp1, comp2, …) -> Child1(u, v) Child2(w)
//	Nonterminal(token)
//
// Variables are single letters; a left-hand-side component concatenates
// the spans bound to the letters listed in it, in order, with no
// separator between them ("uv" means "u followed by v"). A right-hand
// side child's parenthesized list names one letter per component it
// yields, comma-separated.
//
// Grounded on ling0322-pcfg/rule.go's ParseRule (the ::= / weight /
// comment conventions it establishes for a line-oriented grammar
// reader) and on original_source/src/mcfg_parser/grammar.py's
// MCFGRule.from_string, whose regex-driven element extraction and
// variable-to-reference bookkeeping this reader reimplements for
// general n-ary composition patterns rather than just pairwise ones.
package ruletext

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/ChihshengJ/Agenda-based-parser-for-MCFG/mcfg"
)

var elemPattern = regexp.MustCompile(`^(\w+)\(([^()]*)\)$`)
var findElemPattern = regexp.MustCompile(`\w+\([^()]*\)`)

// ParseRule parses a single textual rule line. Blank lines and lines
// beginning with ';' are not rules; callers (such as LoadGrammar) are
// expected to filter those out before calling ParseRule.
func ParseRule(text string) (*mcfg.Rule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(mcfg.ErrUnparsable, "empty rule text")
	}

	arrow := strings.Index(text, "->")
	if arrow < 0 {
		return parseTerminalRule(text)
	}

	lhsName, lhsComps, err := parseElement(strings.TrimSpace(text[:arrow]))
	if err != nil {
		return nil, errors.Wrapf(mcfg.ErrUnparsable, "left-hand side of %q: %v", text, err)
	}

	rhsText := strings.TrimSpace(text[arrow+2:])
	rhsElems := findElemPattern.FindAllString(rhsText, -1)
	if len(rhsElems) == 0 {
		return nil, errors.Wrapf(mcfg.ErrUnparsable, "no right-hand-side children in %q", text)
	}

	rhs := make([]mcfg.RuleVariable, len(rhsElems))
	letterPos := make(map[string][2]int)
	for i, elem := range rhsElems {
		name, vars, err := parseElement(elem)
		if err != nil {
			return nil, errors.Wrapf(mcfg.ErrUnparsable, "right-hand side of %q: %v", text, err)
		}
		for j, v := range vars {
			if len(v) != 1 {
				return nil, errors.Wrapf(mcfg.ErrUnparsable, "%q: variable %q is not a single letter", text, v)
			}
			if _, dup := letterPos[v]; dup {
				return nil, errors.Wrapf(mcfg.ErrUnparsable, "%q: variable %q used by more than one right-hand-side component", text, v)
			}
			letterPos[v] = [2]int{i, j}
		}
		rhs[i] = mcfg.RuleVariable{Name: mcfg.Nonterminal(name), Arity: len(vars)}
	}

	pattern := make([][]mcfg.CompRef, len(lhsComps))
	for ci, comp := range lhsComps {
		letters := strings.Split(comp, "")
		refs := make([]mcfg.CompRef, len(letters))
		for li, letter := range letters {
			pos, ok := letterPos[letter]
			if !ok {
				return nil, errors.Wrapf(mcfg.ErrUnparsable, "%q: left-hand side references undeclared variable %q", text, letter)
			}
			refs[li] = mcfg.CompRef{ChildIndex: pos[0], ChildComp: pos[1]}
		}
		pattern[ci] = refs
	}

	rule, err := mcfg.NewRule(mcfg.Nonterminal(lhsName), pattern, rhs)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", text)
	}
	return rule, nil
}

func parseTerminalRule(text string) (*mcfg.Rule, error) {
	name, comps, err := parseElement(text)
	if err != nil {
		return nil, errors.Wrapf(mcfg.ErrUnparsable, "%v", err)
	}
	if len(comps) != 1 {
		return nil, errors.Wrapf(mcfg.ErrUnparsable, "terminal rule %q must name exactly one token", text)
	}
	return mcfg.NewTerminalRule(mcfg.Nonterminal(name), comps[0]), nil
}

// parseElement splits "Name(a, b, c)" into its name and the
// comma-separated, trimmed contents of its parenthesized argument list.
func parseElement(text string) (name string, args []string, err error) {
	m := elemPattern.FindStringSubmatch(text)
	if m == nil {
		return "", nil, errors.Errorf("malformed element %q", text)
	}
	name = m[1]
	for _, a := range strings.Split(m[2], ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			return "", nil, errors.Errorf("empty argument in %q", text)
		}
		args = append(args, a)
	}
	if len(args) == 0 {
		return "", nil, errors.Errorf("%q declares no arguments", text)
	}
	return name, args, nil
}
