package mcfg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Rule is a multiple context-free grammar rule: a left-hand-side
// nonterminal with a composition pattern describing how its components
// are assembled from right-hand-side children's components.
//
// A terminal rule has an empty RHS and Terminal set to the single token
// its (arity-1) left-hand side yields. A nonterminal rule has Terminal
// empty and Pattern describing, for each of its LHS's components, the
// ordered sequence of (child, child-component) references to
// concatenate.
type Rule struct {
	LHS      Nonterminal
	Pattern  [][]CompRef
	RHS      []RuleVariable
	Terminal string
}

// NewTerminalRule builds a terminal rule: LHS(token), with no RHS. The
// left-hand side always yields a fixed 1-tuple of the single token.
func NewTerminalRule(lhs Nonterminal, token string) *Rule {
	return &Rule{LHS: lhs, Terminal: token}
}

// NewRule builds and validates a nonterminal rule from its structured
// form. It rejects the rule when:
//   - a pattern component is empty,
//   - a reference names a child index or child component out of range,
//   - a variable (child, component) pair is referenced more than once or
//     not at all across the whole pattern (linearity / non-deletion).
func NewRule(lhs Nonterminal, pattern [][]CompRef, rhs []RuleVariable) (*Rule, error) {
	if len(pattern) == 0 {
		return nil, errors.Wrapf(ErrMalformedRule, "%s: left-hand side must have at least one component", lhs)
	}

	seen := make([][]bool, len(rhs))
	total := 0
	for i, child := range rhs {
		seen[i] = make([]bool, child.Arity)
		total += child.Arity
	}

	refCount := 0
	for ci, comp := range pattern {
		if len(comp) == 0 {
			return nil, errors.Wrapf(ErrMalformedRule, "%s: component %d is empty", lhs, ci)
		}
		for _, ref := range comp {
			if ref.ChildIndex < 0 || ref.ChildIndex >= len(rhs) {
				return nil, errors.Wrapf(ErrMalformedRule, "%s: reference to undeclared child %d", lhs, ref.ChildIndex)
			}
			child := rhs[ref.ChildIndex]
			if ref.ChildComp < 0 || ref.ChildComp >= child.Arity {
				return nil, errors.Wrapf(ErrMalformedRule, "%s: reference to undeclared component %d of %s", lhs, ref.ChildComp, child.Name)
			}
			if seen[ref.ChildIndex][ref.ChildComp] {
				return nil, errors.Wrapf(ErrMalformedRule, "%s: %s's component %d used more than once (non-linear)", lhs, child.Name, ref.ChildComp)
			}
			seen[ref.ChildIndex][ref.ChildComp] = true
			refCount++
		}
	}
	if refCount != total {
		return nil, errors.Wrapf(ErrMalformedRule, "%s: %d right-hand-side components declared but only %d used", lhs, total, refCount)
	}

	return &Rule{LHS: lhs, Pattern: pattern, RHS: rhs}, nil
}

// IsTerminal reports whether the rule has an empty right-hand side.
func (r *Rule) IsTerminal() bool {
	return len(r.RHS) == 0
}

// Arity is the string-tuple arity of the rule's left-hand side.
func (r *Rule) Arity() int {
	if r.IsTerminal() {
		return 1
	}
	return len(r.Pattern)
}

// Apply combines a tuple of child items, one per right-hand-side
// nonterminal in order, into the item the rule derives. It fails
// (returns ok == false) when a right-hand-side child's nonterminal or
// arity doesn't match, when two references meant to be concatenated
// within one component are not adjacent, or when any two of the spans
// contributed by distinct references overlap.
func (r *Rule) Apply(children ...*Item) (*Item, bool) {
	if r.IsTerminal() || len(children) != len(r.RHS) {
		return nil, false
	}
	for i, child := range children {
		want := r.RHS[i]
		if child.NT != want.Name || child.Arity() != want.Arity {
			return nil, false
		}
	}

	spans := make([]Span, len(r.Pattern))
	var bound []Span
	for ci, comp := range r.Pattern {
		first := children[comp[0].ChildIndex].Spans[comp[0].ChildComp]
		prev := first
		bound = append(bound, first)
		for _, ref := range comp[1:] {
			cur := children[ref.ChildIndex].Spans[ref.ChildComp]
			if !prev.adjacent(cur) {
				return nil, false
			}
			bound = append(bound, cur)
			prev = cur
		}
		spans[ci] = Span{Start: first.Start, End: prev.End}
	}

	for i := 0; i < len(bound); i++ {
		for j := i + 1; j < len(bound); j++ {
			if bound[i].overlaps(bound[j]) {
				return nil, false
			}
		}
	}

	return &Item{NT: r.LHS, Spans: spans}, true
}

// Equal reports whether two rules are value-equal: same LHS, pattern,
// and RHS positionally.
func (r *Rule) Equal(other *Rule) bool {
	if other == nil {
		return false
	}
	return r.String() == other.String()
}

// formatPattern renders a composition pattern as a compact,
// comma-separated, per-component string of dotted child.component
// references, e.g. "0.0, 1.01.1" for a pattern whose second component
// concatenates its second child's two components. Shared by Rule.String
// and Tree.StringWithPattern, which annotates a tree node with the
// pattern of the rule that produced it.
func formatPattern(pattern [][]CompRef) string {
	comps := make([]string, len(pattern))
	for i, comp := range pattern {
		letters := make([]string, len(comp))
		for j, ref := range comp {
			letters[j] = fmt.Sprintf("%d.%d", ref.ChildIndex, ref.ChildComp)
		}
		comps[i] = strings.Join(letters, "")
	}
	return strings.Join(comps, ", ")
}

func (r *Rule) String() string {
	if r.IsTerminal() {
		return fmt.Sprintf("%s(%s)", r.LHS, r.Terminal)
	}
	children := make([]string, len(r.RHS))
	for i, c := range r.RHS {
		children[i] = fmt.Sprintf("%s/%d", c.Name, c.Arity)
	}
	return fmt.Sprintf("%s(%s) -> %s", r.LHS, formatPattern(r.Pattern), strings.Join(children, " "))
}
