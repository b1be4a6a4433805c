package mcfg

import (
	"strings"
)

// Tree is an immutable labeled derivation tree. A leaf has Terminal set
// and no Children; an internal node has Label set to the producing
// rule's left-hand-side nonterminal, Children in right-hand-side order,
// and Pattern set to that same rule's composition pattern — the
// information needed to read the node's own yield back out in the
// order its nonterminal actually binds it, which is not generally
// Children's left-to-right order. A node produced by a terminal rule
// has its nonterminal as Label, no Pattern, and a single leaf child.
type Tree struct {
	Label    string
	Pattern  [][]CompRef
	Children []*Tree
	Terminal string
}

// IsLeaf reports whether the tree is a single terminal token.
func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Terminals returns the tree's leaves in the order induced by each
// node's own composition pattern, not by a naive left-to-right walk of
// Children: an MCFG rule's pattern may interleave its children's spans
// out of right-hand-side order (e.g. auxiliary inversion moves the
// auxiliary ahead of the clause it inverts with), and a bare Children
// walk would read the tokens back scrambled. For the root of a tree
// returned by a parser — an arity-1 item spanning the whole input — this
// reproduces the input tokens in their original order. An internal
// subtree whose own nonterminal has arity greater than one is not
// contiguous in the input by construction, so concatenating its
// components in pattern order does not yield an input substring; it is
// only the root's yield that round-trips.
func (t *Tree) Terminals() []string {
	if t.IsLeaf() {
		return []string{t.Terminal}
	}
	var out []string
	for _, comp := range t.componentTerminals() {
		out = append(out, comp...)
	}
	return out
}

// componentTerminals returns, for each component of this node's own
// yield, the terminals that make it up, built by recursively resolving
// each CompRef in Pattern to the named child's own per-component
// terminals. An internal node without a Pattern (such as a terminal
// rule's node) yields a single component: its children's terminals in
// Children order.
func (t *Tree) componentTerminals() [][]string {
	if t.IsLeaf() {
		return [][]string{{t.Terminal}}
	}
	childComps := make([][][]string, len(t.Children))
	for i, c := range t.Children {
		childComps[i] = c.componentTerminals()
	}
	if len(t.Pattern) == 0 {
		var out []string
		for _, cc := range childComps {
			for _, comp := range cc {
				out = append(out, comp...)
			}
		}
		return [][]string{out}
	}
	comps := make([][]string, len(t.Pattern))
	for ci, comp := range t.Pattern {
		var out []string
		for _, ref := range comp {
			out = append(out, childComps[ref.ChildIndex][ref.ChildComp]...)
		}
		comps[ci] = out
	}
	return comps
}

// String renders the tree in the bracketed external form from spec
// section 6: "(Label child1 child2 …)", with bare leaves. Children are
// printed in right-hand-side order, matching the rule that produced the
// node; only Terminals (and the pattern annotation from
// StringWithPattern) expose composition order.
func (t *Tree) String() string {
	return t.render(false)
}

// StringWithPattern renders the tree the same way as String, but
// annotates each internal node's label with the composition pattern of
// the rule that produced it, to disambiguate homonymous rules sharing a
// left-hand-side nonterminal.
func (t *Tree) StringWithPattern() string {
	return t.render(true)
}

func (t *Tree) render(withPattern bool) string {
	if t.IsLeaf() {
		return t.Terminal
	}
	label := t.Label
	if withPattern && len(t.Pattern) > 0 {
		label = label + "[" + formatPattern(t.Pattern) + "]"
	}
	parts := make([]string, len(t.Children)+1)
	parts[0] = label
	for i, c := range t.Children {
		parts[i+1] = c.render(withPattern)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
