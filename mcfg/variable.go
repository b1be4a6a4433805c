package mcfg

// Nonterminal names a grammar symbol that is not a terminal token.
type Nonterminal string

// RuleVariable pairs a nonterminal with its string-tuple arity: the
// number of string components it yields. Arity 1 is ordinary CFG-like;
// arity >= 2 marks a nonterminal that can yield discontiguous
// constituents.
type RuleVariable struct {
	Name  Nonterminal
	Arity int
}

// CompRef is one reference inside a left-hand-side composition pattern:
// the span contributed by the ChildComp-th component of the ChildIndex-th
// right-hand-side child. Every CompRef in a well-formed rule's pattern
// appears exactly once across the whole pattern (linearity).
type CompRef struct {
	ChildIndex int
	ChildComp  int
}
