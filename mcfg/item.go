package mcfg

import (
	"fmt"
	"strings"
)

// Item is an instantiated rule: a nonterminal whose argument variables
// have been bound to concrete spans of the input. Two items are equal
// iff their nonterminal and span tuples are equal; Item values are
// immutable once created.
type Item struct {
	NT    Nonterminal
	Spans []Span
}

// Arity returns the number of string components this item's nonterminal
// yields.
func (it Item) Arity() int {
	return len(it.Spans)
}

// Key returns a string that uniquely identifies the item's (NT, Spans)
// value, used by the chart to deduplicate items on insertion.
func (it Item) Key() string {
	var b strings.Builder
	b.WriteString(string(it.NT))
	for _, s := range it.Spans {
		fmt.Fprintf(&b, "|%d,%d", s.Start, s.End)
	}
	return b.String()
}

func (it Item) String() string {
	comps := make([]string, len(it.Spans))
	for i, s := range it.Spans {
		comps[i] = fmt.Sprintf("[%d,%d)", s.Start, s.End)
	}
	return fmt.Sprintf("%s(%s)", it.NT, strings.Join(comps, ", "))
}
