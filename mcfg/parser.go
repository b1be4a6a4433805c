package mcfg

import "log"

// AgendaParser is the default ParseStrategy: an agenda-based deductive
// parser in the style of Shieber, Schabes & Pereira (1995). It seeds the
// chart from terminal rules, repeatedly combines chart items via
// grammar rules until the agenda empties, and on request reconstructs
// every derivation tree rooted at a goal item.
//
// Grounded on ling0322-pcfg/parser.go's Parser/NewParser/DebugMode shape
// and on original_source/src/mcfg_parser/abparser.py's
// AgendaBasedParser for the deduction and reconstruction algorithm,
// generalized from that Python harness's pairwise _combine to
// arbitrary-arity rule combination.
type AgendaParser struct {
	// Debug enables log.Printf tracing of axioms and derivations, the
	// same role the teacher's package-level gEnableDebug/DebugMode play
	// for CYK's row-by-row trace.
	Debug bool

	// MaxSteps caps the number of agenda dequeues a single Parse call
	// will perform; zero means unbounded. Exceeding the budget returns
	// ErrStepBudgetExceeded without leaving any shared state behind,
	// since charts and agendas are always parse-local.
	MaxSteps int
}

// Option configures an AgendaParser built with NewAgendaParser.
type Option func(*AgendaParser)

// WithDebug toggles step tracing.
func WithDebug(on bool) Option {
	return func(p *AgendaParser) { p.Debug = on }
}

// WithMaxSteps sets a step budget; zero (the default) means unbounded.
func WithMaxSteps(n int) Option {
	return func(p *AgendaParser) { p.MaxSteps = n }
}

// NewAgendaParser builds an AgendaParser, applying the given options.
func NewAgendaParser(opts ...Option) *AgendaParser {
	p := &AgendaParser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse implements ParseStrategy.
func (p *AgendaParser) Parse(g *Grammar, tokens []string, mode Mode) (*Result, error) {
	n := len(tokens)
	c := newChart()
	ag := newAgenda()

	for i, tok := range tokens {
		for _, r := range g.terminalRulesFor(tok) {
			it := Item{NT: r.LHS, Spans: []Span{{Start: i, End: i + 1}}}
			id, isNew := c.insert(it)
			c.addBackpointer(id, Backpointer{Rule: r})
			if isNew {
				if p.Debug {
					log.Printf("mcfg: axiom %d: %s", id, it)
				}
				ag.push(id)
			}
		}
	}

	steps := 0
	for !ag.empty() {
		if p.MaxSteps > 0 && steps >= p.MaxSteps {
			return nil, ErrStepBudgetExceeded
		}
		steps++

		id := ag.pop()
		item := c.item(id)

		for _, occ := range g.rhsOccurrencesFor(item.NT) {
			if occ.Rule.RHS[occ.Pos].Arity != item.Arity() {
				continue
			}
			for _, combo := range c.combinations(occ.Rule, occ.Pos, id) {
				children := make([]*Item, len(combo))
				for i, cid := range combo {
					it := c.item(cid)
					children[i] = &it
				}
				derived, ok := occ.Rule.Apply(children...)
				if !ok {
					continue
				}
				newID, isNew := c.insert(*derived)
				c.addBackpointer(newID, Backpointer{Rule: occ.Rule, Children: combo})
				if isNew {
					if p.Debug {
						log.Printf("mcfg: derived %d: %s via %s", newID, *derived, occ.Rule)
					}
					ag.push(newID)
				}
			}
		}
	}

	result := &Result{}
	cache := make(map[int][]*Tree)
	for nt := range g.Start {
		for _, id := range c.byNT[nt] {
			item := c.item(id)
			if item.Arity() != 1 || item.Spans[0] != (Span{Start: 0, End: n}) {
				continue
			}
			result.Recognized = true
			if mode == ModeParse {
				trees, _ := p.treesFor(c, id, make(map[int]bool), cache)
				result.Trees = append(result.Trees, trees...)
			}
		}
	}
	return result, nil
}

// treesFor reconstructs every derivation tree rooted at the chart item
// id. onPath guards against derivational cycles: if id is already being
// expanded further up the current recursion, that path contributes no
// tree, but sibling derivations for the same item reached via a
// different path are unaffected (spec section 4.4.2). cache memoizes
// completed (non-cut) results, since the same item can be a shared
// sub-derivation of many goal items. The second result reports whether
// the cycle guard cut any path below id.
func (p *AgendaParser) treesFor(c *chart, id int, onPath map[int]bool, cache map[int][]*Tree) ([]*Tree, bool) {
	if trees, ok := cache[id]; ok {
		return trees, false
	}
	if onPath[id] {
		return nil, true
	}
	onPath[id] = true
	defer delete(onPath, id)

	item := c.item(id)
	var result []*Tree
	cut := false
	for _, bp := range c.backptrs[id] {
		if bp.Rule.IsTerminal() {
			result = append(result, &Tree{Label: string(item.NT), Children: []*Tree{{Terminal: bp.Rule.Terminal}}})
			continue
		}

		childSets := make([][]*Tree, len(bp.Children))
		complete := true
		for i, cid := range bp.Children {
			var childCut bool
			childSets[i], childCut = p.treesFor(c, cid, onPath, cache)
			cut = cut || childCut
			if len(childSets[i]) == 0 {
				complete = false
			}
		}
		if !complete {
			continue
		}

		for _, combo := range treeProduct(childSets) {
			result = append(result, &Tree{
				Label:    string(item.NT),
				Pattern:  bp.Rule.Pattern,
				Children: combo,
			})
		}
	}

	if !cut {
		cache[id] = result
	}
	return result, cut
}

// treeProduct is the Cartesian product of per-child tree sets, used to
// enumerate every combination of one tree per right-hand-side child.
func treeProduct(sets [][]*Tree) [][]*Tree {
	result := [][]*Tree{{}}
	for _, set := range sets {
		next := make([][]*Tree, 0, len(result)*len(set))
		for _, combo := range result {
			for _, t := range set {
				nc := make([]*Tree, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = t
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}
