package mcfg

// unaryGraph is a directed graph over nonterminals, with an edge B -> A
// for every rule A -> B whose right-hand side is a single nonterminal.
// It is used only to diagnose derivational cycles (spec section 4.4.2's
// "Cycle safety"), never to rewrite the grammar.
//
// Adapted from ling0322-pcfg/directed_graph.go's DirectedGraph, which
// the teacher used to find and *eliminate* PCFG unit-rule cycles during
// CNF conversion (removeStrongComponents). MCFG rules are consumed as
// given (spec.md's Non-goals forbid grammar compilation), so here the
// same strongly-connected-components technique is repurposed as a
// read-only diagnostic instead of a rewrite step, and the edge weights
// the teacher needed for probability bookkeeping are dropped along with
// them.
type unaryGraph struct {
	edges    map[Nonterminal]map[Nonterminal]bool
	vertices map[Nonterminal]bool
}

func newUnaryGraph() *unaryGraph {
	return &unaryGraph{
		edges:    make(map[Nonterminal]map[Nonterminal]bool),
		vertices: make(map[Nonterminal]bool),
	}
}

func (g *unaryGraph) addEdge(from, to Nonterminal) {
	if g.edges[from] == nil {
		g.edges[from] = make(map[Nonterminal]bool)
	}
	g.edges[from][to] = true
	g.vertices[from] = true
	g.vertices[to] = true
}

func (g *unaryGraph) dfs(v Nonterminal, visited map[Nonterminal]bool) []Nonterminal {
	if visited[v] || !g.vertices[v] {
		return nil
	}
	visited[v] = true
	var order []Nonterminal
	for next := range g.edges[v] {
		order = append(order, g.dfs(next, visited)...)
	}
	return append(order, v)
}

// topologicalOrder returns the vertices in reverse DFS finishing order,
// the order Kosaraju's second pass needs.
func (g *unaryGraph) topologicalOrder() []Nonterminal {
	visited := make(map[Nonterminal]bool)
	var post []Nonterminal
	for v := range g.vertices {
		post = append(post, g.dfs(v, visited)...)
	}
	order := make([]Nonterminal, len(post))
	for i, v := range post {
		order[len(post)-1-i] = v
	}
	return order
}

func (g *unaryGraph) transpose() *unaryGraph {
	t := newUnaryGraph()
	for from, tos := range g.edges {
		for to := range tos {
			t.addEdge(to, from)
		}
	}
	return t
}

// stronglyConnectedComponents returns every set of two or more
// nonterminals that are mutually reachable through unary rules — a
// derivational cycle a tree-reconstruction cycle guard will need to
// break.
func (g *unaryGraph) stronglyConnectedComponents() [][]Nonterminal {
	visited := make(map[Nonterminal]bool)
	order := g.topologicalOrder()
	t := g.transpose()
	var components [][]Nonterminal
	for _, v := range order {
		if visited[v] {
			continue
		}
		component := t.dfs(v, visited)
		if len(component) > 1 {
			components = append(components, component)
		}
	}
	return components
}

// UnaryCycles reports the sets of nonterminals in g that derive one
// another through a chain of single-nonterminal-RHS rules, e.g.
// A -> B, B -> A. A grammar with such cycles still parses correctly —
// the agenda terminates because chart insertion is idempotent — but
// derivation-tree reconstruction must guard against looping forever
// while walking the backpointer DAG for an item in the cycle.
func (g *Grammar) UnaryCycles() [][]Nonterminal {
	graph := newUnaryGraph()
	for _, r := range g.Rules {
		if !r.IsTerminal() && len(r.RHS) == 1 {
			graph.addEdge(r.RHS[0].Name, r.LHS)
		}
	}
	return graph.stronglyConnectedComponents()
}
