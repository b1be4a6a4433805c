package mcfg

// Backpointer records one derivation of a chart item: the rule and the
// ordered tuple of child item IDs whose combination produced it.
// Terminal derivations have a nil Children slice.
type Backpointer struct {
	Rule     *Rule
	Children []int
}

// chart is an append-only arena of items addressed by stable integer
// IDs, the way ling0322-pcfg's CYK table pooled _CYKNode values instead
// of allocating and linking individual pointers per cell. Backpointers
// reference child items by ID, never by pointer, so the arena can grow
// freely while derivations already recorded stay valid.
type chart struct {
	items    []Item
	byKey    map[string]int
	byNT     map[Nonterminal][]int
	backptrs map[int][]Backpointer
}

func newChart() *chart {
	return &chart{
		byKey:    make(map[string]int),
		byNT:     make(map[Nonterminal][]int),
		backptrs: make(map[int][]Backpointer),
	}
}

// insert adds it to the chart if no equal item is already present.
// Insertion is idempotent: inserting an equal item twice returns the
// same ID both times, with isNew only true the first time.
func (c *chart) insert(it Item) (id int, isNew bool) {
	key := it.Key()
	if existing, ok := c.byKey[key]; ok {
		return existing, false
	}
	id = len(c.items)
	c.items = append(c.items, it)
	c.byKey[key] = id
	c.byNT[it.NT] = append(c.byNT[it.NT], id)
	return id, true
}

// addBackpointer records bp for item id unless an identical derivation
// (same rule, same child IDs) is already recorded, so re-deriving an
// item from the same combination never duplicates its trees.
func (c *chart) addBackpointer(id int, bp Backpointer) {
	for _, old := range c.backptrs[id] {
		if old.Rule == bp.Rule && sameIDs(old.Children, bp.Children) {
			return
		}
	}
	c.backptrs[id] = append(c.backptrs[id], bp)
}

func sameIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (c *chart) item(id int) Item {
	return c.items[id]
}

// itemsFor returns the IDs of chart items with the given nonterminal and
// arity, the candidate pool for one right-hand-side position during
// combination enumeration.
func (c *chart) itemsFor(nt Nonterminal, arity int) []int {
	var out []int
	for _, id := range c.byNT[nt] {
		if c.items[id].Arity() == arity {
			out = append(out, id)
		}
	}
	return out
}

// combinations enumerates every ordered tuple of chart item IDs that
// could instantiate rule r's right-hand side with position pos fixed to
// fixedID, per spec section 4.4.3: re-derive candidates fresh on every
// call rather than tracking which combinations were already attempted,
// since chart insertion is idempotent and Apply is deterministic.
func (c *chart) combinations(r *Rule, pos int, fixedID int) [][]int {
	lists := make([][]int, len(r.RHS))
	for i, rv := range r.RHS {
		if i == pos {
			lists[i] = []int{fixedID}
			continue
		}
		lists[i] = c.itemsFor(rv.Name, rv.Arity)
	}
	return cartesianProduct(lists)
}

// cartesianProduct returns the Cartesian product of lists, or nil if any
// list is empty.
func cartesianProduct(lists [][]int) [][]int {
	result := [][]int{{}}
	for _, l := range lists {
		if len(l) == 0 {
			return nil
		}
		next := make([][]int, 0, len(result)*len(l))
		for _, combo := range result {
			for _, v := range l {
				nc := make([]int, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = v
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}
