package mcfg

import "testing"

func TestItemArity(t *testing.T) {
	it := Item{NT: "S", Spans: []Span{{0, 1}, {2, 3}}}
	if it.Arity() != 2 {
		t.Fatalf("Arity() == %d, want 2", it.Arity())
	}
}

func TestItemKeyDistinguishesSpans(t *testing.T) {
	a := Item{NT: "NP", Spans: []Span{{0, 1}}}
	b := Item{NT: "NP", Spans: []Span{{0, 2}}}
	if a.Key() == b.Key() {
		t.Fatal("items with different spans produced equal keys")
	}
}

func TestItemKeyDistinguishesNT(t *testing.T) {
	a := Item{NT: "NP", Spans: []Span{{0, 1}}}
	b := Item{NT: "VP", Spans: []Span{{0, 1}}}
	if a.Key() == b.Key() {
		t.Fatal("items with different nonterminals produced equal keys")
	}
}

func TestItemKeyStable(t *testing.T) {
	a := Item{NT: "NP", Spans: []Span{{0, 1}, {3, 4}}}
	b := Item{NT: "NP", Spans: []Span{{0, 1}, {3, 4}}}
	if a.Key() != b.Key() {
		t.Fatal("equal items produced different keys")
	}
}

func TestItemString(t *testing.T) {
	it := Item{NT: "NP", Spans: []Span{{0, 1}, {3, 4}}}
	want := "NP([0,1), [3,4))"
	if it.String() != want {
		t.Fatalf("String() == %q, want %q", it.String(), want)
	}
}
