package ruletext

import "testing"

func TestParseRuleTerminal(t *testing.T) {
	r, err := ParseRule("Det(the)")
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsTerminal() {
		t.Fatal("IsTerminal() == false, want true")
	}
	want := "Det(the)"
	if r.String() != want {
		t.Fatalf("String() == %q, want %q", r.String(), want)
	}
}

func TestParseRuleConcatenation(t *testing.T) {
	r, err := ParseRule("S(uv) -> NP(u) VP(v)")
	if err != nil {
		t.Fatal(err)
	}
	want := "S(0.01.0) -> NP/1 VP/1"
	if r.String() != want {
		t.Fatalf("String() == %q, want %q", r.String(), want)
	}
}

func TestParseRuleDiscontiguous(t *testing.T) {
	r, err := ParseRule("Nrc(u, w) -> NP(u) Src(w)")
	if err != nil {
		t.Fatal(err)
	}
	if r.Arity() != 2 {
		t.Fatalf("Arity() == %d, want 2", r.Arity())
	}
}

func TestParseRuleMultiComponentChild(t *testing.T) {
	r, err := ParseRule("S(uvw) -> Wrap(u, w) M(v)")
	if err != nil {
		t.Fatal(err)
	}
	if r.Arity() != 1 {
		t.Fatalf("Arity() == %d, want 1", r.Arity())
	}
	if r.RHS[0].Arity != 2 {
		t.Fatalf("Wrap's declared arity == %d, want 2", r.RHS[0].Arity)
	}
}

func TestParseRuleRejectsUndeclaredVariable(t *testing.T) {
	if _, err := ParseRule("S(uz) -> NP(u) VP(v)"); err == nil {
		t.Fatal("expected error for an undeclared left-hand-side variable")
	}
}

func TestParseRuleRejectsDuplicateVariable(t *testing.T) {
	if _, err := ParseRule("S(uu) -> NP(u) VP(u)"); err == nil {
		t.Fatal("expected error for a variable reused across right-hand-side children")
	}
}

func TestParseRuleRejectsNoChildren(t *testing.T) {
	if _, err := ParseRule("S(u) ->"); err == nil {
		t.Fatal("expected error for an arrow with no right-hand side")
	}
}

func TestParseRuleRejectsEmptyText(t *testing.T) {
	if _, err := ParseRule("   "); err == nil {
		t.Fatal("expected error for empty rule text")
	}
}

func TestParseRuleRejectsMultiLetterVariable(t *testing.T) {
	if _, err := ParseRule("S(u) -> NP(uv)"); err == nil {
		t.Fatal("expected error for a multi-letter right-hand-side variable")
	}
}
