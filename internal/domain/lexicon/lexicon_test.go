package lexicon

import "testing"

func TestResolveAlias_AccentVariants(t *testing.T) {
	a, ok := ResolveAlias("felix gonzalez")
	if !ok {
		t.Fatal("expected alias hit for unaccented spelling")
	}
	b, ok := ResolveAlias("félix gonzález")
	if !ok {
		t.Fatal("expected alias hit for accented spelling")
	}
	if a != b {
		t.Errorf("accent variants resolved differently: %q vs %q", a, b)
	}
}

func TestResolveAlias_Surname(t *testing.T) {
	got, ok := ResolveAlias("gonzález")
	if !ok {
		t.Fatal("expected alias hit for bare surname")
	}
	if got != "Félix González" {
		t.Errorf("expected Félix González, got %q", got)
	}
}

func TestResolveAlias_Miss(t *testing.T) {
	if _, ok := ResolveAlias("juan perez"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestTables_NonEmptyAndLowercase(t *testing.T) {
	for _, a := range Aliases() {
		if a.Fragment == "" || a.Canonical == "" {
			t.Fatalf("empty alias entry: %+v", a)
		}
	}
	for _, topic := range Topics() {
		if topic.Label == "" || len(topic.Keywords) == 0 {
			t.Fatalf("empty topic entry: %+v", topic)
		}
	}
}
