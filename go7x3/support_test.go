package go7x3

import (
	"testing"
)

func TestOrdering(t *testing.T) {
	origin := DefaultOrigin()
	perm := Ordering{"7", "6", "5", "4", "3", "2", "1"}

	if !perm.IsRearrangementOf(origin) {
		t.Errorf("%v should be a rearrangement of %v", perm, origin)
	}
	if (Ordering{"1", "1", "3", "4", "5", "6", "7"}).IsRearrangementOf(origin) {
		t.Errorf("repeated symbol accepted")
	}
	if (Ordering{"1", "2"}).IsRearrangementOf(origin) {
		t.Errorf("short ordering accepted")
	}
	if perm.IndexOf("7") != 0 || perm.IndexOf("9") != -1 {
		t.Errorf("IndexOf")
	}
	if perm.String() != "7654321" || perm.Join(",") != "7,6,5,4,3,2,1" {
		t.Errorf("String/Join: %s %s", perm.String(), perm.Join(","))
	}

	dup := perm.Clone()
	dup[0] = "x"
	if perm[0] != "7" || perm.Equal(dup) {
		t.Errorf("Clone shares storage")
	}
}

func TestLine(t *testing.T) {
	L := Line{"1", "2", "3"}
	if !L.Covers(Line{"3", "1", "2"}) {
		t.Errorf("lines are unordered")
	}
	if L.Covers(Line{"1", "2", "4"}) {
		t.Errorf("{1,2,4} is not {1,2,3}")
	}
	if L.String() != "{1,2,3}" {
		t.Errorf("String: %s", L)
	}
}

func TestParseOutputKind(t *testing.T) {
	for str, want := range map[string]OutputKind{
		"perms":         Permutations,
		"A":             Permutations,
		"Automorphisms": Automorphisms,
		" autos ":       Automorphisms,
	} {
		got, err := ParseOutputKind(str)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", str, got, err)
		}
	}
	if _, err := ParseOutputKind("c"); err != ErrBadKind {
		t.Errorf("expected ErrBadKind, got %v", err)
	}
}

func TestCatalogStateEncoding(t *testing.T) {
	state := CatalogState{
		MajorVers: CatalogMajorVers,
		MinorVers: CatalogMinorVers,
		Origin:    DefaultOrigin(),
	}
	state.IncEntries(Automorphisms)
	state.IncEntries(Automorphisms)
	state.IncEntries(Permutations)

	buf, err := state.EncodeState(nil)
	if err != nil {
		t.Fatal(err)
	}

	var decoded CatalogState
	if err = decoded.DecodeState(buf); err != nil {
		t.Fatal(err)
	}
	if decoded.NumEntries(Automorphisms) != 2 || decoded.NumEntries(Permutations) != 1 || decoded.MajorVers != CatalogMajorVers {
		t.Fatalf("decoded %v", decoded.String())
	}
	if !Ordering(decoded.Origin).Equal(DefaultOrigin()) {
		t.Fatalf("origin %v", decoded.Origin)
	}
}
