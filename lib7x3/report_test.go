package lib7x3_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/2x3systems/go7x3/lib7x3"
)

var gGenerated = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func TestWriteListing(t *testing.T) {
	b := strings.Builder{}
	err := lib7x3.WriteListing(&b, go7x3.Automorphisms, []string{"(1)", "(4 6)(5 7)"}, gGenerated)
	if err != nil {
		t.Fatal(err)
	}

	want := "go7x3 Fano Plane Automorphism Finder | Automorphisms Output | Generated: 2024-03-09 14:05:00\n" +
		"(1)\n" +
		"(4 6)(5 7)\n" +
		"\n" +
		"Number of Automorphisms: 2\n"
	if got := b.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSaveListing(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "out", "Output.txt")

	rows := lib7x3.FormatRows([]go7x3.Ordering{go7x3.DefaultOrigin()}, go7x3.PrintOpts{})
	for i := 0; i < 2; i++ {
		if err := lib7x3.SaveListing(pathname, go7x3.Permutations, rows, gGenerated); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(pathname)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (file should be replaced, not appended), got %q", lines)
	}
	if lines[1] != "1234567" || lines[3] != "Number of Permutations: 1" {
		t.Fatalf("unexpected listing %q", lines)
	}
}

func TestFormatRow(t *testing.T) {
	perm := go7x3.Ordering{"2", "1", "3", "4", "5", "6", "7"}

	if got := lib7x3.FormatRow(perm, go7x3.PrintOpts{}); got != "2134567" {
		t.Errorf("plain: got %q", got)
	}
	if got := lib7x3.FormatRow(perm, go7x3.PrintOpts{Cycles: true}); got != "(1 2)" {
		t.Errorf("cycles: got %q", got)
	}
	if got := lib7x3.FormatRow(go7x3.Ordering{"a"}, go7x3.PrintOpts{Cycles: true}); !strings.HasPrefix(got, "!") {
		t.Errorf("bad perm: got %q", got)
	}
}
