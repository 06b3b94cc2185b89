package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "go7x3.yaml")
	data := "symbols: a,b,c,d,e,f,g\ncatalog: /tmp/cat\ncolor: false\nverbosity: 2\n"
	if err := os.WriteFile(pathname, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(pathname)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Symbols:   "a,b,c,d,e,f,g",
		Output:    "Output.txt",
		Catalog:   "/tmp/cat",
		Verbosity: 2,
		Color:     false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}

	pathname := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(pathname, []byte("symbols: [unterminated\n"), 0644)
	if _, err := LoadConfig(pathname); err == nil {
		t.Error("bad yaml accepted")
	}
}
