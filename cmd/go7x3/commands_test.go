package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestAutosCommand(t *testing.T) {
	out, err := execute(t, "", "autos")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "(1)\n") {
		t.Errorf("expected identity first, got %q", out[:20])
	}
	if !strings.Contains(out, "\nNumber of Automorphisms: 168\n") {
		t.Errorf("missing count in:\n%s", out)
	}
}

func TestPermsCommand(t *testing.T) {
	out, err := execute(t, "", "perms", "--symbols", "a,b,c")
	if err != nil {
		t.Fatal(err)
	}
	want := "abc\nacb\nbac\nbca\ncab\ncba\n\nNumber of Permutations: 6\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}

	out, err = execute(t, "", "perms", "-s", "x,x", "--unique")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out, "Number of Permutations: 1\n") {
		t.Errorf("unique: got %q", out)
	}

	if _, err = execute(t, "", "perms", "--symbols", "abc"); err == nil {
		t.Error("undelimited symbols accepted")
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "", "check", "(4 6)(5 7)")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Permutation:  1236745\n") || !strings.Contains(out, "Automorphism: true\n") {
		t.Errorf("got:\n%s", out)
	}

	out, err = execute(t, "", "check", "(2 1)")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cycles:       (1 2)\n") || !strings.Contains(out, "Automorphism: false\n") {
		t.Errorf("got:\n%s", out)
	}

	for expr, order := range map[string]string{
		"(1)":            "Order:        1\n",
		"(1 2 4)(3 6 5)": "Order:        3\n",
		"(1 2)(3 4 5)":   "Order:        6\n",
	} {
		out, err = execute(t, "", "check", expr)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, order) {
			t.Errorf("%s: expected %q in:\n%s", expr, order, out)
		}
	}

	if _, err = execute(t, "", "check", "(1 9)"); err == nil {
		t.Error("unknown symbol accepted")
	}
}

func TestLinesCommand(t *testing.T) {
	out, err := execute(t, "", "lines")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "{1,2,3}\n{1,4,5}\n") || !strings.HasSuffix(out, "Axioms: ok\n") {
		t.Errorf("got:\n%s", out)
	}

	// the same lines in another order and rotation still form a Fano plane
	out, err = execute(t, "", "lines", "--check", "3 5 6, 2 1 3, 1 4 5, 7 6 1, 2 4 6, 2 5 7, 3 4 7")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "{3,5,6}\n{2,1,3}\n") || !strings.HasSuffix(out, "Axioms: ok\n") {
		t.Errorf("got:\n%s", out)
	}

	out, err = execute(t, "", "lines", "--check", "1 2 3, 1 4 5, 1 6 7, 2 4 6, 2 5 7, 3 4 7, 3 5 7")
	if err == nil || !strings.Contains(out, "Axioms: ") || strings.Contains(out, "Axioms: ok") {
		t.Errorf("broken structure accepted:\n%s", out)
	}

	if _, err = execute(t, "", "lines", "--check", "1 2, 3 4 5"); err == nil {
		t.Error("two-symbol line accepted")
	}
}

func TestSaveAndExport(t *testing.T) {
	dir := t.TempDir()
	listing := filepath.Join(dir, "autos.txt")
	catDir := filepath.Join(dir, "catalog")

	out, err := execute(t, "", "autos", "--save", listing, "--catalog", catDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "168 new Automorphisms") {
		t.Errorf("got:\n%s", out)
	}

	saved, err := os.ReadFile(listing)
	if err != nil {
		t.Fatal(err)
	}

	exported := filepath.Join(dir, "export.txt")
	if _, err = execute(t, "", "export", "--catalog", catDir, "--kind", "autos", "--out", exported); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatal(err)
	}

	// listings match apart from the generated timestamp
	savedLines := strings.Split(string(saved), "\n")
	exportedLines := strings.Split(string(data), "\n")
	if len(savedLines) != len(exportedLines) {
		t.Fatalf("saved %d lines, exported %d", len(savedLines), len(exportedLines))
	}
	for i := 1; i < len(savedLines); i++ {
		if savedLines[i] != exportedLines[i] {
			t.Fatalf("line %d: saved %q, exported %q", i, savedLines[i], exportedLines[i])
		}
	}

	out, err = execute(t, "", "autos", "--catalog", catDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0 new Automorphisms") {
		t.Errorf("second run should add nothing:\n%s", out)
	}

	if _, err = execute(t, "", "export"); err == nil {
		t.Error("export without a catalog accepted")
	}
}

func TestMenu(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "Output.txt")
	config := filepath.Join(dir, "go7x3.yaml")
	if err := os.WriteFile(config, []byte("output: "+output+"\ncolor: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdin := "\n" + "C\n" + "b\n" + "maybe\n" + "N\n" + "A\n" + "\n" + "y\n" + "exit\n"
	out, err := execute(t, stdin, "menu", "--config", config)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"ERROR: You must provide a selection! Try again...",
		"ERROR: Sorry, C is not a valid selection. Try again...",
		"ERROR: Sorry, maybe is not a valid selection. Try again...",
		"Number of Automorphisms: 168",
		"Number of Permutations: 5040",
		"SUCCESS! Output saved to",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("menu output is missing %q", want)
		}
	}

	saved, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(saved), "\nNumber of Permutations: 5040\n") {
		t.Errorf("saved listing should hold the permutations")
	}
}

func TestMenuSymbols(t *testing.T) {
	out, err := execute(t, "A\nabc\na,b,c\nN\nexit\n", "menu")
	if err != nil {
		t.Fatal(err)
	}

	errAt := strings.Index(out, `ERROR: "abc" is not comma delimited`)
	countAt := strings.Index(out, "Number of Permutations: 6\n")
	if errAt < 0 || countAt < 0 || countAt < errAt {
		t.Fatalf("expected a re-prompt then 6 permutations, got:\n%s", out)
	}
	if !strings.Contains(out, "abc\nacb\nbac\nbca\ncab\ncba\n") {
		t.Errorf("missing permutations of a,b,c:\n%s", out)
	}
}

func TestMenuEndOfInput(t *testing.T) {
	if _, err := execute(t, "B\n", "menu"); err != nil {
		t.Fatal(err)
	}
}

func TestPyCommand(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "check.py")
	src := "import py7x3\nif len(py7x3.FanoLines()) != 7:\n    raise ValueError(\"lines\")\n"
	if err := os.WriteFile(script, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	// absolute path
	out, err := execute(t, "", "py", script)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "execution complete") {
		t.Errorf("got:\n%s", out)
	}

	// relative to the working dir
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err = os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if _, err = execute(t, "", "py", "check.py"); err != nil {
		t.Fatal(err)
	}

	failing := filepath.Join(dir, "fail.py")
	os.WriteFile(failing, []byte("raise ValueError(\"nope\")\n"), 0644)
	if _, err = execute(t, "", "py", failing); err == nil {
		t.Error("raised exception should fail the command")
	}
}
