package py7x3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-python/gpython/py"

	_ "github.com/go-python/gpython/stdlib"
)

func TestMethods(t *testing.T) {
	perms, err := py_Permutations(nil, py.Tuple{py.String("abc")})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(perms.(py.Tuple)); n != 6 {
		t.Fatalf("Permutations: expected 6, got %d", n)
	}

	isAuto, err := py_IsAutomorphism(nil, py.Tuple{py.String("1234567")})
	if err != nil {
		t.Fatal(err)
	}
	if isAuto != py.True {
		t.Fatalf("identity: got %v", isAuto)
	}

	isAuto, err = py_IsAutomorphism(nil, py.Tuple{py.Tuple{py.String("2"), py.String("1"), py.String("3"), py.String("4"), py.String("5"), py.String("6"), py.String("7")}})
	if err != nil {
		t.Fatal(err)
	}
	if isAuto != py.False {
		t.Fatalf("(1 2): got %v", isAuto)
	}

	cycles, err := py_ToCycleNotation(nil, py.Tuple{py.String("1234567"), py.String("1325476")})
	if err != nil {
		t.Fatal(err)
	}
	if cycles != py.String("(2 3)(4 5)(6 7)") {
		t.Fatalf("ToCycleNotation: got %v", cycles)
	}

	perm, err := py_ParseCycles(nil, py.Tuple{py.String("1234567"), py.String("(1 2)")})
	if err != nil {
		t.Fatal(err)
	}
	if got := perm.(py.Tuple); len(got) != 7 || got[0] != py.String("2") || got[1] != py.String("1") {
		t.Fatalf("ParseCycles: got %v", got)
	}

	lines, err := py_FanoLines(nil, py.Tuple{})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(lines.(py.Tuple)); n != 7 {
		t.Fatalf("FanoLines: expected 7, got %d", n)
	}

	autos, err := py_Automorphisms(nil, py.Tuple{})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(autos.(py.Tuple)); n != 168 {
		t.Fatalf("Automorphisms: expected 168, got %d", n)
	}
}

func TestMethodErrors(t *testing.T) {
	if _, err := py_IsAutomorphism(nil, py.Tuple{py.String("123")}); err == nil {
		t.Error("short permutation accepted")
	}
	if _, err := py_ToCycleNotation(nil, py.Tuple{py.String("1234567")}); err == nil {
		t.Error("missing argument accepted")
	}
	if _, err := py_Permutations(nil, py.Tuple{py.Int(3)}); err == nil {
		t.Error("int accepted as symbols")
	}
	if _, err := py_ParseCycles(nil, py.Tuple{py.String("1234567"), py.String("(1 9)")}); err == nil {
		t.Error("unknown symbol accepted")
	}
}

func TestScript(t *testing.T) {
	script := `
import py7x3

autos = py7x3.Automorphisms()
if len(autos) != 168:
    raise ValueError("expected 168 automorphisms")
if autos[0] != py7x3.IDENTITY:
    raise ValueError("first automorphism should be the identity")
if not py7x3.IsAutomorphism(py7x3.ParseCycles("1234567", "(4 6)(5 7)")):
    raise ValueError("(4 6)(5 7) should be an automorphism")
if py7x3.NUM_SYMBOLS != 7:
    raise ValueError("NUM_SYMBOLS")
`
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "autos.py"), []byte(script), 0644); err != nil {
		t.Fatal(err)
	}

	ctx := py.NewContext(py.DefaultContextOpts())
	_, err := py.RunFile(ctx, "autos.py", py.CompileOpts{CurDir: dir}, nil)
	ctx.Close()
	<-ctx.Done()
	if err != nil {
		py.TracebackDump(err)
		t.Fatal(err)
	}
}
