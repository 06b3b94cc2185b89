// Package py7x3 exposes lib7x3 to gpython scripts as the "py7x3" module.
//
// Symbol sequences may be passed as a tuple or list of strings, or as a single string where each character is a
// symbol (e.g. "1234567").
package py7x3

import (
	"context"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/2x3systems/go7x3/lib7x3"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2025.1"
)

func loadOrdering(obj py.Object) (go7x3.Ordering, error) {
	var items []py.Object
	switch seq := obj.(type) {
	case py.String:
		X := make(go7x3.Ordering, 0, len(seq))
		for _, r := range string(seq) {
			X = append(X, string(r))
		}
		return X, nil
	case py.Tuple:
		items = seq
	case *py.List:
		items = seq.Items
	default:
		return nil, py.ExceptionNewf(py.TypeError, "expected str, tuple or list of symbols (got %v)", obj.Type().Name)
	}

	X := make(go7x3.Ordering, len(items))
	for i, item := range items {
		sym, ok := item.(py.String)
		if !ok {
			return nil, py.ExceptionNewf(py.TypeError, "symbol %d: expected str (got %v)", i, item.Type().Name)
		}
		X[i] = string(sym)
	}
	return X, nil
}

func wrapOrdering(X go7x3.Ordering) py.Tuple {
	tuple := make(py.Tuple, len(X))
	for i, sym := range X {
		tuple[i] = py.String(sym)
	}
	return tuple
}

func wrapErr(err error) error {
	return py.ExceptionNewf(py.ValueError, "%v", err)
}

// optOrigin returns args[idx] as an Ordering, or the default origin if absent.
func optOrigin(args py.Tuple, idx int) (go7x3.Ordering, error) {
	if len(args) <= idx {
		return go7x3.DefaultOrigin(), nil
	}
	return loadOrdering(args[idx])
}

func argCount(args py.Tuple, min, max int, name string) error {
	if len(args) < min || len(args) > max {
		return py.ExceptionNewf(py.TypeError, "%s() takes %d to %d arguments (%d given)", name, min, max, len(args))
	}
	return nil
}

// Arg 1 (seq): symbols
func py_Permutations(module py.Object, args py.Tuple) (py.Object, error) {
	if err := argCount(args, 1, 1, "Permutations"); err != nil {
		return nil, err
	}
	items, err := loadOrdering(args[0])
	if err != nil {
		return nil, err
	}

	perms := lib7x3.GeneratePermutations(items)
	out := make(py.Tuple, len(perms))
	for i, perm := range perms {
		out[i] = wrapOrdering(perm)
	}
	return out, nil
}

// Arg 1 (seq): permutation
// Arg 2 (seq, optional): origin
func py_IsAutomorphism(module py.Object, args py.Tuple) (py.Object, error) {
	if err := argCount(args, 1, 2, "IsAutomorphism"); err != nil {
		return nil, err
	}
	perm, err := loadOrdering(args[0])
	if err != nil {
		return nil, err
	}
	origin, err := optOrigin(args, 1)
	if err != nil {
		return nil, err
	}
	fano, err := lib7x3.NewFanoPlane(origin)
	if err != nil {
		return nil, wrapErr(err)
	}

	isAuto, err := lib7x3.IsAutomorphism(perm, origin, fano)
	if err != nil {
		return nil, wrapErr(err)
	}
	return py.NewBool(isAuto), nil
}

// Arg 1 (seq): origin
// Arg 2 (seq): permutation
func py_ToCycleNotation(module py.Object, args py.Tuple) (py.Object, error) {
	if err := argCount(args, 2, 2, "ToCycleNotation"); err != nil {
		return nil, err
	}
	origin, err := loadOrdering(args[0])
	if err != nil {
		return nil, err
	}
	perm, err := loadOrdering(args[1])
	if err != nil {
		return nil, err
	}

	str, err := lib7x3.ToCycleNotation(origin, perm)
	if err != nil {
		return nil, wrapErr(err)
	}
	return py.String(str), nil
}

// Arg 1 (seq): origin
// Arg 2 (str): cycle notation
func py_ParseCycles(module py.Object, args py.Tuple) (py.Object, error) {
	if err := argCount(args, 2, 2, "ParseCycles"); err != nil {
		return nil, err
	}
	origin, err := loadOrdering(args[0])
	if err != nil {
		return nil, err
	}
	expr, ok := args[1].(py.String)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected str (got %v)", args[1].Type().Name)
	}

	perm, err := lib7x3.ParseCycleNotation(origin, string(expr))
	if err != nil {
		return nil, wrapErr(err)
	}
	return wrapOrdering(perm), nil
}

// Arg 1 (seq, optional): origin
func py_FanoLines(module py.Object, args py.Tuple) (py.Object, error) {
	if err := argCount(args, 0, 1, "FanoLines"); err != nil {
		return nil, err
	}
	origin, err := optOrigin(args, 0)
	if err != nil {
		return nil, err
	}
	fano, err := lib7x3.NewFanoPlane(origin)
	if err != nil {
		return nil, wrapErr(err)
	}

	lines := fano.Lines()
	out := make(py.Tuple, len(lines))
	for i, line := range lines {
		out[i] = wrapOrdering(line[:])
	}
	return out, nil
}

// Arg 1 (seq, optional): origin
func py_Automorphisms(module py.Object, args py.Tuple) (py.Object, error) {
	if err := argCount(args, 0, 1, "Automorphisms"); err != nil {
		return nil, err
	}
	origin, err := optOrigin(args, 0)
	if err != nil {
		return nil, err
	}
	fano, err := lib7x3.NewFanoPlane(origin)
	if err != nil {
		return nil, wrapErr(err)
	}

	autos, err := lib7x3.FindAutomorphisms(context.Background(), origin, fano)
	if err != nil {
		return nil, wrapErr(err)
	}

	out := make(py.Tuple, len(autos))
	for i, auto := range autos {
		out[i] = py.String(auto.Cycles)
	}
	return out, nil
}

func init() {
	methods := []*py.Method{
		py.MustNewMethod("Permutations", py_Permutations, 0, "Permutations(symbols) -> tuple of every ordering of symbols"),
		py.MustNewMethod("IsAutomorphism", py_IsAutomorphism, 0, "IsAutomorphism(perm[, origin]) -> True if perm preserves the Fano plane lines"),
		py.MustNewMethod("ToCycleNotation", py_ToCycleNotation, 0, "ToCycleNotation(origin, perm) -> disjoint cycle notation of perm"),
		py.MustNewMethod("ParseCycles", py_ParseCycles, 0, "ParseCycles(origin, expr) -> permutation described by a cycle notation expr"),
		py.MustNewMethod("FanoLines", py_FanoLines, 0, "FanoLines([origin]) -> the 7 lines of the Fano plane"),
		py.MustNewMethod("Automorphisms", py_Automorphisms, 0, "Automorphisms([origin]) -> cycle notation of each Fano plane automorphism"),
	}

	globals := py.StringDict{
		"LIB_VERSION": py.String(LIB_VERSION),
		"NUM_SYMBOLS": py.Int(go7x3.NumSymbols),
		"IDENTITY":    py.String(go7x3.IdentityCycle),
	}

	py.RegisterModule(&py.ModuleImpl{
		Info: py.ModuleInfo{
			Name: "py7x3",
			Doc:  "Fano plane automorphism gpython module",
		},
		Methods: methods,
		Globals: globals,
	})
}
