package lib7x3

import (
	"github.com/2x3systems/go7x3/go7x3"
	"github.com/pkg/errors"
)

// LineIncidence lists, for each Fano line, the positions of its three points within an ordering.
//
// Laid over the origin "1".."7" it yields the canonical lines; laid over a permutation it yields the image of each
// canonical line under that permutation.
var LineIncidence = [go7x3.NumLines][go7x3.LineSize]int{
	{0, 1, 2},
	{0, 3, 4},
	{0, 5, 6},
	{1, 3, 5},
	{1, 4, 6},
	{2, 3, 6},
	{2, 4, 5},
}

// FanoPlane is an immutable incidence structure of 7 symbols and 7 three-symbol lines.
type FanoPlane struct {
	symbols go7x3.Ordering
	lines   []go7x3.Line
}

// GenerateLines returns the canonical 7 lines over the symbols "1".."7":
//
//	{1,2,3} {1,4,5} {1,6,7} {2,4,6} {2,5,7} {3,4,7} {3,5,6}
func GenerateLines() []go7x3.Line {
	lines, _ := groupByIncidence(go7x3.DefaultOrigin())
	return lines
}

// CanonicalFanoPlane returns the Fano plane over the default origin "1".."7".
func CanonicalFanoPlane() *FanoPlane {
	fano, err := NewFanoPlane(go7x3.DefaultOrigin())
	if err != nil {
		panic(err)
	}
	return fano
}

// NewFanoPlane lays the canonical incidence pattern over the given 7 distinct symbols.
func NewFanoPlane(origin go7x3.Ordering) (*FanoPlane, error) {
	if !origin.HasDistinctSymbols() {
		return nil, errors.Wrapf(go7x3.ErrInvalidArgument, "origin %v has repeated symbols", origin)
	}
	lines, err := groupByIncidence(origin)
	if err != nil {
		return nil, err
	}
	return &FanoPlane{
		symbols: origin.Clone(),
		lines:   lines,
	}, nil
}

// NewStructure builds a structure from arbitrary lines.  Call Validate() to check the Fano axioms.
func NewStructure(symbols go7x3.Ordering, lines []go7x3.Line) *FanoPlane {
	fano := &FanoPlane{
		symbols: symbols.Clone(),
		lines:   make([]go7x3.Line, len(lines)),
	}
	copy(fano.lines, lines)
	return fano
}

// Lines returns a copy of this structure's lines in their fixed iteration order.
func (fano *FanoPlane) Lines() []go7x3.Line {
	lines := make([]go7x3.Line, len(fano.lines))
	copy(lines, fano.lines)
	return lines
}

// Symbols returns a copy of this structure's symbols.
func (fano *FanoPlane) Symbols() go7x3.Ordering {
	return fano.symbols.Clone()
}

// Validate checks the Fano plane axioms:
//   - there are exactly 7 symbols and 7 lines, and no two lines are identical
//   - each line holds 3 distinct symbols of the structure
//   - each symbol lies on exactly 3 lines
//   - each pair of symbols lies on exactly one common line
func (fano *FanoPlane) Validate() error {
	if len(fano.symbols) != go7x3.NumSymbols || !fano.symbols.HasDistinctSymbols() {
		return errors.Wrapf(go7x3.ErrViolatesAxioms, "expected %d distinct symbols, got %v", go7x3.NumSymbols, fano.symbols)
	}
	if len(fano.lines) != go7x3.NumLines {
		return errors.Wrapf(go7x3.ErrViolatesAxioms, "expected %d lines, got %d", go7x3.NumLines, len(fano.lines))
	}

	linesPerSymbol := make(map[go7x3.Symbol]int, go7x3.NumSymbols)
	linesPerPair := make(map[[2]go7x3.Symbol]int, 21)

	for li, line := range fano.lines {
		if !go7x3.Ordering(line[:]).HasDistinctSymbols() {
			return errors.Wrapf(go7x3.ErrViolatesAxioms, "line %v repeats a symbol", line)
		}
		for lj := 0; lj < li; lj++ {
			if fano.lines[lj].Covers(line) {
				return errors.Wrapf(go7x3.ErrViolatesAxioms, "line %v appears twice", line)
			}
		}
		for i, si := range line {
			if !fano.symbols.Contains(si) {
				return errors.Wrapf(go7x3.ErrViolatesAxioms, "line %v holds unknown symbol %q", line, si)
			}
			linesPerSymbol[si]++
			for _, sj := range line[i+1:] {
				linesPerPair[pairKey(si, sj)]++
			}
		}
	}

	for i, si := range fano.symbols {
		if n := linesPerSymbol[si]; n != go7x3.LinesPerSymbol {
			return errors.Wrapf(go7x3.ErrViolatesAxioms, "symbol %q lies on %d lines", si, n)
		}
		for _, sj := range fano.symbols[i+1:] {
			if n := linesPerPair[pairKey(si, sj)]; n != 1 {
				return errors.Wrapf(go7x3.ErrViolatesAxioms, "symbols %q and %q share %d lines", si, sj, n)
			}
		}
	}

	return nil
}

func pairKey(a, b go7x3.Symbol) [2]go7x3.Symbol {
	if b < a {
		a, b = b, a
	}
	return [2]go7x3.Symbol{a, b}
}

// groupByIncidence reinterprets X as 7 lines using LineIncidence.
func groupByIncidence(X go7x3.Ordering) ([]go7x3.Line, error) {
	if len(X) != go7x3.NumSymbols {
		return nil, errors.Wrapf(go7x3.ErrInvalidArgument, "expected %d symbols, got %d", go7x3.NumSymbols, len(X))
	}

	lines := make([]go7x3.Line, go7x3.NumLines)
	for li, pos := range LineIncidence {
		for j, pj := range pos {
			lines[li][j] = X[pj]
		}
	}
	return lines, nil
}
