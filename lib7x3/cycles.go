package lib7x3

import (
	"strings"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
)

// ToCycleNotation renders the permutation origin[i] -> perm[i] as disjoint cycles, e.g. "(1 2)(3 4 5)".
//
// Fixed points are omitted and each cycle starts at its earliest symbol in origin order.  The identity renders as
// go7x3.IdentityCycle.
func ToCycleNotation(origin, perm go7x3.Ordering) (string, error) {
	if err := checkCycleArgs(origin, perm); err != nil {
		return "", err
	}
	if perm.Equal(origin) {
		return go7x3.IdentityCycle, nil
	}

	b := strings.Builder{}
	b.Grow(4 * len(origin))
	walkCycles(origin, perm, func(sym go7x3.Symbol, opensCycle, closesCycle bool) {
		if opensCycle {
			b.WriteByte('(')
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(sym)
		if closesCycle {
			b.WriteByte(')')
		}
	})
	return b.String(), nil
}

// Cycles returns the disjoint cycles (of length 2 or more) of the permutation origin[i] -> perm[i], in the same
// order and rotation that ToCycleNotation renders them.
func Cycles(origin, perm go7x3.Ordering) ([]go7x3.Ordering, error) {
	if err := checkCycleArgs(origin, perm); err != nil {
		return nil, err
	}

	var cycles []go7x3.Ordering
	walkCycles(origin, perm, func(sym go7x3.Symbol, opensCycle, _ bool) {
		if opensCycle {
			cycles = append(cycles, nil)
		}
		cur := &cycles[len(cycles)-1]
		*cur = append(*cur, sym)
	})
	return cycles, nil
}

func checkCycleArgs(origin, perm go7x3.Ordering) error {
	if len(origin) != go7x3.NumSymbols || !origin.HasDistinctSymbols() {
		return errors.Wrapf(go7x3.ErrInvalidArgument, "origin must hold %d distinct symbols, got %v", go7x3.NumSymbols, origin)
	}
	if len(perm) != go7x3.NumSymbols || !perm.IsRearrangementOf(origin) {
		return errors.Wrapf(go7x3.ErrInvalidArgument, "%v is not a permutation of %v", perm, origin)
	}
	return nil
}

// walkCycles makes a single pass over origin positions, emitting each symbol that belongs to a non-trivial cycle
// exactly once.
//
// A position is skipped when its symbol is a fixed point (it sits at the same index in perm) or was already
// written as part of an earlier cycle.  Otherwise a cycle opens at that symbol and follows origin[j] -> perm[j]
// until the mapped symbol returns to the symbol that opened the cycle.
func walkCycles(origin, perm go7x3.Ordering, onSymbol func(sym go7x3.Symbol, opensCycle, closesCycle bool)) {
	written := hashset.New()

	for i, sym := range origin {
		indexInPerm := perm.IndexOf(sym)
		if i == indexInPerm || written.Contains(sym) {
			continue
		}

		first := sym
		cur := i
		for {
			written.Add(origin[cur])
			mappedTo := perm[cur]
			onSymbol(origin[cur], origin[cur] == first, mappedTo == first)
			if mappedTo == first {
				break
			}
			cur = origin.IndexOf(mappedTo)
		}
	}
}
