package lib7x3

import (
	"context"

	"github.com/2x3systems/go7x3/go7x3"
)

// PermutationCount returns n!, the number of permutations of n items.
func PermutationCount(n int) uint64 {
	count := uint64(1)
	for i := 2; i <= n; i++ {
		count *= uint64(i)
	}
	return count
}

// GeneratePermutations returns every ordering of items, exactly len(items)! of them.
//
// Items are selected by position, so equal values at different positions yield equal-valued permutations.
// Permutations appear in lexicographic order of source-index selection.  An empty input yields one empty permutation.
func GeneratePermutations[T any](items []T) [][]T {
	results := make([][]T, 0, PermutationCount(len(items)))
	VisitPermutations(items, func(perm []T) bool {
		results = append(results, perm)
		return true
	})
	return results
}

// VisitPermutations calls onPerm with each permutation of items, in the same order as GeneratePermutations.
//
// Each perm passed to onPerm is a fresh copy owned by the callee.  If onPerm returns false, the search stops and
// VisitPermutations returns false.
func VisitPermutations[T any](items []T, onPerm func(perm []T) bool) bool {
	p := permuter[T]{
		items:       items,
		inSelection: make([]bool, len(items)),
		current:     make([]T, len(items)),
		onPerm:      onPerm,
	}
	return p.permuteItems(0)
}

type permuter[T any] struct {
	items       []T
	inSelection []bool // inSelection[i] is set while items[i] is placed in current
	current     []T    // working buffer
	onPerm      func(perm []T) bool
}

func (p *permuter[T]) permuteItems(nextPosition int) bool {
	N := len(p.items)
	if nextPosition == N {
		perm := make([]T, N)
		copy(perm, p.current)
		return p.onPerm(perm)
	}

	for i := 0; i < N; i++ {
		if p.inSelection[i] {
			continue
		}

		p.inSelection[i] = true
		p.current[nextPosition] = p.items[i]
		keepGoing := p.permuteItems(nextPosition + 1)
		p.inSelection[i] = false

		if !keepGoing {
			return false
		}
	}
	return true
}

// EnumPermutations streams every permutation of items.
//
// The stream closes once all permutations are emitted or ctx is cancelled.
func EnumPermutations(ctx context.Context, items go7x3.Ordering) *PermStream {
	src := items.Clone()
	stream := &PermStream{
		Outlet: make(chan go7x3.Ordering, 1),
	}

	go func() {
		VisitPermutations(src, func(perm []go7x3.Symbol) bool {
			if ctx.Err() != nil {
				return false
			}
			select {
			case stream.Outlet <- go7x3.Ordering(perm):
				return true
			case <-ctx.Done():
				return false
			}
		})
		stream.Close()
	}()

	return stream
}
