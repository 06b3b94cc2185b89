package lib7x3

import (
	"context"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"
)

// Automorphism is a permutation that preserves the Fano plane's lines, along with its cycle notation.
type Automorphism struct {
	Perm   go7x3.Ordering
	Cycles string
}

// PermToLines groups the given permutation into 7 candidate lines using LineIncidence.
func PermToLines(perm go7x3.Ordering) ([]go7x3.Line, error) {
	return groupByIncidence(perm)
}

// IsAutomorphism returns true if perm maps every line of the given Fano plane onto a line of that plane.
//
// Each candidate line of perm (see PermToLines) consumes the first remaining structure line that covers it, and
// a consumed line is never offered to a later candidate.  No earlier choice is revisited: in the Fano line system
// a candidate matches at most one line, so first-fit with removal decides the permutation exactly.
//
// A working copy of the structure's lines is made on every call.
func IsAutomorphism(perm, origin go7x3.Ordering, fano *FanoPlane) (bool, error) {
	if fano == nil {
		return false, go7x3.ErrNilStructure
	}
	if len(origin) != go7x3.NumSymbols || !origin.IsRearrangementOf(fano.symbols) {
		return false, errors.Wrapf(go7x3.ErrInvalidArgument, "origin %v does not hold the %d structure symbols", origin, go7x3.NumSymbols)
	}
	if len(perm) != go7x3.NumSymbols || !perm.IsRearrangementOf(origin) {
		return false, errors.Wrapf(go7x3.ErrInvalidArgument, "%v is not a permutation of %v", perm, origin)
	}

	candidates, err := PermToLines(perm)
	if err != nil {
		return false, err
	}

	remaining := arraylist.New()
	for _, line := range fano.lines {
		remaining.Add(line)
	}

	satisfied := 0
	for _, candidate := range candidates {
		idx, _ := remaining.Find(func(_ int, value interface{}) bool {
			return value.(go7x3.Line).Covers(candidate)
		})
		if idx >= 0 {
			remaining.Remove(idx)
			satisfied++
		}
	}

	return satisfied == go7x3.NumLines, nil
}

// FindAutomorphisms enumerates all permutations of origin and returns those that are automorphisms of fano, each
// with its cycle notation against origin.
func FindAutomorphisms(ctx context.Context, origin go7x3.Ordering, fano *FanoPlane) ([]Automorphism, error) {
	if fano == nil {
		return nil, go7x3.ErrNilStructure
	}
	if len(origin) != go7x3.NumSymbols || !origin.IsRearrangementOf(fano.symbols) {
		return nil, errors.Wrapf(go7x3.ErrInvalidArgument, "origin %v does not hold the %d structure symbols", origin, go7x3.NumSymbols)
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	stream := EnumPermutations(grpCtx, origin)

	var autos []Automorphism
	numPerms := 0
	grp.Go(func() error {
		defer stream.Drain()
		for perm := range stream.Outlet {
			numPerms++
			isAuto, err := IsAutomorphism(perm, origin, fano)
			if err != nil {
				return err
			}
			if !isAuto {
				continue
			}
			cycles, err := ToCycleNotation(origin, perm)
			if err != nil {
				return err
			}
			autos = append(autos, Automorphism{
				Perm:   perm,
				Cycles: cycles,
			})
		}
		return grpCtx.Err()
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	klog.V(2).Infof("checked %d permutations of %v, found %d automorphisms", numPerms, origin, len(autos))
	return autos, nil
}

// SelectAutomorphisms passes along only the permutations that are automorphisms of fano.
//
// Permutations that fail validation are dropped and logged.
func (stream *PermStream) SelectAutomorphisms(origin go7x3.Ordering, fano *FanoPlane) *PermStream {
	return stream.Select(func(X go7x3.Ordering) bool {
		isAuto, err := IsAutomorphism(X, origin, fano)
		if err != nil {
			klog.Warningf("dropping %v: %v", X, err)
			return false
		}
		return isAuto
	})
}
