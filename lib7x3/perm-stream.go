package lib7x3

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/go7x3/go7x3"
)

// PermAdder accepts permutations.
type PermAdder interface {

	// TryAddPerm adds X if not already present, returning true if X was added.
	TryAddPerm(X go7x3.Ordering) bool
}

// PermStream is a stage in a pipeline of permutations.
//
// Each stage owns one goroutine and closes its Outlet once its input is exhausted.
type PermStream struct {
	Outlet chan go7x3.Ordering
}

func (stream *PermStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// PullAll drains this stream, returning how many permutations it emitted.
func (stream *PermStream) PullAll() int {
	count := int(0)
	for range stream.Outlet {
		count++
	}
	return count
}

// Drain discards whatever remains in this stream.
func (stream *PermStream) Drain() {
	for range stream.Outlet {
	}
}

// Collect drains this stream into a slice.
func (stream *PermStream) Collect() []go7x3.Ordering {
	var all []go7x3.Ordering
	for X := range stream.Outlet {
		all = append(all, X)
	}
	return all
}

func (stream *PermStream) newStage() *PermStream {
	return &PermStream{
		Outlet: make(chan go7x3.Ordering, 1),
	}
}

// Select passes along only the permutations for which keep() returns true.
func (stream *PermStream) Select(keep func(X go7x3.Ordering) bool) *PermStream {
	next := stream.newStage()

	go func() {
		for X := range stream.Outlet {
			if keep(X) {
				next.Outlet <- X
			}
		}
		next.Close()
	}()

	return next
}

// AddTo offers each permutation to target, passing along only those that target added.
func (stream *PermStream) AddTo(target PermAdder) *PermStream {
	next := stream.newStage()

	go func() {
		for X := range stream.Outlet {
			if target.TryAddPerm(X) {
				next.Outlet <- X
			}
		}
		next.Close()
	}()

	return next
}

// DropDupes passes along only the first occurrence of each permutation.
func (stream *PermStream) DropDupes() *PermStream {
	set := NewPermSet()
	next := stream.AddTo(set)

	// Close the set once the last stage has pulled through
	out := stream.newStage()
	go func() {
		for X := range next.Outlet {
			out.Outlet <- X
		}
		set.Close()
		out.Close()
	}()

	return out
}

// Print writes each permutation as a row to out and passes it along.  out is closed when this stream closes.
func (stream *PermStream) Print(
	out io.WriteCloser,
	opts go7x3.PrintOpts) *PermStream {

	next := stream.newStage()

	go func() {
		buf := strings.Builder{}
		buf.Grow(64)

		count := 0
		for X := range stream.Outlet {
			count++
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
				buf.WriteByte(',')
			}
			if opts.Counts {
				fmt.Fprintf(&buf, "%06d,", count)
			}
			buf.WriteString(FormatRow(X, opts))
			buf.WriteByte('\n')
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- X
		}
		out.Close()
		next.Close()
	}()

	return next
}

// FormatRow renders X as plain symbols, or in cycle notation if opts.Cycles is set.
//
// If X can't be rendered in cycle notation, the error is rendered in its place.
func FormatRow(X go7x3.Ordering, opts go7x3.PrintOpts) string {
	if !opts.Cycles {
		return X.String()
	}
	origin := opts.Origin
	if origin == nil {
		origin = go7x3.DefaultOrigin()
	}
	str, err := ToCycleNotation(origin, X)
	if err != nil {
		return fmt.Sprintf("!%v", err)
	}
	return str
}
