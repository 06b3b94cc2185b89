package go7x3

import (
	"strings"
	"sync"
)

// Clone returns a copy of X that shares no storage with X.
func (X Ordering) Clone() Ordering {
	if X == nil {
		return nil
	}
	dup := make(Ordering, len(X))
	copy(dup, X)
	return dup
}

// Equal returns true if X and Y hold the same symbols in the same order.
func (X Ordering) Equal(Y Ordering) bool {
	if len(X) != len(Y) {
		return false
	}
	for i, xi := range X {
		if Y[i] != xi {
			return false
		}
	}
	return true
}

// IndexOf returns the position of the first occurrence of sym in X, or -1.
func (X Ordering) IndexOf(sym Symbol) int {
	for i, xi := range X {
		if xi == sym {
			return i
		}
	}
	return -1
}

func (X Ordering) Contains(sym Symbol) bool {
	return X.IndexOf(sym) >= 0
}

// String renders X as its symbols concatenated, e.g. "1234567".
func (X Ordering) String() string {
	return strings.Join(X, "")
}

func (X Ordering) Join(sep string) string {
	return strings.Join(X, sep)
}

// IsRearrangementOf returns true if X holds exactly the symbols of origin, each exactly once.
//
// origin is assumed to hold distinct symbols.
func (X Ordering) IsRearrangementOf(origin Ordering) bool {
	if len(X) != len(origin) {
		return false
	}
	seen := make(map[Symbol]struct{}, len(X))
	for _, xi := range X {
		if !origin.Contains(xi) {
			return false
		}
		if _, dupe := seen[xi]; dupe {
			return false
		}
		seen[xi] = struct{}{}
	}
	return true
}

// HasDistinctSymbols returns true if no symbol appears in X more than once.
func (X Ordering) HasDistinctSymbols() bool {
	seen := make(map[Symbol]struct{}, len(X))
	for _, xi := range X {
		if _, dupe := seen[xi]; dupe {
			return false
		}
		seen[xi] = struct{}{}
	}
	return true
}

// Contains returns true if sym is a member of this line.
func (L Line) Contains(sym Symbol) bool {
	for _, li := range L {
		if li == sym {
			return true
		}
	}
	return false
}

// Covers returns true if every member of candidate is also a member of L.
func (L Line) Covers(candidate Line) bool {
	for _, ci := range candidate {
		if !L.Contains(ci) {
			return false
		}
	}
	return true
}

func (L Line) String() string {
	return "{" + strings.Join(L[:], ",") + "}"
}

func (kind OutputKind) String() string {
	switch kind {
	case Permutations:
		return "Permutations"
	case Automorphisms:
		return "Automorphisms"
	}
	return "Unknown"
}

// ParseOutputKind accepts "perms", "autos", or a full kind name (case insensitive).
func ParseOutputKind(str string) (OutputKind, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "perms", "permutations", "a":
		return Permutations, nil
	case "autos", "automorphisms", "b":
		return Automorphisms, nil
	}
	return 0, ErrBadKind
}

func NewCatalogContext() CatalogContext {
	ctx := &catalogContext{
		openCatalogs: make(map[Catalog]struct{}),
		closing:      make(chan struct{}),
		closed:       make(chan struct{}),
	}
	ctx.openCount.Add(1)
	go func() {
		<-ctx.Closing()
		ctx.openCount.Done()
		ctx.openCount.Wait()
		close(ctx.closed)
	}()
	return ctx
}

type catalogContext struct {
	mu           sync.Mutex
	openCount    sync.WaitGroup
	openCatalogs map[Catalog]struct{}
	closing      chan struct{}
	closed       chan struct{}
	closeOnce    sync.Once
}

func (ctx *catalogContext) AttachCatalog(cat Catalog) {
	ctx.openCount.Add(1)
	ctx.mu.Lock()
	ctx.openCatalogs[cat] = struct{}{}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) DetachCatalog(cat Catalog) {
	ctx.mu.Lock()
	if _, exists := ctx.openCatalogs[cat]; exists {
		delete(ctx.openCatalogs, cat)
		ctx.openCount.Done()
	}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) Closing() <-chan struct{} {
	return ctx.closing
}

func (ctx *catalogContext) Done() <-chan struct{} {
	return ctx.closed
}

func (ctx *catalogContext) Close() {
	ctx.closeOnce.Do(func() {
		close(ctx.closing)
		ctx.mu.Lock()
		open := make([]Catalog, 0, len(ctx.openCatalogs))
		for cat := range ctx.openCatalogs {
			open = append(open, cat)
		}
		ctx.mu.Unlock()

		// Catalog.Close() detaches itself, so it can't be called while holding mu
		for _, cat := range open {
			go cat.Close()
		}
	})
}
