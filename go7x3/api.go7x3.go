package go7x3

const (

	// NumSymbols is the number of points (symbols) of a Fano plane.
	NumSymbols = 7

	// NumLines is the number of lines of a Fano plane.
	NumLines = 7

	// LineSize is the number of symbols on each line.
	LineSize = 3

	// LinesPerSymbol is the number of lines passing through each symbol.
	LinesPerSymbol = 3

	// IdentityCycle is how the identity permutation is rendered in cycle notation.
	IdentityCycle = "(1)"
)

// Symbol is an opaque point label, such as "1" .. "7".
type Symbol = string

// Ordering is an ordered sequence of symbols.
//
// An origin Ordering fixes the position-to-symbol correspondence for a run.  A permutation is an Ordering holding each
// symbol of the origin exactly once, implying the mapping origin[i] -> perm[i].
type Ordering []Symbol

// Line is an unordered 3-element subset of symbols.
type Line [LineSize]Symbol

// DefaultOrigin returns a new Ordering of the symbols "1" .. "7".
func DefaultOrigin() Ordering {
	return Ordering{"1", "2", "3", "4", "5", "6", "7"}
}

// OutputKind identifies what a listing or catalog entry holds.
type OutputKind byte

const (
	Permutations  OutputKind = 1
	Automorphisms OutputKind = 2
)

// Entry is a single catalog row.
type Entry struct {
	Kind   OutputKind
	Perm   Ordering
	Cycles string // cycle notation of Perm against the catalog origin (Automorphisms only)
}

// OnEntryHit is used to return Entries meeting a set of selection criteria.
// Ownership of each Entry travels through the channel.
type OnEntryHit chan<- *Entry

// EntrySelector selects a range of catalog entries.
type EntrySelector struct {
	Kind  OutputKind // kind of entries to select
	Limit int        // max number of entries to emit (0 denotes no limit)
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Closes all open catalogs then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a Catalog
type CatalogOpts struct {
	DbPathName string   // omit for in-memory db
	ReadOnly   bool     // open in read-only mode
	Origin     Ordering // origin ordering entries are encoded against (nil denotes DefaultOrigin)
}

// EntryAdder accepts catalog entries.
type EntryAdder interface {

	// Tries to add the given entry to this catalog.
	// If true is returned, the entry did not exist and was added.
	TryAddEntry(e *Entry) bool
}

// Catalog wraps a database of permutation and automorphism listings.
type Catalog interface {
	EntryAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// Origin returns the origin ordering that entries are encoded against.
	Origin() Ordering

	// NumEntries returns the number of entries stored for the given kind.
	NumEntries(kind OutputKind) int64

	// Select sends each Entry that meets the selection criteria to onHit, in the order they were generated.
	Select(sel EntrySelector, onHit OnEntryHit)

	Close() error
}

// PrintOpts specifies how orderings are printed.
type PrintOpts struct {
	Label  string   // Prefix label
	Origin Ordering // Origin used for cycle notation
	Cycles bool     // If set, prints cycle notation against Origin instead of the plain symbols
	Counts bool     // If set, each row is prefixed with a running row count
}
