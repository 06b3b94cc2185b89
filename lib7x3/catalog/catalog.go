package catalog

import (
	"encoding/binary"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/2x3systems/go7x3/lib7x3"
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState (protobuf)

	[kind], [seq]uint64 (big endian)       => EntryValue
	...

	[kind | kIndexFlag], PermKey           => nil
	...

	EntryValue := [N]uvarint, N x ([len]uvarint, Symbol), Cycles
	PermKey    := N x ([len]uvarint, Symbol)

Entries are keyed by a per-kind sequence number so that iterating a kind visits entries in the order they were
added (which is generation order for streamed permutations).  The index keys make TryAddEntry a point lookup.
The state (and so the next sequence number) is written in the same txn as each entry and its index key.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

const (
	kIndexFlag = byte(0x80)
)

// catalog is a badger db wrapper for permutation and automorphism listings
type catalog struct {
	ctx        go7x3.CatalogContext
	readOnly   bool
	mu         sync.Mutex
	stateDirty bool
	state      go7x3.CatalogState
	origin     go7x3.Ordering
	db         *badger.DB
}

func OpenCatalog(ctx go7x3.CatalogContext, opts go7x3.CatalogOpts) (go7x3.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(go7x3.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %q", opts.DbPathName)
	}

	// Once the db is open, we consider the catalog ctx blocked until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		if opts.ReadOnly {
			err = errors.Wrap(go7x3.ErrReadOnly, "catalog has no state and can't be initialised")
		}
		origin := opts.Origin
		if origin == nil {
			origin = go7x3.DefaultOrigin()
		}
		cat.stateDirty = true
		cat.state.MajorVers = go7x3.CatalogMajorVers
		cat.state.MinorVers = go7x3.CatalogMinorVers
		cat.state.Origin = origin.Clone()
	}

	if err == nil {
		if cat.state.MajorVers != go7x3.CatalogMajorVers || cat.state.MinorVers != go7x3.CatalogMinorVers {
			err = errors.Wrapf(go7x3.ErrCatalogVersion, "found v%d.%d", cat.state.MajorVers, cat.state.MinorVers)
		} else if opts.Origin != nil && !opts.Origin.Equal(cat.state.Origin) {
			err = errors.Wrapf(go7x3.ErrCatalogOrigin, "catalog holds %v, requested %v", go7x3.Ordering(cat.state.Origin), opts.Origin)
		}
	}

	if err == nil {
		err = cat.flushState()
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	cat.origin = go7x3.Ordering(cat.state.Origin).Clone()
	klog.V(2).Infof("opened catalog %q (%d permutations, %d automorphisms)", opts.DbPathName, cat.state.NumPerms, cat.state.NumAutos)
	return cat, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return cat.state.DecodeState(val)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() error {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	if !cat.stateDirty || cat.readOnly {
		return nil
	}

	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := cat.state.EncodeState(nil)
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err == nil {
		cat.stateDirty = false
	}
	return err
}

func (cat *catalog) Close() error {
	var err error
	if cat.db != nil {
		err = cat.flushState()
		if closeErr := cat.db.Close(); err == nil {
			err = closeErr
		}
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
	}
	return err
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) Origin() go7x3.Ordering {
	return cat.origin.Clone()
}

func (cat *catalog) NumEntries(kind go7x3.OutputKind) int64 {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	return int64(cat.state.NumEntries(kind))
}

func checkKind(kind go7x3.OutputKind) error {
	if kind != go7x3.Permutations && kind != go7x3.Automorphisms {
		return errors.Wrapf(go7x3.ErrBadKind, "kind %d", kind)
	}
	return nil
}

// TryAddEntry adds the given entry if its permutation isn't already present for its kind.
//
// If false is returned, the entry already exists, the catalog is read-only, or the entry is malformed.
func (cat *catalog) TryAddEntry(e *go7x3.Entry) bool {
	if cat.readOnly || e == nil || checkKind(e.Kind) != nil {
		return false
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	indexKey := lib7x3.AppendPermKey([]byte{byte(e.Kind) | kIndexFlag}, e.Perm)
	_, err := txn.Get(indexKey)
	if err == nil {
		return false
	}
	if err != badger.ErrKeyNotFound {
		klog.Errorf("catalog lookup failed: %v", err)
		return false
	}

	seq := cat.state.NumEntries(e.Kind) + 1
	entryKey := binary.BigEndian.AppendUint64([]byte{byte(e.Kind)}, seq)

	nextState := cat.state
	nextState.IncEntries(e.Kind)
	stateBuf, err := nextState.EncodeState(nil)

	if err == nil {
		err = txn.Set(entryKey, appendEntryValue(nil, e))
	}
	if err == nil {
		err = txn.Set(indexKey, nil)
	}
	if err == nil {
		err = txn.Set(gCatalogStateKey, stateBuf)
	}
	if err == nil {
		err = txn.Commit()
	}
	if err != nil {
		klog.Errorf("catalog write failed: %v", err)
		return false
	}

	cat.state = nextState
	return true
}

// Select sends entries of the selected kind to onHit in the order they were added.
//
// onHit is not closed.
func (cat *catalog) Select(sel go7x3.EntrySelector, onHit go7x3.OnEntryHit) {
	if checkKind(sel.Kind) != nil {
		return
	}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	prefix := []byte{byte(sel.Kind)}
	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   300,
		Prefix:         prefix,
	})
	defer it.Close()

	count := 0
	for it.Rewind(); it.Valid(); it.Next() {
		if sel.Limit > 0 && count >= sel.Limit {
			break
		}

		e := &go7x3.Entry{
			Kind: sel.Kind,
		}
		err := it.Item().Value(func(val []byte) error {
			return readEntryValue(val, e)
		})
		if err != nil {
			klog.Errorf("skipping unreadable entry %x: %v", it.Item().Key(), err)
			continue
		}

		onHit <- e
		count++
	}
}

func appendEntryValue(out []byte, e *go7x3.Entry) []byte {
	out = binary.AppendUvarint(out, uint64(len(e.Perm)))
	for _, sym := range e.Perm {
		out = binary.AppendUvarint(out, uint64(len(sym)))
		out = append(out, sym...)
	}
	out = append(out, e.Cycles...)
	return out
}

var errBadEntryValue = errors.New("bad entry value")

func readEntryValue(in []byte, e *go7x3.Entry) error {
	N, n := binary.Uvarint(in)
	if n <= 0 {
		return errBadEntryValue
	}
	in = in[n:]

	e.Perm = make(go7x3.Ordering, 0, N)
	for i := uint64(0); i < N; i++ {
		symLen, n := binary.Uvarint(in)
		if n <= 0 || uint64(len(in)-n) < symLen {
			return errBadEntryValue
		}
		in = in[n:]
		e.Perm = append(e.Perm, string(in[:symLen]))
		in = in[symLen:]
	}
	e.Cycles = string(in)
	return nil
}

// SelectAll is a convenience wrapper around Catalog.Select that collects the selected entries.
func SelectAll(cat go7x3.Catalog, sel go7x3.EntrySelector) []*go7x3.Entry {
	onHit := make(chan *go7x3.Entry, 4)
	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	var entries []*go7x3.Entry
	for e := range onHit {
		entries = append(entries, e)
	}
	return entries
}

// NewAdder returns a PermAdder that adds each permutation to cat as the given kind.
//
// Automorphism entries are given their cycle notation against the catalog origin.
func NewAdder(cat go7x3.Catalog, kind go7x3.OutputKind) lib7x3.PermAdder {
	return &entryAdder{
		cat:    cat,
		kind:   kind,
		origin: cat.Origin(),
	}
}

type entryAdder struct {
	cat    go7x3.Catalog
	kind   go7x3.OutputKind
	origin go7x3.Ordering
}

func (adder *entryAdder) TryAddPerm(X go7x3.Ordering) bool {
	e := &go7x3.Entry{
		Kind: adder.kind,
		Perm: X,
	}
	if adder.kind == go7x3.Automorphisms {
		cycles, err := lib7x3.ToCycleNotation(adder.origin, X)
		if err != nil {
			klog.Warningf("not adding %v: %v", X, err)
			return false
		}
		e.Cycles = cycles
	}
	return adder.cat.TryAddEntry(e)
}

// ExportListing writes all entries of the given kind as a listing (see lib7x3.WriteListing).
func ExportListing(cat go7x3.Catalog, kind go7x3.OutputKind, w io.Writer, generated time.Time) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	entries := SelectAll(cat, go7x3.EntrySelector{
		Kind: kind,
	})

	rows := make([]string, len(entries))
	for i, e := range entries {
		if kind == go7x3.Automorphisms {
			rows[i] = e.Cycles
		} else {
			rows[i] = e.Perm.String()
		}
	}
	return lib7x3.WriteListing(w, kind, rows, generated)
}
