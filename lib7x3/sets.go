package lib7x3

import (
	"encoding/binary"

	"github.com/2x3systems/go7x3/go7x3"
	"github.com/dgraph-io/badger/v3"
)

// PermSet allows adding permutations to an internal set and returning if a given permutation has already been added.
type PermSet interface {
	PermAdder

	// TryAdd adds a copy of X if it is not already present.
	//
	// If X already is in this PermSet, false is returned and this call has no effect.
	// If X isn't in this PermSet, X is added and true is returned.
	//
	// After one or more calls to TryAdd(), be sure to call Close() for cleanup.
	TryAdd(X go7x3.Ordering) bool

	// Close removes all previously added items from this set.
	//
	// If you make subsequent calls to TryAdd(), call Close() when you're done.
	Close()
}

// NewPermSet returns an empty PermSet backed by an in-memory LSM.
func NewPermSet() PermSet {
	return &permSet{}
}

type permSet struct {
	lsmSet
}

func (ps *permSet) TryAdd(X go7x3.Ordering) bool {
	var buf [64]byte
	return ps.tryAdd(AppendPermKey(buf[:0], X))
}

func (ps *permSet) TryAddPerm(X go7x3.Ordering) bool {
	return ps.TryAdd(X)
}

// AppendPermKey appends a key uniquely identifying the symbols of X (in order) to out.
//
// Each symbol is length-prefixed so that no two orderings share a key, whatever bytes their symbols hold.
func AppendPermKey(out []byte, X go7x3.Ordering) []byte {
	for _, sym := range X {
		out = binary.AppendUvarint(out, uint64(len(sym)))
		out = append(out, sym...)
	}
	return out
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Discard()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		if err == nil {
			err = txn.Commit()
		}
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
