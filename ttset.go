// Package ttset implements a sorted set of unique keys backed by a 2-3 tree:
// every internal node has 2 or 3 children and all leaves share equal depth,
// giving O(log n) insert, delete, membership and bound queries.
//
// Iterators are bidirectional cursors over the leaves. Every structural
// mutation of a set bumps its version stamp, and any iterator issued before
// the mutation fails with ErrStaleIterator on its next use; reacquire it
// from the set. The stamp detects staleness within a single goroutine only,
// it is not a concurrency mechanism. Concurrent use of a set, or of an
// iterator while another goroutine mutates its set, requires external
// synchronization.
package ttset

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

const (
	// maxSons is the transient fan-out: a node holds 2 or 3 children in
	// any stable state, 4 only mid-insert before the mandatory split.
	maxSons = 4
)

// Log receives debug traces of structural events (splits, merges, root
// growth and collapse). Silent at the default level.
var Log = logrus.New()

var (
	ErrStaleIterator = errors.New("ttset: set mutated since iterator was issued")
	ErrNoMoreKeys    = errors.New("ttset: no more keys in the set")
	ErrEndIterator   = errors.New("ttset: end iterator has no key")
)

type (
	// LessFunc reports whether a orders before b. It must define a strict
	// weak ordering; two keys are equivalent iff neither is less than the
	// other. It is the only comparison the set ever performs.
	LessFunc[K any] func(a, b K) bool

	// node is a tree vertex. A leaf (nsons == 0) owns the key it stores;
	// an internal node's key aliases its rightmost descendant's key and is
	// used only for descent comparisons.
	node[K any] struct {
		key    *K
		parent *node[K]
		sons   [maxSons]*node[K]
		nsons  int
	}

	// Set is a sorted collection of unique keys. The zero value is not
	// usable; construct with New, NewFunc or From.
	Set[K any] struct {
		root    *node[K]
		size    int
		version uint64
		less    LessFunc[K]
		// end is the keyless off-the-end cursor target. It never joins
		// the parent/child linkage; its address identifies the set's
		// end position.
		end node[K]
	}

	// Iterator is a cursor over the keys of a Set in ascending order. It
	// holds a non-owning reference into the set's tree and the version
	// stamp observed at creation.
	Iterator[K any] struct {
		set     *Set[K]
		cur     *node[K]
		version uint64
	}
)

// New returns an empty set ordered by the natural < of K.
func New[K constraints.Ordered]() *Set[K] {
	return NewFunc[K](func(a, b K) bool { return a < b })
}

// NewFunc returns an empty set ordered by less.
func NewFunc[K any](less LessFunc[K]) *Set[K] {
	if less == nil {
		panic("ttset: nil less function")
	}
	return &Set[K]{less: less}
}

// From returns a set holding the given keys, duplicates collapsed.
func From[K constraints.Ordered](keys ...K) *Set[K] {
	s := New[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func newLeaf[K any](key K) *node[K] {
	return &node[K]{key: &key}
}
