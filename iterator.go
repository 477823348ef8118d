package ttset

func (s *Set[K]) newIterator(n *node[K]) *Iterator[K] {
	return &Iterator[K]{set: s, cur: n, version: s.version}
}

// check validates the iterator against its set's current version stamp.
// There is no recovery from staleness; reacquire the iterator.
func (it *Iterator[K]) check() error {
	if it.set == nil || it.version != it.set.version {
		return ErrStaleIterator
	}
	return nil
}

// Next advances to the successor key. Advancing past the end returns
// ErrNoMoreKeys and leaves the iterator at the end position. O(log n).
func (it *Iterator[K]) Next() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.cur == &it.set.end {
		return ErrNoMoreKeys
	}
	it.cur = it.set.nextLeaf(it.cur)
	return nil
}

// Prev retreats to the predecessor key; from the end position it moves to
// the largest key. Retreating before the first key returns ErrNoMoreKeys
// and leaves the iterator in place. O(log n).
func (it *Iterator[K]) Prev() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.cur == &it.set.end && it.set.root == nil {
		return ErrNoMoreKeys
	}
	prev := it.set.prevLeaf(it.cur)
	if prev == &it.set.end {
		return ErrNoMoreKeys
	}
	it.cur = prev
	return nil
}

// Key returns the key under the cursor. The end iterator has no key and
// yields ErrEndIterator.
func (it *Iterator[K]) Key() (K, error) {
	var zero K
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.cur == &it.set.end {
		return zero, ErrEndIterator
	}
	return *it.cur.key, nil
}

// AtEnd reports whether the iterator sits at the off-the-end position.
func (it *Iterator[K]) AtEnd() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}
	return it.cur == &it.set.end, nil
}

// Equal reports whether both iterators point at the same position of the
// same set. Iterators of two different sets are never equal. Both sides
// are validated first.
func (it *Iterator[K]) Equal(other *Iterator[K]) (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}
	if err := other.check(); err != nil {
		return false, err
	}
	return it.set == other.set && it.cur == other.cur, nil
}
