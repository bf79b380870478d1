// Package trie implements an in-memory ordered associative container keyed
// by arbitrary byte strings, as a path-compressed radix tree branching on
// 4-bit nibbles. It supports insertion, lookup, deletion, in-order
// iteration and two tree-dump serialisations.
//
// The container is not safe for concurrent use; callers sharing a Trie
// across goroutines must provide their own synchronisation.
package trie

import "errors"

// ErrAlreadyPresent is returned by InsertAt when the supplied Position
// already designates an occupied entry.
var ErrAlreadyPresent = errors.New("trie: key already present")

// ErrEndIterator is returned by Erase when called on the end iterator.
var ErrEndIterator = errors.New("trie: erase at end iterator")

// KeyFunc extracts the byte-string key of a stored value. For an entry
// type that is itself a byte sequence, IdentityKey is the sensible default
// (see bytekeys.go).
type KeyFunc[T any] func(T) []byte

// Trie is a nibble-addressed path-compressed radix tree. The zero value is
// not usable; construct one with New.
type Trie[T any] struct {
	keyOf  KeyFunc[T]
	slobby bool

	root    *node[T]
	entries entryList[T]
}

// New constructs an empty Trie. keyOf supplies the byte-string key of a
// stored value; key length is simply len(keyOf(v)), so no separate
// accessor is needed.
//
// slobby selects the fast-path lookup: Find will skip comparing a
// matched key's tail once descent reaches a leaf. This is only safe when
// keys sharing a long common prefix are guaranteed equal (e.g.
// cryptographic hash digests); the default, strict mode, always compares
// the full key and never reports a false positive. The mode is fixed for
// the lifetime of the trie.
func New[T any](keyOf KeyFunc[T], slobby bool) *Trie[T] {
	return &Trie[T]{
		keyOf:  keyOf,
		slobby: slobby,
		root:   newLeafNode[T](),
	}
}

// Len returns the number of entries currently stored.
func (t *Trie[T]) Len() int {
	return t.entries.count
}

// Find returns an iterator at the entry for key, or the end iterator on
// miss. If the trie was constructed with slobby mode, Find uses the fast
// leaf short-circuit described on New.
func (t *Trie[T]) Find(key []byte) *Iterator[T] {
	pos := t.trace(t.searchMiss, key, t.slobby)
	if !pos.isMatch {
		return t.End()
	}
	return &Iterator[T]{trie: t, node: pos.node}
}

// LowerBound traces key without mutating the trie and without using the
// slobby fast path (a cursor used for a subsequent InsertAt must pin down
// the true point of divergence). The returned Position is usable as an
// InsertAt argument until the next structural mutation.
func (t *Trie[T]) LowerBound(key []byte) Position[T] {
	return t.trace(t.searchMiss, key, false)
}
