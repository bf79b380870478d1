package trie

// insertMiss runs the split/leaf-creation protocol at the mismatch point
// trace located and reports the resulting node, matched to the full key
// length (the caller is always inserting a definite, complete key).
func (t *Trie[T]) insertMiss(key []byte, nod *node[T], qlen int) Position[T] {
	n := t.insertNode(key, nod, qlen)
	return Position[T]{node: n, matched: len(key) << 1, isMatch: false}
}

// insertNode splits the edge at nod if the new key's branch is already
// occupied by a diverging subtree, then creates the leaf that will host the
// new entry, or returns the new interim node itself when the key ends there.
func (t *Trie[T]) insertNode(key []byte, nod *node[T], qlen int) *node[T] {
	brIx := int(nibble(key, nod.qlen))

	if brNode := nod.children[brIx]; brNode != nil {
		// The new key diverges strictly inside the edge from nod to
		// brNode, so splice an interim node in between.
		inBrIx := int(nibble(brNode.key, qlen))
		in := &node[T]{
			key:    brNode.key,
			qlen:   qlen,
			parent: nod,
			brOwn:  brIx,
			br1st:  inBrIx,
			brLast: inBrIx,
		}
		in.children[inBrIx] = brNode
		brNode.parent = in
		brNode.brOwn = inBrIx
		nod.children[brIx] = in

		// The interim node's own path is exactly the new key, so it is
		// the target itself and no separate leaf is needed.
		if qlen == len(key)<<1 {
			return in
		}

		brIx = int(nibble(key, qlen))
		nod = in
	}

	if nod.isLeaf() {
		nod.br1st, nod.brLast = brIx, brIx
	} else {
		if nod.br1st > brIx {
			nod.br1st = brIx
		}
		if nod.brLast < brIx {
			nod.brLast = brIx
		}
	}

	// key is not set here. It will be borrowed from the entry once
	// insertItem installs it, since the entry's own storage is what
	// guarantees address stability.
	leaf := &node[T]{
		qlen:   len(key) << 1,
		parent: nod,
		brOwn:  brIx,
		br1st:  1,
		brLast: 0,
	}
	nod.children[brIx] = leaf
	return leaf
}

// insertItem installs value as the entry hosted by nod. The caller must
// have already established that nod carries no entry.
func (t *Trie[T]) insertItem(value T, nod *node[T]) *entry[T] {
	e := &entry[T]{value: value}
	e.key = t.keyOf(value)
	t.entries.pushBack(e)
	nod.entry = e
	nod.key = e.key
	return e
}

// Insert adds value unless its key is already present, in which case the
// existing entry is left untouched. The returned iterator always points at
// the entry for value's key, whether newly inserted or pre-existing.
func (t *Trie[T]) Insert(value T) *Iterator[T] {
	key := t.keyOf(value)
	pos := t.trace(t.insertMiss, key, false)
	if !pos.isMatch {
		t.insertItem(value, pos.node)
	}
	return &Iterator[T]{trie: t, node: pos.node}
}

// InsertAt installs value at a Position previously obtained from
// LowerBound, avoiding a second trace from the root. It fails with
// ErrAlreadyPresent if pos already designates an occupied entry.
func (t *Trie[T]) InsertAt(value T, pos Position[T]) (*Iterator[T], error) {
	if pos.isMatch {
		return nil, ErrAlreadyPresent
	}

	key := t.keyOf(value)
	nod := pos.node
	if pos.matched != nod.qlen || nod.qlen != len(key)<<1 {
		nod = t.insertNode(key, nod, pos.matched)
	}

	t.insertItem(value, nod)
	return &Iterator[T]{trie: t, node: nod}, nil
}
