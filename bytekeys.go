package trie

// IdentityKey is the degenerate key accessor for a trie whose stored value
// is itself the key: T = []byte. It has no content beyond forwarding; it
// exists only so callers of NewBytesTrie don't have to write it themselves.
func IdentityKey(v []byte) []byte { return v }

// NewBytesTrie constructs a Trie whose values are their own keys.
func NewBytesTrie(slobby bool) *Trie[[]byte] {
	return New(IdentityKey, slobby)
}
