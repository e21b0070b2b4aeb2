package permkit

// Permission is an arbitrary-precision permission bitmask. The zero value is
// the empty mask.
//
// Permission is a value type: operations return new values and never mutate
// their operands, so values can be shared freely. Width grows with the
// highest set bit; there is no fixed-word ceiling.
type Permission struct {
	// words holds the mask little-endian, 64 bits per word, with no
	// trailing zero words. Normalization makes Equal a plain slice compare.
	words []uint64
}

// bitValue returns the Permission with only the given bit set.
func bitValue(bit int) Permission {
	words := make([]uint64, bit/64+1)
	words[bit/64] = 1 << (bit % 64)
	return Permission{words: words}
}

// Test reports whether the given bit is set. Out-of-range bits read as unset.
func (p Permission) Test(bit int) bool {
	if bit < 0 || bit/64 >= len(p.words) {
		return false
	}
	return p.words[bit/64]&(1<<(bit%64)) != 0
}

// Or returns the union of p and q.
func (p Permission) Or(q Permission) Permission {
	a, b := p.words, q.words
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a))
	copy(out, a)
	for i, w := range b {
		out[i] |= w
	}
	return Permission{words: out}
}

// And returns the intersection of p and q.
func (p Permission) And(q Permission) Permission {
	n := min(len(p.words), len(q.words))
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = p.words[i] & q.words[i]
	}
	return Permission{words: trim(out)}
}

// AndNot returns p with every bit of q cleared.
func (p Permission) AndNot(q Permission) Permission {
	out := make([]uint64, len(p.words))
	copy(out, p.words)
	for i := 0; i < min(len(out), len(q.words)); i++ {
		out[i] &^= q.words[i]
	}
	return Permission{words: trim(out)}
}

// Xor returns p with every bit of q flipped.
func (p Permission) Xor(q Permission) Permission {
	a, b := p.words, q.words
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a))
	copy(out, a)
	for i, w := range b {
		out[i] ^= w
	}
	return Permission{words: trim(out)}
}

// Equal reports whether p and q hold exactly the same bits.
func (p Permission) Equal(q Permission) bool {
	if len(p.words) != len(q.words) {
		return false
	}
	for i, w := range p.words {
		if q.words[i] != w {
			return false
		}
	}
	return true
}

// IsZero reports whether no bit is set.
func (p Permission) IsZero() bool {
	return len(p.words) == 0
}

func trim(words []uint64) []uint64 {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return words[:n]
}
