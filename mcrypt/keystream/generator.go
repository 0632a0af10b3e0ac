package keystream

import "crypto/cipher"

const (
	// KeySize is the number of key bytes consumed by the key schedule.
	KeySize = 8

	// primeCount is the number of initial keystream bytes discarded at
	// construction. The early PRGA output is measurably biased; no byte is
	// handed to a caller before this many have been thrown away.
	primeCount = 1024
)

// Generator produces a pseudorandom keystream from a 64-bit key and XORs it
// with caller data. It implements cipher.Stream.
//
// A Generator is exclusively owned by its creator: the PRGA mutates the
// permutation table and both indices on every output byte, so concurrent use
// from multiple goroutines requires external locking.
type Generator struct {
	s      [256]byte
	i, j   uint8
	key    [KeySize]byte
	closed bool
}

var _ cipher.Stream = (*Generator)(nil)

// New returns a keyed, primed generator ready for translation. The key is
// decomposed into eight bytes little-endian (least-significant byte first);
// every key value, including zero, is valid. New never fails.
func New(key uint64) *Generator {
	g := &Generator{}
	for k := 0; k < KeySize; k++ {
		g.key[k] = byte(key >> (8 * k))
	}
	g.schedule()
	g.prime()
	return g
}

// schedule seeds the permutation table from the key bytes: identity
// permutation, then one forward swap pass driven by the key.
func (g *Generator) schedule() {
	for v := 0; v < 256; v++ {
		g.s[v] = byte(v)
	}
	var j uint8
	for i := 0; i < 256; i++ {
		j += g.s[i] + g.key[i%KeySize]
		g.s[i], g.s[j] = g.s[j], g.s[i]
	}
	g.i, g.j = 0, 0
}

// nextByte advances the PRGA one step and returns the output byte. The
// uint8 indices make the mod-256 wraparound implicit.
func (g *Generator) nextByte() byte {
	g.i++
	g.j += g.s[g.i]
	g.s[g.i], g.s[g.j] = g.s[g.j], g.s[g.i]
	return g.s[g.s[g.i]+g.s[g.j]]
}

func (g *Generator) prime() {
	for t := 0; t < primeCount; t++ {
		g.nextByte()
	}
}

// XORKeyStream sets dst[t] = src[t] XOR the next keystream byte, for each t
// in order. dst and src may be the same slice; each position is read before
// it is written. A zero-length src leaves the generator state untouched.
//
// The keystream is strictly sequential: one call of length N consumes the
// same bytes as N calls of length 1. Panics if dst is shorter than src or if
// the generator has been closed; both are caller contract violations.
func (g *Generator) XORKeyStream(dst, src []byte) {
	if g.closed {
		panic("keystream: use of closed Generator")
	}
	if len(dst) < len(src) {
		panic("keystream: output buffer smaller than input")
	}
	for t, b := range src {
		dst[t] = b ^ g.nextByte()
	}
}

// Read fills p with raw keystream bytes. It always returns len(p), nil,
// satisfying io.Reader for callers that want the stream without data to mix
// in. Panics if the generator has been closed.
func (g *Generator) Read(p []byte) (int, error) {
	if g.closed {
		panic("keystream: use of closed Generator")
	}
	for t := range p {
		p[t] = g.nextByte()
	}
	return len(p), nil
}

// Close overwrites the permutation table, both indices, and the stored key
// bytes with zero, then marks the generator unusable. Wiping is a security
// requirement of the lifecycle, not cleanup hygiene. Close is a no-op on a
// nil or already-closed generator; any other use after Close panics.
func (g *Generator) Close() {
	if g == nil || g.closed {
		return
	}
	for v := range g.s {
		g.s[v] = 0
	}
	for k := range g.key {
		g.key[k] = 0
	}
	g.i, g.j = 0, 0
	g.closed = true
}
