package keystream

import (
	"bytes"
	"testing"
)

func checkPermutation(t *testing.T, g *Generator) {
	t.Helper()
	var seen [256]bool
	for _, v := range g.s {
		if seen[v] {
			t.Fatalf("permutation table holds %d twice", v)
		}
		seen[v] = true
	}
}

func TestPermutationInvariant(t *testing.T) {
	g := New(0x1234567890abcdef)
	checkPermutation(t, g)

	buf := make([]byte, 1000)
	for n := 0; n < 5; n++ {
		g.XORKeyStream(buf, buf)
		checkPermutation(t, g)
	}
}

func TestKnownVectorZeroKey(t *testing.T) {
	g := New(0)
	got := make([]byte, 16)
	if _, err := g.Read(got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []byte{
		0x9a, 0x88, 0x98, 0xeb, 0xed, 0x25, 0x89, 0x53,
		0x36, 0xae, 0x11, 0x9a, 0xe5, 0x03, 0xca, 0xd6,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("keystream for key 0 = %x, want %x", got, want)
	}
}

func TestKnownVectorAscii(t *testing.T) {
	const key uint64 = 0x0102030405060708

	g := New(key)
	ct := make([]byte, 4)
	g.XORKeyStream(ct, []byte("AAAA"))
	g.Close()

	want := []byte{0x4b, 0x6a, 0x09, 0x75}
	if !bytes.Equal(ct, want) {
		t.Fatalf("ciphertext = %x, want %x", ct, want)
	}

	g2 := New(key)
	pt := make([]byte, 4)
	g2.XORKeyStream(pt, ct)
	g2.Close()

	if string(pt) != "AAAA" {
		t.Fatalf("round trip = %q, want %q", pt, "AAAA")
	}
}

func TestDeterminism(t *testing.T) {
	a := New(0xdeadbeefcafef00d)
	b := New(0xdeadbeefcafef00d)

	out1 := make([]byte, 4096)
	out2 := make([]byte, 4096)
	a.Read(out1)
	b.Read(out2)

	if !bytes.Equal(out1, out2) {
		t.Fatalf("generators with the same key diverged")
	}
	if out1[0] != 0xce || out1[7] != 0x3e {
		t.Fatalf("unexpected leading bytes %x", out1[:8])
	}
}

func TestSelfInverse(t *testing.T) {
	const key = 42
	data := make([]byte, 999)
	for i := range data {
		data[i] = byte(i * 7)
	}

	enc := New(key)
	ct := make([]byte, len(data))
	enc.XORKeyStream(ct, data)
	enc.Close()

	if bytes.Equal(ct, data) {
		t.Fatalf("ciphertext equals plaintext")
	}

	dec := New(key)
	pt := make([]byte, len(ct))
	dec.XORKeyStream(pt, ct)
	dec.Close()

	if !bytes.Equal(pt, data) {
		t.Fatalf("decryption did not recover the plaintext")
	}
}

func TestChunkingInvariance(t *testing.T) {
	src := make([]byte, 1024)
	for i := range src {
		src[i] = byte(i)
	}

	whole := New(7)
	one := make([]byte, len(src))
	whole.XORKeyStream(one, src)

	split := New(7)
	parts := make([]byte, len(src))
	off := 0
	for _, n := range []int{1, 2, 3, 100, 400, 518} {
		split.XORKeyStream(parts[off:off+n], src[off:off+n])
		off += n
	}
	if off != len(src) {
		t.Fatalf("split sizes sum to %d, want %d", off, len(src))
	}

	if !bytes.Equal(one, parts) {
		t.Fatalf("chunked translation differs from single-call translation")
	}
}

func TestZeroLengthNoOp(t *testing.T) {
	a := New(99)
	b := New(99)

	a.XORKeyStream(nil, nil)
	a.XORKeyStream([]byte{}, []byte{})

	na := make([]byte, 8)
	nb := make([]byte, 8)
	a.Read(na)
	b.Read(nb)

	if !bytes.Equal(na, nb) {
		t.Fatalf("zero-length translate advanced the keystream")
	}
}

func TestInPlaceAliasing(t *testing.T) {
	buf := []byte("the same storage for input and output")
	want := make([]byte, len(buf))

	g := New(5)
	g.XORKeyStream(want, buf)

	g2 := New(5)
	g2.XORKeyStream(buf, buf)

	if !bytes.Equal(buf, want) {
		t.Fatalf("in-place translation differs from out-of-place")
	}
}

func TestAvalanche(t *testing.T) {
	a := New(0)
	b := New(1) // single-bit key difference

	outA := make([]byte, 256)
	outB := make([]byte, 256)
	a.Read(outA)
	b.Read(outB)

	diff := 0
	for i := range outA {
		if outA[i] != outB[i] {
			diff++
		}
	}
	if diff < 128 {
		t.Fatalf("only %d/256 bytes differ between adjacent keys", diff)
	}
}

func TestCloseWipes(t *testing.T) {
	g := New(0x0102030405060708)
	g.Close()

	for _, v := range g.s {
		if v != 0 {
			t.Fatalf("permutation table not wiped")
		}
	}
	for _, v := range g.key {
		if v != 0 {
			t.Fatalf("key bytes not wiped")
		}
	}
	if g.i != 0 || g.j != 0 {
		t.Fatalf("indices not wiped")
	}

	// Idempotent, and safe on a nil generator.
	g.Close()
	var nilGen *Generator
	nilGen.Close()
}

func TestUseAfterClosePanics(t *testing.T) {
	g := New(1)
	g.Close()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on use after Close")
		}
	}()
	g.XORKeyStream(make([]byte, 1), make([]byte, 1))
}

func BenchmarkXORKeyStream(b *testing.B) {
	g := New(0xdeadbeefcafef00d)
	buf := make([]byte, 64*1024)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.XORKeyStream(buf, buf)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(uint64(i)).Close()
	}
}
