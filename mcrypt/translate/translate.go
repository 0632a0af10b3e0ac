package translate

import (
	"io"
	"sync"

	"github.com/morgil/mcrypt/mcrypt/keystream"
)

// DefaultChunkSize is the translation buffer size used when none is given.
const DefaultChunkSize = 4096

// Translator streams data through a keystream generator in fixed-size
// chunks. It owns neither the generator nor the endpoints: the caller
// constructs and closes all three. Like the generator itself, a Translator
// is not safe for concurrent use.
type Translator struct {
	gen       *keystream.Generator
	chunkSize int
	pool      sync.Pool
}

// New returns a Translator reading and writing in chunkSize-byte chunks.
// chunkSize <= 0 selects DefaultChunkSize.
func New(g *keystream.Generator, chunkSize int) *Translator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	t := &Translator{gen: g, chunkSize: chunkSize}
	t.pool.New = func() interface{} {
		buf := make([]byte, chunkSize)
		return &buf
	}
	return t
}

// ChunkSize returns the configured chunk size.
func (t *Translator) ChunkSize() int { return t.chunkSize }

// Translate XORs src with the keystream into dst. dst and src may alias.
func (t *Translator) Translate(dst, src []byte) {
	t.gen.XORKeyStream(dst, src)
}

// Copy streams src through the keystream into dst until EOF, one chunk at a
// time, and returns the number of bytes written. Each chunk is translated in
// place before being written, so the keystream is consumed strictly in input
// order.
func (t *Translator) Copy(dst io.Writer, src io.Reader) (int64, error) {
	bufp := t.pool.Get().(*[]byte)
	defer t.pool.Put(bufp)
	buf := *bufp

	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			t.gen.XORKeyStream(buf[:n], buf[:n])
			wn, werr := dst.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
