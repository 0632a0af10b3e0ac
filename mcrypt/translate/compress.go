package translate

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// CompressionLevel controls the speed/ratio tradeoff of the LZ4 stage.
type CompressionLevel int

const (
	CompressionFast    CompressionLevel = iota // Fastest, lower ratio
	CompressionDefault                         // Balanced
	CompressionBest                            // Best ratio, slower
)

// NewCompressor wraps w in an LZ4 frame writer. Used to compress plaintext
// before it enters the keystream; the caller must Close it to flush the
// final frame before closing w.
func NewCompressor(w io.Writer, level CompressionLevel) *lz4.Writer {
	zw := lz4.NewWriter(w)
	switch level {
	case CompressionFast:
		_ = zw.Apply(lz4.CompressionLevelOption(lz4.Fast))
	case CompressionBest:
		_ = zw.Apply(lz4.CompressionLevelOption(lz4.Level9))
	default:
		_ = zw.Apply(lz4.CompressionLevelOption(lz4.Level4))
	}
	return zw
}

// NewDecompressor wraps r in an LZ4 frame reader, the inverse of
// NewCompressor.
func NewDecompressor(r io.Reader) *lz4.Reader {
	return lz4.NewReader(r)
}
