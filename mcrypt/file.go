package mcrypt

import (
	"crypto/cipher"
	"fmt"
	"io"
	"os"

	"github.com/morgil/mcrypt/mcrypt/keystream"
	"github.com/morgil/mcrypt/mcrypt/translate"
)

// StdoutPath selects textual stdout output: translated bytes are rendered
// through a translate.HexWriter instead of being written raw.
const StdoutPath = "-"

// Options configure TranslateFile. The zero value translates raw bytes in
// DefaultChunkSize chunks.
type Options struct {
	// ChunkSize is the translation buffer size; <= 0 selects
	// translate.DefaultChunkSize.
	ChunkSize int

	// Compress runs plaintext through LZ4 before it enters the keystream.
	Compress bool

	// Decompress runs translated output through LZ4 after it leaves the
	// keystream; the inverse of Compress.
	Decompress bool

	// Level selects the LZ4 compression level when Compress is set.
	Level translate.CompressionLevel
}

// TranslateFile streams the file at inPath through a fresh keystream
// generator for key and writes the result to outPath. Passing StdoutPath as
// outPath renders to standard output with non-printable bytes as two
// lowercase hex digits. The generator is wiped before TranslateFile returns.
//
// Encryption and decryption are the same operation; Compress and Decompress
// pick which side of a compress-then-encrypt pipeline this call is.
func TranslateFile(key uint64, inPath, outPath string, opts Options) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("mcrypt: %w", err)
	}
	defer in.Close()

	var dst io.Writer
	var outFile *os.File
	if outPath == StdoutPath {
		dst = translate.NewHexWriter(os.Stdout)
	} else {
		outFile, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("mcrypt: %w", err)
		}
		dst = outFile
	}

	g := keystream.New(key)
	defer g.Close()

	err = run(dst, in, g, opts)

	if outFile != nil {
		if cerr := outFile.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("mcrypt: %w", cerr)
		}
	}
	return err
}

func run(dst io.Writer, src io.Reader, g *keystream.Generator, opts Options) error {
	switch {
	case opts.Compress:
		// Plaintext -> LZ4 -> keystream -> dst, all streaming: the
		// generator is a cipher.Stream, so the stdlib StreamWriter sits
		// between the compressor and the sink.
		zw := translate.NewCompressor(cipher.StreamWriter{S: g, W: dst}, opts.Level)
		if _, err := io.Copy(zw, src); err != nil {
			return fmt.Errorf("mcrypt: compressing: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("mcrypt: compressing: %w", err)
		}
		return nil

	case opts.Decompress:
		// src -> keystream -> LZ4 -> dst.
		zr := translate.NewDecompressor(cipher.StreamReader{S: g, R: src})
		if _, err := io.Copy(dst, zr); err != nil {
			return fmt.Errorf("mcrypt: decompressing: %w", err)
		}
		return nil

	default:
		if _, err := translate.New(g, opts.ChunkSize).Copy(dst, src); err != nil {
			return fmt.Errorf("mcrypt: translating: %w", err)
		}
		return nil
	}
}
