// Package translate streams data through a keystream generator.
//
// Key pieces:
//   - Translator: chunked io.Reader -> io.Writer translation with pooled
//     buffers, translating each chunk in place
//   - HexWriter: textual output sink that renders non-printable bytes as two
//     lowercase hex digits
//   - LZ4 compressor/decompressor wrappers for compress-then-encrypt
//     pipelines
package translate
