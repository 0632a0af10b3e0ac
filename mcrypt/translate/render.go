package translate

import "io"

const hexDigits = "0123456789abcdef"

// HexWriter renders a byte stream as text: printable ASCII passes through
// unchanged and every other byte becomes two lowercase hex digits.
//
// Printability is a plain ASCII range test (0x20..0x7e), not a locale-aware
// classification, so rendered output is byte-identical on every platform.
type HexWriter struct {
	w io.Writer
}

// NewHexWriter returns a HexWriter forwarding rendered text to w.
func NewHexWriter(w io.Writer) *HexWriter {
	return &HexWriter{w: w}
}

// Write renders p and forwards it. The returned count is len(p) on success,
// per the io.Writer contract, even though the rendered text may be longer.
func (h *HexWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)*2)
	for _, b := range p {
		if b >= 0x20 && b <= 0x7e {
			out = append(out, b)
		} else {
			out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
		}
	}
	if _, err := h.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
