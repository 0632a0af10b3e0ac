package keyfile

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Size is the length of a key file in bytes.
const Size = 8

var ErrShortKeyFile = errors.New("keyfile: key file too short")

// Encode returns the little-endian byte representation of a key.
func Encode(key uint64) [Size]byte {
	var b [Size]byte
	binary.LittleEndian.PutUint64(b[:], key)
	return b
}

// Decode is the inverse of Encode.
func Decode(b [Size]byte) uint64 {
	return binary.LittleEndian.Uint64(b[:])
}

// Read loads a key from the first 8 bytes of the file at path. Extra
// trailing bytes are ignored.
func Read(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("keyfile: %w", err)
	}
	defer f.Close()

	var b [Size]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: %s", ErrShortKeyFile, path)
		}
		return 0, fmt.Errorf("keyfile: reading %s: %w", path, err)
	}
	return Decode(b), nil
}

// Write stores key at path as exactly 8 bytes, readable only by the owner.
func Write(path string, key uint64) error {
	b := Encode(key)
	if err := os.WriteFile(path, b[:], 0o600); err != nil {
		return fmt.Errorf("keyfile: %w", err)
	}
	return nil
}

// Generate returns a key drawn from the operating system's CSPRNG.
func Generate() (uint64, error) {
	var b [Size]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("keyfile: generating key: %w", err)
	}
	return Decode(b), nil
}
