package keyfile

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// deriveInfo binds derived keys to this use so the same passphrase fed to
// another HKDF consumer yields unrelated output.
const deriveInfo = "mcrypt keyfile v1"

// FromPassphrase derives a key from a passphrase using HKDF-SHA256. salt may
// be nil; supplying one makes equal passphrases yield distinct keys.
func FromPassphrase(passphrase string, salt []byte) (uint64, error) {
	hk := hkdf.New(sha256.New, []byte(passphrase), salt, []byte(deriveInfo))
	var b [Size]byte
	if _, err := io.ReadFull(hk, b[:]); err != nil {
		return 0, fmt.Errorf("keyfile: deriving key: %w", err)
	}
	return Decode(b), nil
}
