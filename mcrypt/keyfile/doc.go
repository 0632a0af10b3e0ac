// Package keyfile loads and stores the 8-byte binary key files consumed by
// the keystream generator.
//
// A key file holds the 64-bit key as exactly eight bytes, least-significant
// byte first. The package also provides random key generation, passphrase
// derivation via HKDF-SHA256, and Reed-Solomon sharding of a key for
// resilient offline backup.
package keyfile
