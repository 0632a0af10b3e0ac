// Package keystream implements an RC4-style pseudorandom keystream generator
// keyed by a 64-bit value.
//
// Design notes:
//   - 256-entry permutation table with two running indices (classic RC4 PRGA)
//   - Key schedule is a single forward pass over the eight key bytes
//   - The first 1024 output bytes are discarded at construction time to skip
//     the statistically biased early keystream
//   - Close wipes all key-dependent state before the generator is released
//
// This is a toy cipher. Like RC4 itself it is cryptographically broken and
// must not be used where real confidentiality is required.
package keystream
