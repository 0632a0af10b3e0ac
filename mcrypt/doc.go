// Package mcrypt ties the keystream toolkit together: key files, the
// RC4-style keystream generator, and chunked file translation, plus an
// optional LZ4 stage for compress-then-encrypt pipelines.
//
// The heavy lifting lives in the subpackages (keystream, keyfile,
// translate); this package only provides the file-to-file convenience used
// by the mcrypt command.
package mcrypt
