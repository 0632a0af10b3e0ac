// Command mcrypt translates files through an RC4-style keystream cipher.
//
// Usage:
//
//	mcrypt [flags] key-file in-file [ out-file | - ]
//
// The key file holds the 64-bit key as eight little-endian bytes. Passing
// '-' as the output writes to stdout with non-printable bytes rendered as
// two lowercase hex digits. Encryption and decryption are the same
// operation.
package main

import (
	"fmt"
	"os"

	"github.com/morgil/mcrypt/mcrypt"
	"github.com/morgil/mcrypt/mcrypt/keyfile"
	"github.com/morgil/mcrypt/mcrypt/translate"

	"github.com/spf13/pflag"
)

var param struct {
	genkey     bool
	passphrase string
	salt       string
	compress   bool
	decompress bool
	level      string
	chunkSize  int
}

func init() {
	pflag.BoolVarP(&param.genkey, "genkey", "g", false, "Generate a random key, write it to key-file, and exit")
	pflag.StringVarP(&param.passphrase, "passphrase", "p", "", "Derive the key from a passphrase instead of reading key-file")
	pflag.StringVar(&param.salt, "salt", "", "Salt for passphrase derivation")
	pflag.BoolVarP(&param.compress, "compress", "z", false, "LZ4-compress plaintext before encrypting")
	pflag.BoolVarP(&param.decompress, "decompress", "u", false, "LZ4-decompress output after decrypting")
	pflag.StringVar(&param.level, "level", "default", "Compression level: fast, default, or best")
	pflag.IntVarP(&param.chunkSize, "chunk-size", "c", translate.DefaultChunkSize, "Translation chunk size in bytes")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mcrypt [flags] key-file in-file [ out-file | - ]\n")
	fmt.Fprintf(os.Stderr, "       mcrypt --genkey key-file\n")
	fmt.Fprintf(os.Stderr, "       mcrypt --passphrase PHRASE in-file [ out-file | - ]\n\n")
	pflag.PrintDefaults()
}

func compressionLevel(name string) (translate.CompressionLevel, error) {
	switch name {
	case "fast":
		return translate.CompressionFast, nil
	case "default":
		return translate.CompressionDefault, nil
	case "best":
		return translate.CompressionBest, nil
	default:
		return 0, fmt.Errorf("unknown compression level %q", name)
	}
}

func run(args []string) error {
	if param.genkey {
		if len(args) != 1 {
			return errUsage
		}
		key, err := keyfile.Generate()
		if err != nil {
			return err
		}
		return keyfile.Write(args[0], key)
	}

	if param.compress && param.decompress {
		return fmt.Errorf("--compress and --decompress are mutually exclusive")
	}
	level, err := compressionLevel(param.level)
	if err != nil {
		return err
	}

	var key uint64
	if param.passphrase != "" {
		if len(args) != 2 {
			return errUsage
		}
		key, err = keyfile.FromPassphrase(param.passphrase, []byte(param.salt))
		if err != nil {
			return err
		}
	} else {
		if len(args) != 3 {
			return errUsage
		}
		key, err = keyfile.Read(args[0])
		if err != nil {
			return err
		}
		args = args[1:]
	}

	return mcrypt.TranslateFile(key, args[0], args[1], mcrypt.Options{
		ChunkSize:  param.chunkSize,
		Compress:   param.compress,
		Decompress: param.decompress,
		Level:      level,
	})
}

var errUsage = fmt.Errorf("wrong number of arguments")

func main() {
	pflag.Usage = usage
	pflag.Parse()

	if err := run(pflag.Args()); err != nil {
		if err == errUsage {
			usage()
		} else {
			fmt.Fprintf(os.Stderr, "mcrypt: %v\n", err)
		}
		os.Exit(1)
	}
}
