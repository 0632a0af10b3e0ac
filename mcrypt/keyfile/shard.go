package keyfile

import (
	"errors"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrInvalidShardConfig = errors.New("keyfile: invalid data/parity shard configuration")
	ErrShardsLost         = errors.New("keyfile: too many shards lost, key unrecoverable")
)

// SplitShards encodes a key into dataShards+parityShards Reed-Solomon shards
// for backup across separate storage locations. Any parityShards of them may
// later be lost and the key is still recoverable with JoinShards.
func SplitShards(key uint64, dataShards, parityShards int) ([][]byte, error) {
	if dataShards <= 0 || parityShards <= 0 || dataShards > Size {
		return nil, ErrInvalidShardConfig
	}
	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return nil, ErrInvalidShardConfig
	}

	b := Encode(key)
	shards, err := enc.Split(b[:])
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(shards); err != nil {
		return nil, err
	}
	return shards, nil
}

// JoinShards reconstructs a key from shards produced by SplitShards with the
// same configuration. Missing shards must be nil entries; up to parityShards
// of them may be missing.
func JoinShards(shards [][]byte, dataShards, parityShards int) (uint64, error) {
	if dataShards <= 0 || parityShards <= 0 || len(shards) != dataShards+parityShards {
		return 0, ErrInvalidShardConfig
	}
	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return 0, ErrInvalidShardConfig
	}

	if err := enc.Reconstruct(shards); err != nil {
		if errors.Is(err, reedsolomon.ErrTooFewShards) {
			return 0, ErrShardsLost
		}
		return 0, err
	}

	joined := make([]byte, 0, Size)
	for i := 0; i < dataShards && len(joined) < Size; i++ {
		remaining := Size - len(joined)
		if remaining >= len(shards[i]) {
			joined = append(joined, shards[i]...)
		} else {
			joined = append(joined, shards[i][:remaining]...)
		}
	}
	if len(joined) != Size {
		return 0, ErrShardsLost
	}
	var b [Size]byte
	copy(b[:], joined)
	return Decode(b), nil
}
