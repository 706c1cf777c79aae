package lmshard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/lightmerkle"
	"github.com/klauspost/reedsolomon"
)

// PrepareConfig is the config for [Prepare].
type PrepareConfig[T lightmerkle.Digest[T]] struct {
	Log *slog.Logger

	// Desired maximum size of each shard, in bytes.
	// The final data shard is zero-padded up to the common shard size.
	ShardSize int

	// ParityRatio indicates the desired ratio of
	// parity shards to data shards.
	// For example, ParityRatio=0.25 means there will be
	// one parity shard for every four data shards.
	// The parity count is rounded down,
	// but there is always at least one parity shard.
	ParityRatio float32

	// How to hash shards into the Merkle tree.
	// Consumers need an equivalent hasher to verify shard proofs.
	Hasher lightmerkle.Hasher[T]
}

// Prepared is the value returned by [Prepare].
type Prepared[T lightmerkle.Digest[T]] struct {
	// The number of data and parity shards.
	NumData, NumParity int

	// The length of the original data,
	// required to strip padding during reconstruction.
	DataSize int

	// Root commits to every shard.
	Root T

	// The data shards followed by the parity shards.
	Shards [][]byte

	// Proofs is aligned one-to-one with Shards.
	Proofs []lightmerkle.Proof[T]
}

// Shard returns the shard at index i paired with its proof.
func (p Prepared[T]) Shard(i int) Shard[T] {
	return Shard[T]{Data: p.Shards[i], Proof: p.Proofs[i]}
}

// ReconstructConfig returns the config a consumer needs
// to reassemble the data from p, using hasher h for verification.
func (p Prepared[T]) ReconstructConfig(log *slog.Logger, h lightmerkle.Hasher[T]) ReconstructConfig[T] {
	return ReconstructConfig[T]{
		Log:       log,
		Hasher:    h,
		Root:      p.Root,
		NumData:   p.NumData,
		NumParity: p.NumParity,
		DataSize:  p.DataSize,
	}
}

// Prepare splits data into shards, adds parity shards,
// and builds the Merkle tree over all of them.
//
// The input slice must not be modified after calling Prepare,
// as the data shards may reference it.
func Prepare[T lightmerkle.Digest[T]](data []byte, cfg PrepareConfig[T]) (Prepared[T], error) {
	if cfg.Log == nil {
		panic(fmt.Errorf("BUG: PrepareConfig.Log must not be nil"))
	}
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: PrepareConfig.Hasher must not be nil"))
	}

	if len(data) == 0 {
		return Prepared[T]{}, errors.New("cannot shard empty data")
	}
	if cfg.ShardSize <= 0 {
		return Prepared[T]{}, fmt.Errorf(
			"ShardSize must be positive (got %d)", cfg.ShardSize,
		)
	}
	if cfg.ParityRatio < 0 {
		return Prepared[T]{}, fmt.Errorf(
			"ParityRatio must be non-negative (got %g)", cfg.ParityRatio,
		)
	}

	nData := len(data) / cfg.ShardSize
	if len(data)%cfg.ShardSize > 0 {
		nData++
	}
	nParity := max(1, int(cfg.ParityRatio*float32(nData)))

	enc, err := reedsolomon.New(
		nData, nParity,
		reedsolomon.WithAutoGoroutines(cfg.ShardSize),
	)
	if err != nil {
		return Prepared[T]{}, fmt.Errorf(
			"failed to build Reed-Solomon encoder for %d data and %d parity shards: %w",
			nData, nParity, err,
		)
	}

	shards, err := enc.Split(data)
	if err != nil {
		return Prepared[T]{}, fmt.Errorf("failed to split data into shards: %w", err)
	}
	if err := enc.Encode(shards); err != nil {
		return Prepared[T]{}, fmt.Errorf("failed to erasure-code data: %w", err)
	}

	// There is always at least one data and one parity shard,
	// so the tree always has its minimum two leaves.
	tree, err := lightmerkle.Build(shards, cfg.Hasher)
	if err != nil {
		return Prepared[T]{}, fmt.Errorf("failed to build shard tree: %w", err)
	}

	proofs := make([]lightmerkle.Proof[T], len(shards))
	for i := range shards {
		proofs[i], err = tree.Prove(i)
		if err != nil {
			panic(fmt.Errorf("BUG: failed to prove shard %d of %d: %w", i, len(shards), err))
		}
	}

	cfg.Log.Debug(
		"Prepared shards",
		"data_size", len(data),
		"num_data", nData,
		"num_parity", nParity,
		"shard_size", len(shards[0]),
		"tree_height", tree.Height(),
	)

	return Prepared[T]{
		NumData:   nData,
		NumParity: nParity,
		DataSize:  len(data),

		Root: tree.Root(),

		Shards: shards,
		Proofs: proofs,
	}, nil
}
