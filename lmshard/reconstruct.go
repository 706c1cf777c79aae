package lmshard

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/lightmerkle"
	"github.com/gordian-engine/lightmerkle/lmverify"
	"github.com/klauspost/reedsolomon"
)

// Shard is one erasure-coded shard and its inclusion proof.
// The shard's index is recovered from the proof path.
type Shard[T lightmerkle.Digest[T]] struct {
	Data  []byte
	Proof lightmerkle.Proof[T]
}

// ReconstructConfig is the config for [Reconstruct].
// Every field except Log normally comes from [Prepared.ReconstructConfig]
// or from an equivalent header distributed alongside the shards.
type ReconstructConfig[T lightmerkle.Digest[T]] struct {
	Log *slog.Logger

	Hasher lightmerkle.Hasher[T]

	// Trusted root that every shard proof must verify against.
	Root T

	NumData, NumParity int

	DataSize int
}

// NotEnoughShardsError is returned from [Reconstruct]
// when too few shards survived verification.
type NotEnoughShardsError struct {
	Have, Need int
}

func (e *NotEnoughShardsError) Error() string {
	return fmt.Sprintf("not enough valid shards: have %d, need %d", e.Have, e.Need)
}

// Reconstruct verifies each shard against cfg.Root
// and reassembles the original data from the valid shards.
//
// Shards that fail verification, claim an index out of range,
// duplicate an already accepted index, or have the wrong size
// are logged and ignored.
func Reconstruct[T lightmerkle.Digest[T]](shards []Shard[T], cfg ReconstructConfig[T]) ([]byte, error) {
	if cfg.Log == nil {
		panic(fmt.Errorf("BUG: ReconstructConfig.Log must not be nil"))
	}
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: ReconstructConfig.Hasher must not be nil"))
	}

	total := cfg.NumData + cfg.NumParity
	enc, err := reedsolomon.New(cfg.NumData, cfg.NumParity)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to build Reed-Solomon decoder for %d data and %d parity shards: %w",
			cfg.NumData, cfg.NumParity, err,
		)
	}

	slots := make([][]byte, total)
	shardSize := -1
	have := 0
	for n, s := range shards {
		idx := s.Proof.Index()
		if s.Proof.Siblings() == 0 || idx >= total {
			cfg.Log.Warn("Ignoring shard with out of range proof", "position", n, "index", idx)
			continue
		}
		if slots[idx] != nil {
			cfg.Log.Warn("Ignoring duplicate shard", "position", n, "index", idx)
			continue
		}
		if shardSize >= 0 && len(s.Data) != shardSize {
			cfg.Log.Warn(
				"Ignoring shard with inconsistent size",
				"position", n, "index", idx, "size", len(s.Data), "want", shardSize,
			)
			continue
		}
		if err := lmverify.VerifyItem(cfg.Hasher, cfg.Root, s.Data, s.Proof); err != nil {
			cfg.Log.Warn("Ignoring shard that failed verification", "position", n, "index", idx, "err", err)
			continue
		}

		slots[idx] = s.Data
		shardSize = len(s.Data)
		have++
	}

	if have < cfg.NumData {
		return nil, &NotEnoughShardsError{Have: have, Need: cfg.NumData}
	}

	if err := enc.ReconstructData(slots); err != nil {
		return nil, fmt.Errorf("failed to reconstruct data shards: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(cfg.DataSize)
	if err := enc.Join(&buf, slots, cfg.DataSize); err != nil {
		return nil, fmt.Errorf("failed to join data shards: %w", err)
	}

	cfg.Log.Debug("Reconstructed data", "valid_shards", have, "data_size", cfg.DataSize)

	return buf.Bytes(), nil
}
