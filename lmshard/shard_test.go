package lmshard_test

import (
	"testing"

	"github.com/gordian-engine/lightmerkle"
	"github.com/gordian-engine/lightmerkle/internal/ltest"
	"github.com/gordian-engine/lightmerkle/lmsha256"
	"github.com/gordian-engine/lightmerkle/lmshard"
	"github.com/gordian-engine/lightmerkle/lmverify"
	"github.com/stretchr/testify/require"
)

func prepare(t *testing.T, data []byte, shardSize int, ratio float32) lmshard.Prepared[lightmerkle.Hash32] {
	t.Helper()

	p, err := lmshard.Prepare(data, lmshard.PrepareConfig[lightmerkle.Hash32]{
		Log:         ltest.NewLogger(t),
		ShardSize:   shardSize,
		ParityRatio: ratio,
		Hasher:      lmsha256.New(),
	})
	require.NoError(t, err)
	return p
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	data := ltest.RandomDataForTest(t, 10*1024)
	p := prepare(t, data, 1024, 0.5)

	require.Equal(t, 10, p.NumData)
	require.Equal(t, 5, p.NumParity)
	require.Equal(t, len(data), p.DataSize)
	require.Len(t, p.Shards, 15)
	require.Len(t, p.Proofs, 15)

	h := lmsha256.New()
	for i := range p.Shards {
		require.Equal(t, i, p.Proofs[i].Index())
		require.NoError(t, lmverify.VerifyItem(h, p.Root, p.Shards[i], p.Proofs[i]))
	}
}

func TestPrepare_minimumParity(t *testing.T) {
	t.Parallel()

	// A single data shard still gets a parity shard,
	// so the tree has its minimum of two leaves.
	p := prepare(t, []byte("tiny"), 1024, 0)
	require.Equal(t, 1, p.NumData)
	require.Equal(t, 1, p.NumParity)
	require.Len(t, p.Proofs, 2)
}

func TestPrepare_invalidConfig(t *testing.T) {
	t.Parallel()

	log := ltest.NewLogger(t)

	_, err := lmshard.Prepare(nil, lmshard.PrepareConfig[lightmerkle.Hash32]{
		Log: log, ShardSize: 16, Hasher: lmsha256.New(),
	})
	require.Error(t, err)

	_, err = lmshard.Prepare([]byte("data"), lmshard.PrepareConfig[lightmerkle.Hash32]{
		Log: log, ShardSize: 0, Hasher: lmsha256.New(),
	})
	require.Error(t, err)

	_, err = lmshard.Prepare([]byte("data"), lmshard.PrepareConfig[lightmerkle.Hash32]{
		Log: log, ShardSize: 16, ParityRatio: -1, Hasher: lmsha256.New(),
	})
	require.Error(t, err)

	require.Panics(t, func() {
		_, _ = lmshard.Prepare([]byte("data"), lmshard.PrepareConfig[lightmerkle.Hash32]{
			ShardSize: 16, Hasher: lmsha256.New(),
		})
	})
}

func TestReconstruct_allShards(t *testing.T) {
	t.Parallel()

	data := ltest.RandomDataForTest(t, 5000)
	p := prepare(t, data, 512, 0.25)

	shards := make([]lmshard.Shard[lightmerkle.Hash32], len(p.Shards))
	for i := range shards {
		shards[i] = p.Shard(i)
	}

	got, err := lmshard.Reconstruct(shards, p.ReconstructConfig(ltest.NewLogger(t), lmsha256.New()))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestReconstruct_missingDataShards(t *testing.T) {
	t.Parallel()

	data := ltest.RandomDataForTest(t, 4000)
	p := prepare(t, data, 1000, 0.5)
	require.Equal(t, 4, p.NumData)
	require.Equal(t, 2, p.NumParity)

	// Drop two data shards and deliver the rest out of order.
	shards := []lmshard.Shard[lightmerkle.Hash32]{
		p.Shard(5), p.Shard(3), p.Shard(4), p.Shard(0),
	}

	got, err := lmshard.Reconstruct(shards, p.ReconstructConfig(ltest.NewLogger(t), lmsha256.New()))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestReconstruct_ignoresBadShards(t *testing.T) {
	t.Parallel()

	data := ltest.RandomDataForTest(t, 4000)
	p := prepare(t, data, 1000, 0.5)

	tampered := p.Shard(1)
	tampered.Data = append([]byte(nil), tampered.Data...)
	tampered.Data[0] ^= 0xff

	// Proof for shard 2 attached to shard 3's data.
	mislabeled := lmshard.Shard[lightmerkle.Hash32]{
		Data: p.Shards[3], Proof: p.Proofs[2],
	}

	shards := []lmshard.Shard[lightmerkle.Hash32]{
		tampered,
		mislabeled,
		p.Shard(0),
		p.Shard(0), // Duplicate.
		{Data: []byte("no proof")},
		p.Shard(3),
		p.Shard(4),
		p.Shard(5),
	}

	got, err := lmshard.Reconstruct(shards, p.ReconstructConfig(ltest.NewLogger(t), lmsha256.New()))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestReconstruct_notEnoughShards(t *testing.T) {
	t.Parallel()

	data := ltest.RandomDataForTest(t, 4000)
	p := prepare(t, data, 1000, 0.5)

	tampered := p.Shard(2)
	tampered.Data = make([]byte, len(tampered.Data))

	shards := []lmshard.Shard[lightmerkle.Hash32]{
		p.Shard(0), p.Shard(1), tampered,
	}

	_, err := lmshard.Reconstruct(shards, p.ReconstructConfig(ltest.NewLogger(t), lmsha256.New()))

	var nese *lmshard.NotEnoughShardsError
	require.ErrorAs(t, err, &nese)
	require.Equal(t, 2, nese.Have)
	require.Equal(t, 4, nese.Need)
}

func TestReconstruct_wrongRoot(t *testing.T) {
	t.Parallel()

	data := ltest.RandomDataForTest(t, 3000)
	p := prepare(t, data, 1000, 1)

	cfg := p.ReconstructConfig(ltest.NewLogger(t), lmsha256.New())
	cfg.Root = lightmerkle.Hash32{0xde, 0xad}

	shards := make([]lmshard.Shard[lightmerkle.Hash32], len(p.Shards))
	for i := range shards {
		shards[i] = p.Shard(i)
	}

	_, err := lmshard.Reconstruct(shards, cfg)

	var nese *lmshard.NotEnoughShardsError
	require.ErrorAs(t, err, &nese)
	require.Zero(t, nese.Have)
}
