// Package lmshard erasure-codes a blob into shards
// and commits to every shard with a [lightmerkle.Tree].
//
// A holder of the Merkle root can accept shards from untrusted sources,
// discard any shard whose proof does not verify,
// and rebuild the original blob from any NumData verified shards.
package lmshard
