// Package seed implements deterministic parameter derivation for logo
// generation.
//
// A master seed is the tuple (brand name, algorithm, salt). Its SHA-256 hash
// fully determines a Parameters vector and a PRNG draw sequence, so the same
// tuple always reproduces the same logo byte for byte, across processes and
// restarts.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
)

// MasterSeed fully determines one generation attempt.
// It is immutable after Derive and consumed by exactly one algorithm run.
type MasterSeed struct {
	BrandName string
	Algorithm string
	Salt      string
	HashHex   string
	Params    Parameters
}

// Derive hashes brand|algorithm|salt and expands the digest into the full
// parameter vector.
func Derive(brandName, algorithm, salt string) *MasterSeed {
	sum := sha256.Sum256([]byte(brandName + "|" + algorithm + "|" + salt))
	hashHex := hex.EncodeToString(sum[:])
	return &MasterSeed{
		BrandName: brandName,
		Algorithm: algorithm,
		Salt:      salt,
		HashHex:   hashHex,
		Params:    deriveParams(expandPool(sum)),
	}
}

// expandPool stretches the 64 hex chars of a digest to 128 by hashing the
// digest bytes once more. The field table assigns each parameter a disjoint
// slice of this pool.
func expandPool(sum [32]byte) string {
	ext := sha256.Sum256(sum[:])
	return hex.EncodeToString(sum[:]) + hex.EncodeToString(ext[:])
}

// RNG returns a deterministic PRNG reseeded from the master-seed hash.
// Algorithms use it for unbounded extra draws (per-element jitter, variable
// counts) beyond the fixed parameter vector. Identical hash, identical draw
// sequence, forever.
func (s *MasterSeed) RNG() *rand.Rand {
	return NewRNG(s.HashHex)
}

// NewRNG builds a PCG source from the first sixteen bytes of a hex hash.
// A short or non-hex string seeds from whatever bytes decode, padded with
// zeros; callers passing real hashes never hit that path.
func NewRNG(hashHex string) *rand.Rand {
	var buf [16]byte
	b, _ := hex.DecodeString(hashHex)
	copy(buf[:], b)
	hi := binary.BigEndian.Uint64(buf[:8])
	lo := binary.BigEndian.Uint64(buf[8:])
	return rand.New(rand.NewPCG(hi, lo))
}
