package common

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/sha3"
)

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// Keccak256 computes the Keccak-256 hash of the input data.
// Hasher instances are pooled to avoid per-call allocations.
func Keccak256(data []byte) [32]byte {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res [32]byte
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

// StringHasher hashes string keys using Keccak-256, folding the
// first eight bytes of the digest into the bucket address.
type StringHasher struct{}

func (h StringHasher) Hash(key *string) uint64 {
	hash := Keccak256([]byte(*key))
	return binary.BigEndian.Uint64(hash[0:8])
}

// BytesHasher hashes byte-slice keys using Keccak-256.
type BytesHasher struct{}

func (h BytesHasher) Hash(key *[]byte) uint64 {
	hash := Keccak256(*key)
	return binary.BigEndian.Uint64(hash[0:8])
}
