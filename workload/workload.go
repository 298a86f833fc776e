package workload

// Small deterministic CPU-bound steps which give the demo command something
// worth timing.

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"

	"golang.org/x/exp/slices"
)

// Generate returns size pseudo-random integers from the given seed.
func Generate(size int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := range data {
		data[i] = rng.Int()
	}
	return data
}

// Sort returns a sorted copy and leaves the input untouched.
func Sort(data []int) []int {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return sorted
}

// Checksum hashes the integers in order with SHA-256.
func Checksum(data []int) [32]byte {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
