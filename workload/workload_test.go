package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(128, 42)
	b := Generate(128, 42)
	require.Len(t, a, 128)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Generate(128, 43))
}

func TestSortCopies(t *testing.T) {
	data := []int{3, 1, 2}
	sorted := Sort(data)
	assert.Equal(t, []int{1, 2, 3}, sorted)
	assert.Equal(t, []int{3, 1, 2}, data)
	assert.True(t, slices.IsSorted(Sort(Generate(1000, 1))))
}

func TestChecksum(t *testing.T) {
	data := Generate(64, 7)
	assert.Equal(t, Checksum(data), Checksum(slices.Clone(data)))
	assert.NotEqual(t, Checksum(data), Checksum(Sort(data)))
	assert.NotEqual(t, [32]byte{}, Checksum(nil))
}

func BenchmarkSort(b *testing.B) {
	data := Generate(4096, 1)
	for i := 0; i < b.N; i++ {
		Sort(data)
	}
}
