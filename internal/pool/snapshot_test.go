package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSnapshot(t *testing.T) {
	record := bytes.Repeat([]byte{0xFF}, 256)
	record[44] = 2

	snapshot, release := GetSnapshot(record)
	require.Equal(t, record, snapshot)

	record[44] = 3
	require.Equal(t, byte(2), snapshot[44], "snapshot must not alias the source")
	release()
}

func TestGetSnapshot_Reuse(t *testing.T) {
	small, release := GetSnapshot([]byte{1, 2, 3})
	require.Equal(t, []byte{1, 2, 3}, small)
	release()

	large := bytes.Repeat([]byte{7}, 512)
	snapshot, release := GetSnapshot(large)
	defer release()
	require.Len(t, snapshot, 512)
	require.Equal(t, large, snapshot)

	empty, releaseEmpty := GetSnapshot(nil)
	defer releaseEmpty()
	require.Empty(t, empty)
}

func BenchmarkGetSnapshot(b *testing.B) {
	record := bytes.Repeat([]byte{0xFF}, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, release := GetSnapshot(record)
		release()
	}
}
