package worker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crunch/Common/codec"
	pb "crunch/crunch"
)

func TestMultiplyByRank(t *testing.T) {
	require.Equal(t, int32(0), MultiplyByRank(0, 5))
	require.Equal(t, int32(15), MultiplyByRank(3, 5))
	require.Equal(t, int32(-6), MultiplyByRank(-2, 3))
}

func TestExecutorProcess(t *testing.T) {
	exec, err := NewExecutor(4, MultiplyByRank)
	require.NoError(t, err)
	defer exec.Release()

	elems := make([]int32, 1000)
	for i := range elems {
		elems[i] = int32(i)
	}
	in, err := codec.Pack(7, elems)
	require.NoError(t, err)

	out, err := exec.Process(in, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(7), out.GetChunkId(), "the result keeps the assignment's chunk id")

	got, err := codec.Unpack(out)
	require.NoError(t, err)
	require.Len(t, got, 1000)
	for i, v := range got {
		require.Equal(t, int32(i)*3, v, "element %d", i)
	}
}

func TestExecutorProcessSmallChunk(t *testing.T) {
	// Fewer elements than pool threads.
	exec, err := NewExecutor(8, MultiplyByRank)
	require.NoError(t, err)
	defer exec.Release()

	in, err := codec.Pack(0, []int32{1, 2, 3})
	require.NoError(t, err)

	out, err := exec.Process(in, 2)
	require.NoError(t, err)
	got, err := codec.Unpack(out)
	require.NoError(t, err)
	require.Equal(t, []int32{2, 4, 6}, got)
}

func TestExecutorProcessRejectsCorruptChunk(t *testing.T) {
	exec, err := NewExecutor(2, MultiplyByRank)
	require.NoError(t, err)
	defer exec.Release()

	_, err = exec.Process(&pb.WireChunk{
		ChunkId:              1,
		OriginalByteLength:   12,
		CompressedByteLength: 4,
		Payload:              []byte{1, 2, 3, 4},
	}, 1)
	require.Error(t, err)
}

func TestExecutorRejectsZeroThreads(t *testing.T) {
	_, err := NewExecutor(0, MultiplyByRank)
	require.Error(t, err)
}
