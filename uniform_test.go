package swrast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swrast/swrast/internal/rerr"
)

func TestUniformBufferWriteReadAndTruncation(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	h := ctx.ReserveUniformBuffer()
	require.NoError(t, ctx.WriteUniformBuffer(h, 0, []byte{1, 2, 3, 4}))
	data, ok := ctx.UniformBufferBytes(h)
	require.True(t, ok)
	require.Len(t, data, uniformBufferSize)
	require.Equal(t, []byte{1, 2, 3, 4}, data[:4])

	// a write past the arena is silently truncated rather than panicking.
	require.NoError(t, ctx.WriteUniformBuffer(h, uniformBufferSize-2, []byte{9, 9, 9, 9}))
	require.Equal(t, byte(9), data[uniformBufferSize-2])
	require.Equal(t, byte(9), data[uniformBufferSize-1])

	ctx.DestroyUniformBuffer(h)
	_, ok = ctx.UniformBufferBytes(h)
	require.False(t, ok)
}

func TestWriteUniformBufferRejectsInvalidHandle(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	require.ErrorIs(t, ctx.WriteUniformBuffer(UniformBufferHandle(99), 0, []byte{1}), rerr.ErrInvalidHandle)
}
