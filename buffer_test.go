package swrast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swrast/swrast/internal/rerr"
)

func TestVertexBufferWriteRead(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	h, err := ctx.ReserveVertexBuffer(12)
	require.NoError(t, err)

	require.NoError(t, ctx.WriteVertexBuffer(h, 4, []byte{1, 2, 3, 4}))
	data, ok := ctx.VertexBufferBytes(h)
	require.True(t, ok)
	require.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 4, 0, 0, 0, 0}, data)

	ctx.DestroyVertexBuffer(h)
	_, ok = ctx.VertexBufferBytes(h)
	require.False(t, ok)
}

func TestReserveVertexBufferRejectsNonPositiveSize(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	_, err := ctx.ReserveVertexBuffer(0)
	require.Error(t, err)
}

func TestWriteBufferRejectsInvalidHandle(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	require.ErrorIs(t, ctx.WriteVertexBuffer(VertexBufferHandle(99), 0, []byte{1}), rerr.ErrInvalidHandle)
	require.ErrorIs(t, ctx.WriteIndexBuffer(IndexBufferHandle(99), 0, []uint32{1}), rerr.ErrInvalidHandle)
}

func TestIndexBufferWidensReadsToU32(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	for _, tc := range []struct {
		name string
		typ  IndexComponentType
	}{
		{"u8", IndexU8},
		{"u16", IndexU16},
		{"u32", IndexU32},
	} {
		h, err := ctx.ReserveIndexBuffer(3, tc.typ)
		require.NoError(t, err, tc.name)
		require.NoError(t, ctx.WriteIndexBuffer(h, 0, []uint32{2, 1, 0}), tc.name)

		vao := ctx.ReserveVertexArray()
		require.NoError(t, ctx.SetIndexBuffer(vao, h), tc.name)
		v, ok := ctx.vaos.Get(uint32(vao))
		require.True(t, ok)
		src, ok := v.IndexBuffer()
		require.True(t, ok, tc.name)
		require.Equal(t, 3, src.Len(), tc.name)
		require.EqualValues(t, 2, src.Index(0), tc.name)
		require.EqualValues(t, 1, src.Index(1), tc.name)
		require.EqualValues(t, 0, src.Index(2), tc.name)
	}
}
