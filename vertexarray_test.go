package swrast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexArrayBindingOffset(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	vbo, err := ctx.ReserveVertexBuffer(64)
	require.NoError(t, err)

	vao := ctx.ReserveVertexArray()
	require.NoError(t, ctx.SetVertexBuffer(vao, vbo))
	require.NoError(t, ctx.SetNumBindings(vao, 2))
	require.NoError(t, ctx.SetBinding(vao, 0, 0, 12, 3, ComponentF32))
	require.NoError(t, ctx.SetBinding(vao, 1, 12, 12, 3, ComponentF32))

	v, ok := ctx.vaos.Get(uint32(vao))
	require.True(t, ok)
	require.Equal(t, 12, v.Offset(0, 1))
	require.Equal(t, 24, v.Offset(1, 1))

	data, offset, stride, components, typ, ok := v.Binding(0)
	require.True(t, ok)
	require.Len(t, data, 64)
	require.Equal(t, 0, offset)
	require.Equal(t, 12, stride)
	require.Equal(t, 3, components)
	require.Equal(t, ComponentF32, typ)
}

func TestSetBindingRejectsInvalidComponentCount(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	vao := ctx.ReserveVertexArray()
	require.NoError(t, ctx.SetNumBindings(vao, 1))
	require.Error(t, ctx.SetBinding(vao, 0, 0, 4, 0, ComponentF32))
	require.Error(t, ctx.SetBinding(vao, 0, 0, 4, 5, ComponentF32))
}

func TestBindingUnboundSlotReportsNotOK(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	vao := ctx.ReserveVertexArray()
	require.NoError(t, ctx.SetNumBindings(vao, 1))
	v, ok := ctx.vaos.Get(uint32(vao))
	require.True(t, ok)
	_, _, _, _, _, ok = v.Binding(0)
	require.False(t, ok, "binding slot with no vbo bound and no SetBinding call should be unbound")
}
