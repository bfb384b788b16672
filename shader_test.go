package swrast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/vertmath"
)

func passthrough(p *VertexParam) vertmath.Vec4 { return vertmath.Vec4{W: 1} }
func discardAll(p *FragmentParam) bool         { return false }

func TestShaderHandleLifecycleAndUniformBuffer(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	h := ctx.ReserveShader(passthrough, discardAll, 2, 1)
	ubo := ctx.ReserveUniformBuffer()
	require.NoError(t, ctx.SetShaderUniformBuffer(h, ubo))

	sh, ok := ctx.shaders.Get(uint32(h))
	require.True(t, ok)
	require.True(t, sh.hasUBO)
	require.Equal(t, ubo, sh.ubo)
	require.Equal(t, 2, sh.numVaryings)
	require.Equal(t, 1, sh.numOutputs)

	ctx.DestroyShader(h)
	_, ok = ctx.shaders.Get(uint32(h))
	require.False(t, ok)
}

func TestSetShaderUniformBufferRejectsInvalidHandle(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	ubo := ctx.ReserveUniformBuffer()
	err := ctx.SetShaderUniformBuffer(ShaderHandle(999), ubo)
	require.ErrorIs(t, err, rerr.ErrInvalidHandle)
}
