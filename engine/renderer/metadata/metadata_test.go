package metadata

import (
	"bytes"
	"encoding/binary"
	m "math"
	"testing"
	"unsafe"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformBufferObjectLayout(t *testing.T) {
	ubo := UniformBufferObject{
		Model: math.NewMat4Translation(math.NewVec3(1, 2, 3)),
		View:  math.NewMat4Identity(),
		Proj:  math.NewMat4Scale(math.NewVec3(4, 5, 6)),
	}
	require.Equal(t, uintptr(UniformBufferObjectSize), unsafe.Sizeof(ubo))

	data, err := ubo.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, UniformBufferObjectSize)

	float := func(i int) float32 {
		return m.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	// model translation lives in column 3
	assert.Equal(t, float32(1), float(12))
	assert.Equal(t, float32(2), float(13))
	assert.Equal(t, float32(3), float(14))
	// view starts right after model
	assert.Equal(t, float32(1), float(16))
	assert.Equal(t, float32(0), float(17))
	// proj diagonal
	assert.Equal(t, float32(4), float(32))
	assert.Equal(t, float32(5), float(32+5))
	assert.Equal(t, float32(6), float(32+10))

	var decoded UniformBufferObject
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, ubo, decoded)

	assert.ErrorIs(t, decoded.UnmarshalBinary(data[:10]), core.ErrInvalidUniformSize)
}

func TestUniformBufferObjectWriteTo(t *testing.T) {
	ubo := UniformBufferObject{Model: math.NewMat4Identity()}
	var buf bytes.Buffer
	n, err := ubo.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, UniformBufferObjectSize, n)
	assert.Equal(t, UniformBufferObjectSize, buf.Len())
}

func TestGeometryExtents(t *testing.T) {
	g := &GeometryConfig{
		Vertices: []math.Vertex3D{
			{Position: math.NewVec3(-1, 0, 2)},
			{Position: math.NewVec3(3, -2, 0)},
			{Position: math.NewVec3(1, 4, 1)},
		},
		Indices: []uint32{0, 1, 2},
	}
	g.RecalculateExtents()
	assert.Equal(t, math.NewVec3(-1, -2, 0), g.Extents.Min)
	assert.Equal(t, math.NewVec3(3, 4, 2), g.Extents.Max)
	assert.Equal(t, math.NewVec3(1, 1, 1), g.Center)
	assert.EqualValues(t, 3, g.VertexCount())
	assert.EqualValues(t, 3, g.IndexCount())

	empty := &GeometryConfig{}
	empty.RecalculateExtents()
	assert.Equal(t, math.NewVec3Zero(), empty.Center)
}

func TestMeshWorldMatrixFollowsParent(t *testing.T) {
	root := NewMesh("root", nil, math.NewTransformFromPosition(math.NewVec3(10, 0, 0)))
	child := NewMesh("child", nil, math.NewTransformFromPosition(math.NewVec3(0, 2, 0)))
	child.Parent = root
	assert.NotEqual(t, root.ID, child.ID)

	origin := math.NewVec3Zero().TransformPoint(child.WorldMatrix(0))
	assert.True(t, origin.Equal(math.NewVec3(10, 2, 0)), "got %v", origin)

	// Rotating the parent swings the child around it.
	root.Transform.Rotation = math.NewQuatFromAxisAngle(math.NewVec3Forward(), math.K_HALF_PI, true)
	origin = math.NewVec3Zero().TransformPoint(child.WorldMatrix(0))
	assert.True(t, origin.Compare(math.NewVec3(8, 0, 0), 1e-4), "got %v", origin)
}

func TestMeshSpin(t *testing.T) {
	mesh := NewMesh("spinner", nil, math.NewTransform())
	mesh.Spin = math.NewVec3(0, math.K_HALF_PI, 0)

	assert.True(t, mesh.TransformAt(0).Equal(mesh.Transform))
	forward := mesh.TransformAt(1).Forward()
	assert.True(t, forward.Compare(math.NewVec3Right(), 1e-5), "got %v", forward)
	// The stored transform is untouched.
	assert.True(t, mesh.Transform.Rotation.Equal(math.NewQuatIdentity()))
}

func TestVec3Config(t *testing.T) {
	assert.Equal(t, math.NewVec3(1, 2, 3), Vec3Config{1, 2, 3}.ToVec3())
}
