package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns two triangles over the unit square in the XY plane, with
// the shared corners duplicated.
func quad() ([]Vertex3D, []uint32) {
	v := func(x, y float32) Vertex3D {
		return Vertex3D{
			Position: NewVec3(x, y, 0),
			Texcoord: NewVec2(x, y),
			Colour:   NewVec4One(),
		}
	}
	vertices := []Vertex3D{
		v(0, 0), v(1, 0), v(1, 1),
		v(0, 0), v(1, 1), v(0, 1),
	}
	indices := []uint32{0, 1, 2, 3, 4, 5}
	return vertices, indices
}

func TestGeometryGenerateNormals(t *testing.T) {
	vertices, indices := quad()
	GeometryGenerateNormals(vertices, indices)
	for _, v := range vertices {
		assert.True(t, v.Normal.Equal(NewVec3(0, 0, 1)), "normal %v", v.Normal)
	}
}

func TestGeometryGenerateTangents(t *testing.T) {
	vertices, indices := quad()
	GeometryGenerateTangents(vertices, indices)
	for _, v := range vertices {
		assert.True(t, v.Tangent.Compare(NewVec3(1, 0, 0), 1e-5), "tangent %v", v.Tangent)
	}
}

func TestGeometryDeduplicateVertices(t *testing.T) {
	vertices, indices := quad()
	GeometryGenerateNormals(vertices, indices)

	unique, remapped := GeometryDeduplicateVertices(vertices, indices)
	require.Len(t, unique, 4)
	require.Len(t, remapped, len(indices))

	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, remapped)
	for i, idx := range indices {
		assert.Equal(t, vertices[idx], unique[remapped[i]])
	}

	// The inputs are left alone.
	assert.Len(t, vertices, 6)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, indices)
}

func TestGeometryDeduplicateKeepsDistinct(t *testing.T) {
	vertices, indices := quad()
	vertices[3].Colour = NewVec4(1, 0, 0, 1)

	unique, _ := GeometryDeduplicateVertices(vertices, indices)
	assert.Len(t, unique, 5)
	assert.True(t, Vertex3dEqual(vertices[2], vertices[4]))
	assert.False(t, Vertex3dEqual(vertices[0], vertices[3]))
}
