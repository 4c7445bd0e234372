package metadata

import (
	"github.com/Kargisa/newtons/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D
	/** @brief An array of Indices, three per triangle. */
	Indices []uint32

	/** @brief The center of the geometry in local coordinates. */
	Center math.Vec3
	/** @brief The extents of the geometry in local coordinates. */
	Extents math.Extents3D

	/** @brief The Name of the geometry. */
	Name string
}

// VertexCount returns the number of vertices in the geometry.
func (g *GeometryConfig) VertexCount() uint32 {
	return uint32(len(g.Vertices))
}

// IndexCount returns the number of indices in the geometry.
func (g *GeometryConfig) IndexCount() uint32 {
	return uint32(len(g.Indices))
}

// RecalculateExtents recomputes Extents and Center from the vertex positions.
func (g *GeometryConfig) RecalculateExtents() {
	if len(g.Vertices) == 0 {
		g.Extents = math.Extents3D{}
		g.Center = math.NewVec3Zero()
		return
	}

	lo := g.Vertices[0].Position
	hi := lo
	for _, v := range g.Vertices[1:] {
		p := v.Position
		lo = math.NewVec3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = math.NewVec3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}
	g.Extents = math.Extents3D{Min: lo, Max: hi}
	g.Center = lo.Add(hi).MulScalar(0.5)
}
