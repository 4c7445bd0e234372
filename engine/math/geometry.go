package math

import (
	"encoding/binary"
	m "math"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/cespare/xxhash/v2"
)

// GeometryGenerateNormals assigns flat face normals to every triangle
// referenced by indices.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents derives per-triangle tangents from positions and
// texture coordinates. Triangles with degenerate UVs get NaN tangents.
func GeometryGenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaU1 := vertices[i1].Texcoord.X - vertices[i0].Texcoord.X
		deltaV1 := vertices[i1].Texcoord.Y - vertices[i0].Texcoord.Y

		deltaU2 := vertices[i2].Texcoord.X - vertices[i0].Texcoord.X
		deltaV2 := vertices[i2].Texcoord.Y - vertices[i0].Texcoord.Y

		dividend := deltaU1*deltaV2 - deltaU2*deltaV1
		fc := 1.0 / dividend

		tangent := Vec3{
			fc * (deltaV2*edge1.X - deltaV1*edge2.X),
			fc * (deltaV2*edge1.Y - deltaV1*edge2.Y),
			fc * (deltaV2*edge1.Z - deltaV1*edge2.Z)}

		// fc carries the sign of the UV winding, mirrored UVs flip the tangent.
		tangent = tangent.Normalized()

		vertices[i0].Tangent = tangent
		vertices[i1].Tangent = tangent
		vertices[i2].Tangent = tangent
	}
}

// Vertex3dEqual compares every attribute of two vertices within K_FLOAT_EPSILON.
func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON) &&
		vert0.Tangent.Compare(vert1.Tangent, K_FLOAT_EPSILON)
}

const vertex3DFloats = 15

// hashVertex hashes the raw IEEE-754 bits of every attribute.
func hashVertex(v Vertex3D) uint64 {
	fs := [vertex3DFloats]float32{
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Normal.X, v.Normal.Y, v.Normal.Z,
		v.Texcoord.X, v.Texcoord.Y,
		v.Colour.X, v.Colour.Y, v.Colour.Z, v.Colour.W,
		v.Tangent.X, v.Tangent.Y, v.Tangent.Z,
	}
	var buf [vertex3DFloats * 4]byte
	for i, f := range fs {
		binary.LittleEndian.PutUint32(buf[i*4:], m.Float32bits(f))
	}
	return xxhash.Sum64(buf[:])
}

/**
 * @brief Removes bit-identical duplicate vertices and remaps the index list
 * onto the unique set. Vertices keep their first-seen order.
 *
 * @param vertices The source vertices. Not modified.
 * @param indices The triangle indices into vertices. Not modified.
 * @return The unique vertices and the remapped indices.
 */
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32) ([]Vertex3D, []uint32) {
	uniqueVerts := make([]Vertex3D, 0, len(vertices))
	remap := make([]uint32, len(vertices))
	buckets := make(map[uint64][]uint32, len(vertices))

	for v, vert := range vertices {
		h := hashVertex(vert)
		found := false
		for _, u := range buckets[h] {
			if uniqueVerts[u] == vert {
				remap[v] = u
				found = true
				break
			}
		}

		if !found {
			u := uint32(len(uniqueVerts))
			uniqueVerts = append(uniqueVerts, vert)
			buckets[h] = append(buckets[h], u)
			remap[v] = u
		}
	}

	outIndices := make([]uint32, len(indices))
	for i, idx := range indices {
		outIndices[i] = remap[idx]
	}

	removedCount := len(vertices) - len(uniqueVerts)
	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", removedCount, len(vertices), len(uniqueVerts))

	return uniqueVerts, outIndices
}
