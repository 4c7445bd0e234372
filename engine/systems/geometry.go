package systems

import (
	"fmt"
	"sync"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/math"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
)

type geometryReference struct {
	geometry       *metadata.GeometryConfig
	referenceCount uint32
}

/**
 * @brief Keeps the generated geometries of a scene, shared by name so that
 * meshes using the same shape and size point at the same vertex data.
 */
type GeometrySystem struct {
	mu         sync.Mutex
	geometries map[string]*geometryReference
}

func NewGeometrySystem() *GeometrySystem {
	return &GeometrySystem{
		geometries: make(map[string]*geometryReference),
	}
}

/**
 * @brief Registers and acquires a geometry using the given config. If a
 * geometry with the same name is already registered, that one is returned
 * and its reference count is incremented.
 *
 * @param config The geometry configuration.
 * @return The registered geometry.
 */
func (gs *GeometrySystem) AcquireFromConfig(config *metadata.GeometryConfig) *metadata.GeometryConfig {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	name := config.Name
	if name == "" {
		name = metadata.DefaultGeometryName
		config.Name = name
	}
	if ref, ok := gs.geometries[name]; ok {
		ref.referenceCount++
		return ref.geometry
	}
	gs.geometries[name] = &geometryReference{geometry: config, referenceCount: 1}
	core.LogDebug("geometry '%s' registered (%d vertices, %d indices)", name, config.VertexCount(), config.IndexCount())
	return config
}

/**
 * @brief Acquires an existing geometry by name.
 */
func (gs *GeometrySystem) Acquire(name string) (*metadata.GeometryConfig, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	ref, ok := gs.geometries[name]
	if !ok {
		return nil, fmt.Errorf("cannot acquire geometry '%s': %w", name, core.ErrGeometryNotFound)
	}
	ref.referenceCount++
	return ref.geometry, nil
}

/**
 * @brief Releases a reference to the provided geometry. The geometry is
 * dropped when the last reference goes away.
 */
func (gs *GeometrySystem) Release(name string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	ref, ok := gs.geometries[name]
	if !ok {
		core.LogWarn("geometry_system_release called for unknown geometry '%s'", name)
		return
	}
	ref.referenceCount--
	if ref.referenceCount == 0 {
		delete(gs.geometries, name)
		core.LogDebug("geometry '%s' released", name)
	}
}

// Count returns the number of registered geometries.
func (gs *GeometrySystem) Count() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return len(gs.geometries)
}

// ReferenceCount returns the number of live references to name, zero if unknown.
func (gs *GeometrySystem) ReferenceCount(name string) uint32 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if ref, ok := gs.geometries[name]; ok {
		return ref.referenceCount
	}
	return 0
}

func nonZero(value float32, what string) float32 {
	if value == 0 {
		core.LogWarn("%s must be nonzero. Defaulting to one.", what)
		return 1.0
	}
	return value
}

func atLeastOne(value uint32, what string) uint32 {
	if value < 1 {
		core.LogWarn("%s must be a positive number. Defaulting to one.", what)
		return 1
	}
	return value
}

func geometryName(name string) string {
	if len(name) > 0 {
		return name
	}
	return metadata.DefaultGeometryName
}

/**
 * @brief Generates configuration for plane geometries given the provided parameters.
 * NOTE: vertex and index arrays are dynamically allocated and should be freed upon object disposal.
 * Thus, this should not be considered production code.
 * The plane lies in the XY plane facing +Z, centred on the origin.
 *
 * @param width The overall width of the plane. Zero defaults to one.
 * @param height The overall height of the plane. Zero defaults to one.
 * @param xSegmentCount The number of segments along the x-axis in the plane. Zero defaults to one.
 * @param ySegmentCount The number of segments along the y-axis in the plane. Zero defaults to one.
 * @param tileX The number of times the texture should tile across the plane on the x-axis. Zero defaults to one.
 * @param tileY The number of times the texture should tile across the plane on the y-axis. Zero defaults to one.
 * @param name The name of the generated geometry.
 * @return A geometry configuration which can then be fed into AcquireFromConfig().
 */
func GeneratePlaneConfig(width, height float32, xSegmentCount, ySegmentCount uint32, tileX, tileY float32, name string) *metadata.GeometryConfig {
	width = nonZero(width, "width")
	height = nonZero(height, "height")
	xSegmentCount = atLeastOne(xSegmentCount, "xSegmentCount")
	ySegmentCount = atLeastOne(ySegmentCount, "ySegmentCount")
	tileX = nonZero(tileX, "tileX")
	tileY = nonZero(tileY, "tileY")

	segments := xSegmentCount * ySegmentCount
	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, segments*4), // 4 verts per segment
		Indices:  make([]uint32, segments*6),        // 6 indices per segment
		Name:     geometryName(name),
	}

	seg_width := width / float32(xSegmentCount)
	seg_height := height / float32(ySegmentCount)
	half_width := width * 0.5
	half_height := height * 0.5
	white := math.NewVec4One()
	for y := uint32(0); y < ySegmentCount; y++ {
		for x := uint32(0); x < xSegmentCount; x++ {
			min_x := (float32(x) * seg_width) - half_width
			min_y := (float32(y) * seg_height) - half_height
			max_x := (float32(x+1) * seg_width) - half_width
			max_y := (float32(y+1) * seg_height) - half_height
			min_uvx := (float32(x) / float32(xSegmentCount)) * tileX
			min_uvy := (float32(y) / float32(ySegmentCount)) * tileY
			max_uvx := (float32(x+1) / float32(xSegmentCount)) * tileX
			max_uvy := (float32(y+1) / float32(ySegmentCount)) * tileY

			v_offset := ((y * xSegmentCount) + x) * 4
			quad := config.Vertices[v_offset : v_offset+4]
			quad[0] = math.Vertex3D{Position: math.NewVec3(min_x, min_y, 0), Texcoord: math.NewVec2(min_uvx, min_uvy), Colour: white}
			quad[1] = math.Vertex3D{Position: math.NewVec3(max_x, max_y, 0), Texcoord: math.NewVec2(max_uvx, max_uvy), Colour: white}
			quad[2] = math.Vertex3D{Position: math.NewVec3(min_x, max_y, 0), Texcoord: math.NewVec2(min_uvx, max_uvy), Colour: white}
			quad[3] = math.Vertex3D{Position: math.NewVec3(max_x, min_y, 0), Texcoord: math.NewVec2(max_uvx, min_uvy), Colour: white}

			i_offset := ((y * xSegmentCount) + x) * 6
			writeQuadIndices(config.Indices[i_offset:i_offset+6], v_offset)
		}
	}

	// Neighbouring segments emit their shared edge twice.
	config.Vertices, config.Indices = math.GeometryDeduplicateVertices(config.Vertices, config.Indices)

	math.GeometryGenerateNormals(config.Vertices, config.Indices)
	math.GeometryGenerateTangents(config.Vertices, config.Indices)
	config.RecalculateExtents()

	return config
}

// cubeFace lists the four corners of a face as signs of the half extents,
// in the order min-uv, max-uv, (min-u, max-v), (max-u, min-v).
type cubeFace struct {
	corners [4]math.Vec3
	normal  math.Vec3
}

var cubeFaces = [6]cubeFace{
	// Front
	{corners: [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}}, normal: math.Vec3{Z: 1}},
	// Back
	{corners: [4]math.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}}, normal: math.Vec3{Z: -1}},
	// Left
	{corners: [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}}, normal: math.Vec3{X: -1}},
	// Right
	{corners: [4]math.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}}, normal: math.Vec3{X: 1}},
	// Bottom
	{corners: [4]math.Vec3{{X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}}, normal: math.Vec3{Y: -1}},
	// Top
	{corners: [4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}, normal: math.Vec3{Y: 1}},
}

/**
 * @brief Generates configuration for an axis aligned box centred on the origin,
 * four vertices and two triangles per face.
 *
 * @param width The width along x. Zero defaults to one.
 * @param height The height along y. Zero defaults to one.
 * @param depth The depth along z. Zero defaults to one.
 * @param tileX The number of times the texture should tile across each face on the x-axis.
 * @param tileY The number of times the texture should tile across each face on the y-axis.
 * @param name The name of the generated geometry.
 */
func GenerateCubeConfig(width, height, depth, tileX, tileY float32, name string) *metadata.GeometryConfig {
	width = nonZero(width, "width")
	height = nonZero(height, "height")
	depth = nonZero(depth, "depth")
	tileX = nonZero(tileX, "tileX")
	tileY = nonZero(tileY, "tileY")

	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, 4*6), // 4 verts per side, 6 side
		Indices:  make([]uint32, 6*6),        // 6 indices per side, 6 side
		Name:     geometryName(name),
	}

	half := math.NewVec3(width*0.5, height*0.5, depth*0.5)
	uvs := [4]math.Vec2{
		math.NewVec2(0, 0),
		math.NewVec2(tileX, tileY),
		math.NewVec2(0, tileY),
		math.NewVec2(tileX, 0),
	}
	white := math.NewVec4One()

	for f, face := range cubeFaces {
		v_offset := uint32(f * 4)
		for c, corner := range face.corners {
			config.Vertices[v_offset+uint32(c)] = math.Vertex3D{
				Position: corner.Mul(half),
				Normal:   face.normal,
				Texcoord: uvs[c],
				Colour:   white,
			}
		}
		writeQuadIndices(config.Indices[f*6:f*6+6], v_offset)
	}

	math.GeometryGenerateTangents(config.Vertices, config.Indices)
	config.RecalculateExtents()

	return config
}

func writeQuadIndices(dst []uint32, v_offset uint32) {
	dst[0] = v_offset + 0
	dst[1] = v_offset + 1
	dst[2] = v_offset + 2
	dst[3] = v_offset + 0
	dst[4] = v_offset + 3
	dst[5] = v_offset + 1
}
