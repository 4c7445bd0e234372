package metadata

import (
	"github.com/Kargisa/newtons/engine/math"
	"github.com/google/uuid"
)

/**
 * @brief A node of the scene: a piece of geometry placed in the world by
 * its transform, optionally relative to a parent mesh.
 */
type Mesh struct {
	/** @brief Unique identifier, generated when the mesh is created. */
	ID   uuid.UUID
	Name string
	/** @brief The geometry drawn for this mesh. May be nil for pure pivots. */
	Geometry *GeometryConfig
	/** @brief The pose relative to Parent, or to the world if Parent is nil. */
	Transform math.Transform
	/** @brief Angular velocity as euler angles in radians per second. */
	Spin math.Vec3
	/** @brief The parent mesh. The hierarchy must be acyclic. */
	Parent *Mesh
}

func NewMesh(name string, geometry *GeometryConfig, transform math.Transform) *Mesh {
	return &Mesh{
		ID:        uuid.New(),
		Name:      name,
		Geometry:  geometry,
		Transform: transform,
	}
}

// TransformAt returns the local transform advanced by Spin for t seconds.
func (m *Mesh) TransformAt(t float32) math.Transform {
	tr := m.Transform
	if m.Spin != math.NewVec3Zero() {
		angles := m.Spin.MulScalar(t)
		tr.Rotate(math.NewQuatFromEuler(angles.X, angles.Y, angles.Z))
	}
	return tr
}

/**
 * @brief Returns the local to world matrix of the mesh at time t,
 * composing the parent chain: parent world * local.
 */
func (m *Mesh) WorldMatrix(t float32) math.Mat4 {
	world := m.TransformAt(t).LocalToWorldMatrix()
	for p := m.Parent; p != nil; p = p.Parent {
		world = p.TransformAt(t).LocalToWorldMatrix().Mul(world)
	}
	return world
}
