package math

import "fmt"

// NewTransform returns a transform at the origin with no rotation and unit scale.
func NewTransform() Transform {
	return Transform{
		Position: NewVec3Zero(),
		Rotation: NewQuatIdentity(),
		Scale:    NewVec3One(),
	}
}

func NewTransformFrom(position Vec3, rotation Quaternion, scale Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
	}
}

func NewTransformFromPosition(position Vec3) Transform {
	return NewTransformFrom(position, NewQuatIdentity(), NewVec3One())
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
}

// Rotate composes rotation onto the current one; rotation is applied first,
// in the object's local frame.
func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
}

/**
 * @brief Returns the matrix that maps local coordinates into world space,
 * M = T * R * S. The upper 3x3 holds the rotation columns scaled by
 * Scale.X, Scale.Y and Scale.Z; the last column holds the position.
 */
func (t Transform) LocalToWorldMatrix() Mat4 {
	debugAssert(t.Scale.X != 0 && t.Scale.Y != 0 && t.Scale.Z != 0, "transform has zero scale %v", t.Scale)

	m := NewMat4Rotation(t.Rotation)
	for row := 0; row < 3; row++ {
		m.Data[row] *= t.Scale.X
		m.Data[row+4] *= t.Scale.Y
		m.Data[row+8] *= t.Scale.Z
	}
	m.Data[12] = t.Position.X
	m.Data[13] = t.Position.Y
	m.Data[14] = t.Position.Z
	return m
}

/**
 * @brief Returns the matrix that maps world coordinates into the local space
 * of the transform, the inverse of LocalToWorldMatrix:
 * S^-1 * R^-1 * T^-1. A zero scale component produces Inf/NaN.
 */
func (t Transform) WorldToLocalMatrix() Mat4 {
	debugAssert(t.Scale.X != 0 && t.Scale.Y != 0 && t.Scale.Z != 0, "transform has zero scale %v", t.Scale)

	conj := t.Rotation.Conjugate()
	m := NewMat4Rotation(conj)
	for col := 0; col < 3; col++ {
		c := col * 4
		m.Data[c] /= t.Scale.X
		m.Data[c+1] /= t.Scale.Y
		m.Data[c+2] /= t.Scale.Z
	}

	translation := conj.RotateVector(t.Position.Negate()).Div(t.Scale)
	m.Data[12] = translation.X
	m.Data[13] = translation.Y
	m.Data[14] = translation.Z
	return m
}

// Forward returns the world direction of the local +Z axis.
func (t Transform) Forward() Vec3 {
	return t.Rotation.RotateVector(NewVec3Forward())
}

// Up returns the world direction of the local +Y axis.
func (t Transform) Up() Vec3 {
	return t.Rotation.RotateVector(NewVec3Up())
}

// Right returns the world direction of the local +X axis.
func (t Transform) Right() Vec3 {
	return t.Rotation.RotateVector(NewVec3Right())
}

/**
 * @brief Replaces the rotation with the shortest arc that turns world +Z
 * onto forward. Any previous roll is discarded.
 */
func (t *Transform) SetForward(forward Vec3) {
	t.Rotation = NewQuatFromTo(NewVec3Forward(), forward)
}

func (t *Transform) SetUp(up Vec3) {
	t.Rotation = NewQuatFromTo(NewVec3Up(), up)
}

func (t *Transform) SetRight(right Vec3) {
	t.Rotation = NewQuatFromTo(NewVec3Right(), right)
}

// Equal compares position, rotation and scale within K_EPSILON.
func (t Transform) Equal(other Transform) bool {
	return t.Position.Equal(other.Position) &&
		t.Rotation.Equal(other.Rotation) &&
		t.Scale.Equal(other.Scale)
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform{position: %v, rotation: %v, scale: %v}", t.Position, t.Rotation, t.Scale)
}
