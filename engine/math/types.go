package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A quaternion, used to represent rotational orientation.
 * W is the real part, (X, Y, Z) the imaginary part. Rotation related
 * operations assume a unit quaternion; callers renormalize after
 * composing many rotations to counter floating point drift.
 */
type Quaternion struct {
	W, X, Y, Z float32
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored column-major: Data[row + col*4]. The layout is
 * exactly 16 contiguous float32 values so it can be copied verbatim into
 * a GPU uniform buffer.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
	/** @brief The colour of the vertex. */
	Colour Vec4
	/** @brief The tangent of the vertex. */
	Tangent Vec3
}

/**
 * @brief Represents the pose of an object: position, rotation and scale.
 * Transform is a plain value; matrices are derived on demand through
 * LocalToWorldMatrix and WorldToLocalMatrix.
 * Rotation must be a unit quaternion and no Scale component may be zero.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
}
