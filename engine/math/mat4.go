package math

import (
	"fmt"
	"strings"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates a matrix from four column vectors.
 */
func NewMat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetCol(0, c0)
	out_matrix.SetCol(1, c1)
	out_matrix.SetCol(2, c2)
	out_matrix.SetCol(3, c3)
	return out_matrix
}

// Index returns the n-th element in column-major order. n must be in [0, 16).
func (mt Mat4) Index(n int) float32 {
	return mt.Data[n]
}

func (mt *Mat4) SetIndex(n int, value float32) {
	mt.Data[n] = value
}

// At returns the element in the given row and column.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[row+col*4]
}

func (mt *Mat4) Set(row, col int, value float32) {
	mt.Data[row+col*4] = value
}

func (mt Mat4) Row(row int) Vec4 {
	return Vec4{mt.Data[row], mt.Data[row+4], mt.Data[row+8], mt.Data[row+12]}
}

func (mt Mat4) Col(col int) Vec4 {
	c := col * 4
	return Vec4{mt.Data[c], mt.Data[c+1], mt.Data[c+2], mt.Data[c+3]}
}

func (mt *Mat4) SetRow(row int, v Vec4) {
	mt.Data[row] = v.X
	mt.Data[row+4] = v.Y
	mt.Data[row+8] = v.Z
	mt.Data[row+12] = v.W
}

func (mt *Mat4) SetCol(col int, v Vec4) {
	c := col * 4
	mt.Data[c] = v.X
	mt.Data[c+1] = v.Y
	mt.Data[c+2] = v.Z
	mt.Data[c+3] = v.W
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The quaternion
 * is expected to be normalized; translation is zero and the bottom row is
 * (0, 0, 0, 1).
 *
 * @param q The quaternion to be used.
 * @return A rotation matrix.
 */
func NewMat4Rotation(q Quaternion) Mat4 {
	out_matrix := Mat4{}

	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	out_matrix.Data[0] = 1.0 - 2.0*(yy+zz)
	out_matrix.Data[1] = 2.0 * (xy + wz)
	out_matrix.Data[2] = 2.0 * (xz - wy)

	out_matrix.Data[4] = 2.0 * (xy - wz)
	out_matrix.Data[5] = 1.0 - 2.0*(xx+zz)
	out_matrix.Data[6] = 2.0 * (yz + wx)

	out_matrix.Data[8] = 2.0 * (xz + wy)
	out_matrix.Data[9] = 2.0 * (yz - wx)
	out_matrix.Data[10] = 1.0 - 2.0*(xx+yy)

	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt by other (mt * other).
 * Applied to a vector, other acts first. Not commutative.
 *
 * @param other The right hand side matrix.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row+i*4] * other.Data[i+col*4]
			}
			out_matrix.Data[row+col*4] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Multiplies the matrix with a column vector (mt * v).
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := &mt.Data
	return Vec4{
		X: d[0]*v.X + d[4]*v.Y + d[8]*v.Z + d[12]*v.W,
		Y: d[1]*v.X + d[5]*v.Y + d[9]*v.Z + d[13]*v.W,
		Z: d[2]*v.X + d[6]*v.Y + d[10]*v.Z + d[14]*v.W,
		W: d[3]*v.X + d[7]*v.Y + d[11]*v.Z + d[15]*v.W,
	}
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	for i := range mt.Data {
		mt.Data[i] *= scalar
	}
	return mt
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes. Left-handed, depth is mapped to [0, 1].
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far_clip - near_clip)

	out_matrix.Data[0] = 2.0 * rl
	out_matrix.Data[5] = 2.0 * tb
	out_matrix.Data[10] = fn

	out_matrix.Data[12] = -(right + left) * rl
	out_matrix.Data[13] = -(top + bottom) * tb
	out_matrix.Data[14] = -near_clip * fn
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 * Left-handed (the camera looks down +Z) with depth mapped to [0, 1]. Vulkan's
 * clip space has Y pointing down; use FlipY when rendering there.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	f := 1.0 / Tan(fov_radians*0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = f / aspect_ratio
	out_matrix.Data[5] = f
	out_matrix.Data[10] = far_clip / (far_clip - near_clip)
	out_matrix.Data[11] = 1.0
	out_matrix.Data[14] = -(far_clip * near_clip) / (far_clip - near_clip)
	return out_matrix
}

// FlipY negates the Y scale of a projection matrix.
func (mt Mat4) FlipY() Mat4 {
	mt.Data[5] = -mt.Data[5]
	return mt
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position, using world up (0, 1, 0).
 */
func NewMat4LookAt(position, target Vec3) Mat4 {
	return NewMat4LookAtUp(position, target, NewVec3Up())
}

/**
 * @brief Creates and returns a left-handed view matrix looking at target from
 * the perspective of position. If the view direction is parallel to up
 * the basis is undefined and the result contains NaN.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAtUp(position, target, up Vec3) Mat4 {
	out_matrix := Mat4{}

	z_axis := target.Sub(position).Normalized()
	side := up.Cross(z_axis)
	debugAssert(side.LengthSquared() > 0, "look-at direction %v is parallel to up %v", z_axis, up)
	x_axis := side.Normalized()
	y_axis := z_axis.Cross(x_axis)

	out_matrix.Data[0] = x_axis.X
	out_matrix.Data[1] = y_axis.X
	out_matrix.Data[2] = z_axis.X
	out_matrix.Data[3] = 0
	out_matrix.Data[4] = x_axis.Y
	out_matrix.Data[5] = y_axis.Y
	out_matrix.Data[6] = z_axis.Y
	out_matrix.Data[7] = 0
	out_matrix.Data[8] = x_axis.Z
	out_matrix.Data[9] = y_axis.Z
	out_matrix.Data[10] = z_axis.Z
	out_matrix.Data[11] = 0
	out_matrix.Data[12] = -x_axis.Dot(position)
	out_matrix.Data[13] = -y_axis.Dot(position)
	out_matrix.Data[14] = -z_axis.Dot(position)
	out_matrix.Data[15] = 1.0

	return out_matrix
}

/**
 * @brief Returns a transposed copy of the matrix (rows->colums)
 *
 * @return A transposed copy of of the provided matrix.
 */
func (mt Mat4) Transposed() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col+row*4] = mt.Data[row+col*4]
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns an inverse of the matrix. A singular matrix
 * produces Inf/NaN elements.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

// Compare reports whether every element is within tolerance of other.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if !(Abs(mt.Data[i]-other.Data[i]) <= tolerance) {
			return false
		}
	}
	return true
}

// Equal reports whether all 16 elements are within K_EPSILON of other.
func (mt Mat4) Equal(other Mat4) bool {
	for i := range mt.Data {
		if !InEpsilon(mt.Data[i] - other.Data[i]) {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (mt Mat4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		r := mt.Row(row)
		fmt.Fprintf(&sb, "[%f %f %f %f]", r.X, r.Y, r.Z, r.W)
		if row < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
