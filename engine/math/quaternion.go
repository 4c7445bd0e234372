package math

import "fmt"

/**
 * @brief Creates a quaternion from its real part w and imaginary part (x, y, z).
 *
 * @return A new quaternion.
 */
func NewQuat(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{W: 1.0}
}

// imaginary returns the vector part of q.
func (q Quaternion) imaginary() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 * For a unit quaternion the conjugate is also the inverse rotation.
 *
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

/**
 * @brief Returns the length (norm) of the quaternion.
 */
func (q Quaternion) Length() float32 {
	return Sqrt(q.Dot(q))
}

// IsNormalized reports whether q has unit length within K_EPSILON.
func (q Quaternion) IsNormalized() bool {
	return InEpsilon(q.Length() - 1.0)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 * A zero quaternion yields NaN components.
 *
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalized() Quaternion {
	return q.DivScalar(q.Length())
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.W*other.W +
		q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z
}

func (q Quaternion) MulScalar(scalar float32) Quaternion {
	return Quaternion{q.W * scalar, q.X * scalar, q.Y * scalar, q.Z * scalar}
}

func (q Quaternion) DivScalar(scalar float32) Quaternion {
	return Quaternion{q.W / scalar, q.X / scalar, q.Y / scalar, q.Z / scalar}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product).
 * The result applies other first, then q: q.Mul(other).RotateVector(v)
 * equals q.RotateVector(other.RotateVector(v)).
 *
 * @param other The right hand side quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.W = q.W*other.W -
		q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z

	out_quaternion.X = q.W*other.X +
		q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y

	out_quaternion.Y = q.W*other.Y -
		q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X

	out_quaternion.Z = q.W*other.Z +
		q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W

	return out_quaternion
}

/**
 * @brief Rotates v by the quaternion. q must be a unit quaternion.
 * Uses the expanded form of q * v * q^-1:
 * 2(i.v)i + (w^2 - i.i)v + 2w(i x v).
 *
 * @param v The vector to rotate.
 * @return The rotated vector.
 */
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	i := q.imaginary()
	a := i.MulScalar(2.0 * i.Dot(v))
	b := v.MulScalar(q.W*q.W - i.Dot(i))
	c := i.Cross(v).MulScalar(2.0 * q.W)
	return a.Add(b).Add(c)
}

/**
 * @brief Creates a quaternion from euler angles in radians. The rotation is
 * applied around Z first, then Y, then X when viewed as intrinsic axes
 * (Z-Y-X convention).
 *
 * @param x Rotation about the X axis.
 * @param y Rotation about the Y axis.
 * @param z Rotation about the Z axis.
 * @return A unit quaternion.
 */
func NewQuatFromEuler(x, y, z float32) Quaternion {
	cx := Cos(x * 0.5)
	sx := Sin(x * 0.5)
	cy := Cos(y * 0.5)
	sy := Sin(y * 0.5)
	cz := Cos(z * 0.5)
	sz := Sin(z * 0.5)

	return Quaternion{
		W: cx*cy*cz + sx*sy*sz,
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
	}
}

/**
 * @brief Converts a unit quaternion back to Z-Y-X euler angles in radians.
 * The pitch (Y) is restricted to [-pi/2, pi/2]; at the poles X and Z are
 * not unique and the returned pair is one valid solution.
 */
func (q Quaternion) ToEuler() Vec3 {
	sinrCosp := 2.0 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1.0 - 2.0*(q.X*q.X+q.Y*q.Y)

	sinp := Clamp(2.0*(q.W*q.Y-q.Z*q.X), -1.0, 1.0)

	sinyCosp := 2.0 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1.0 - 2.0*(q.Y*q.Y+q.Z*q.Z)

	return Vec3{
		X: Atan2(sinrCosp, cosrCosp),
		Y: Asin(sinp),
		Z: Atan2(sinyCosp, cosyCosp),
	}
}

/**
 * @brief Creates the shortest-arc rotation that turns the direction of from
 * into the direction of to. Neither input needs to be normalized.
 * Zero length inputs yield NaN. Opposite inputs produce a half turn about
 * an arbitrary axis orthogonal to from.
 */
func NewQuatFromTo(from, to Vec3) Quaternion {
	norms := Sqrt(from.LengthSquared() * to.LengthSquared())
	w := norms + from.Dot(to)

	if norms > 0 && w < K_FLOAT_EPSILON*norms {
		var axis Vec3
		if Abs(from.X) > Abs(from.Z) {
			axis = Vec3{-from.Y, from.X, 0.0}
		} else {
			axis = Vec3{0.0, -from.Z, from.Y}
		}
		axis = axis.Normalized()
		return Quaternion{0.0, axis.X, axis.Y, axis.Z}
	}

	axis := from.Cross(to)
	return Quaternion{w, axis.X, axis.Y, axis.Z}.Normalized()
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := Sin(half_angle)
	c := Cos(half_angle)

	q := Quaternion{c, s * axis.X, s * axis.Y, s * axis.Z}
	if normalize {
		q = q.Normalized()
	}
	return q
}

/**
 * @brief Returns the inverse of the quaternion, conjugate / |q|^2.
 * For unit quaternions this equals Conjugate.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().DivScalar(q.Dot(q))
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The target quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalized()
	v1 := other.Normalized()

	dot := v0.Dot(v1)

	// q and -q are the same rotation, flip one to take the shorter path.
	if dot < 0.0 {
		v1 = v1.MulScalar(-1.0)
		dot = -dot
	}

	const DOT_THRESHOLD float32 = 0.9995
	if dot > DOT_THRESHOLD {
		qt := Quaternion{
			v0.W + ((v1.W - v0.W) * percentage),
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage)}

		return qt.Normalized()
	}

	theta_0 := Acos(dot)
	theta := theta_0 * percentage
	sin_theta := Sin(theta)
	sin_theta_0 := Sin(theta_0)

	s0 := Cos(theta) - dot*sin_theta/sin_theta_0 // sin(theta_0 - theta) / sin(theta_0)
	s1 := sin_theta / sin_theta_0

	return Quaternion{
		(v0.W * s0) + (v1.W * s1),
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1)}
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	return NewMat4Rotation(q)
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4{q.W, q.X, q.Y, q.Z}.Compare(Vec4{other.W, other.X, other.Y, other.Z}, tolerance)
}

// Equal compares all four components within K_EPSILON. q and -q describe the
// same rotation but are not Equal.
func (q Quaternion) Equal(other Quaternion) bool {
	return InEpsilon(q.W-other.W) && InEpsilon(q.X-other.X) &&
		InEpsilon(q.Y-other.Y) && InEpsilon(q.Z-other.Z)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%f,%f,%f,%f)", q.W, q.X, q.Y, q.Z)
}
