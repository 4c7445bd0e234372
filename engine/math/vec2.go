package math

import "fmt"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// ToVec3 widens v to three components using z.
func (v Vec2) ToVec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 * Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * Normalizes the vector in place to a unit vector.
 * A zero vector ends up with NaN components.
 */
func (v *Vec2) Normalize() {
	*v = v.Normalized()
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 * A zero vector produces NaN components; there is no guard.
 */
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	debugAssert(length != 0, "normalizing a zero Vec2")
	return Vec2{v.X / length, v.Y / length}
}

/**
 * @brief Returns the distance between v and other, |other - v|.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return other.Sub(v).Length()
}

// Lerp interpolates component-wise between v and other. t is not clamped.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return v.Add(other.Sub(v).MulScalar(t))
}

/**
 * @brief Returns the unsigned angle in radians between v and other.
 * The cosine is clamped to [-1, 1] before acos so nearly (anti)parallel
 * vectors never produce NaN.
 */
func (v Vec2) Angle(other Vec2) float32 {
	cos := v.Normalized().Dot(other.Normalized())
	return Acos(Clamp(cos, -1, 1))
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	// Written as !(d <= tolerance) so NaN never compares equal.
	if !(Abs(v.X-other.X) <= tolerance) {
		return false
	}
	if !(Abs(v.Y-other.Y) <= tolerance) {
		return false
	}
	return true
}

// Equal reports whether every component of v is within K_EPSILON of other.
func (v Vec2) Equal(other Vec2) bool {
	return InEpsilon(v.X-other.X) && InEpsilon(v.Y-other.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%f,%f)", v.X, v.Y)
}
