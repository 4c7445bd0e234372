package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/**
	 * @brief Tolerance used by every approximate equality in this package
	 * (vectors, quaternions, matrices, transforms).
	 */
	K_EPSILON float32 = 1e-5
)

/**
 * Float32 wrappers over the float64 standard library functions.
 * NaN and Inf propagate exactly as IEEE-754 dictates.
 */
func Sqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func Sin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func Tan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func Asin(x float32) float32 {
	return float32(m.Asin(float64(x)))
}

func Acos(x float32) float32 {
	return float32(m.Acos(float64(x)))
}

func Atan2(y, x float32) float32 {
	return float32(m.Atan2(float64(y), float64(x)))
}

func Pow(x, n float32) float32 {
	return float32(m.Pow(float64(x), float64(n)))
}

func Abs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN(x float32) bool {
	return x != x
}

/**
 * @brief Linearly interpolates between a and b. t is not clamped,
 * values outside of [0, 1] extrapolate.
 */
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp01 saturates x into [0, 1].
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

/**
 * @brief Indicates if the provided delta is within K_EPSILON of zero.
 * Used to compare floats approximately: InEpsilon(a - b).
 */
func InEpsilon(delta float32) bool {
	return Abs(delta) < K_EPSILON
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
