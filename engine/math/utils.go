package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Default ULP distance accepted by AlmostEqualFloat. */
	DefaultMaxUlpDiff int64 = 4
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

/**
 * @brief Reports whether left and right are equal. float32 and float64 are
 * compared within DefaultMaxUlpDiff units in the last place; every other
 * type, including named float types, uses plain equality.
 */
func AlmostEqual[T comparable](left, right T) bool {
	switch l := any(left).(type) {
	case float32:
		return AlmostEqualFloat(l, any(right).(float32))
	case float64:
		return AlmostEqualFloat64(l, any(right).(float64), DefaultMaxUlpDiff)
	}
	return left == right
}

/**
 * @brief Reports whether two float32 values are within DefaultMaxUlpDiff
 * units in the last place of each other.
 */
func AlmostEqualFloat(left, right float32) bool {
	return AlmostEqualUlps(left, right, DefaultMaxUlpDiff)
}

/**
 * @brief Reports whether the integer representations of left and right are at
 * most maxUlpDiff apart. The bit patterns are mapped from sign-magnitude to a
 * monotonic integer line first, so values straddling zero compare correctly
 * and +0 equals -0. NaN is never equal to anything.
 */
func AlmostEqualUlps(left, right float32, maxUlpDiff int64) bool {
	if left != left || right != right {
		return false
	}
	diff := orderedBits32(left) - orderedBits32(right)
	if diff < 0 {
		diff = -diff
	}
	return diff <= maxUlpDiff
}

// AlmostEqualFloat64 is AlmostEqualUlps for float64 values.
func AlmostEqualFloat64(left, right float64, maxUlpDiff int64) bool {
	if left != left || right != right {
		return false
	}
	l, r := orderedBits64(left), orderedBits64(right)
	// both halves of the line are at most 2^63-1 away from zero, so compare
	// without overflowing when the signs differ
	if (l < 0) != (r < 0) {
		if l < 0 {
			l, r = r, l
		}
		return uint64(l)+uint64(-r) <= uint64(maxUlpDiff)
	}
	diff := l - r
	if diff < 0 {
		diff = -diff
	}
	return diff <= maxUlpDiff
}

func orderedBits32(f float32) int64 {
	bits := m.Float32bits(f)
	if bits&(1<<31) != 0 {
		return -int64(bits &^ (1 << 31))
	}
	return int64(bits)
}

func orderedBits64(f float64) int64 {
	bits := m.Float64bits(f)
	if bits&(1<<63) != 0 {
		return -int64(bits &^ (1 << 63))
	}
	return int64(bits)
}

/**
 * @brief Converts the provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func ToRadians[F Float](degrees F) F {
	return degrees * F(m.Pi) / 180
}

/**
 * @brief Converts the provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func ToDegrees[F Float](radians F) F {
	return radians * 180 / F(m.Pi)
}
