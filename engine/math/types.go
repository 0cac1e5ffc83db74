// Package math holds the engine's generic vectors, the column-major Transform
// and float comparison helpers. A zero Transform is the zero matrix; use
// Identity or NewTransform for the identity.
package math

import "golang.org/x/exp/constraints"

/** @brief Any integer or floating point kind usable as a vector component. */
type Number interface {
	constraints.Integer | constraints.Float
}

/** @brief Any floating point kind. */
type Float interface {
	constraints.Float
}

/**
 * @brief The set of fixed-size component arrays every vector operation is
 * written against. Vec2, Vec3 and Vec4 all satisfy it, so each operation has
 * a single definition shared by every dimension.
 */
type Vector[E Number] interface {
	~[2]E | ~[3]E | ~[4]E
}

/**
 * @brief A 2-component vector. Components are stored in x, y order;
 * r/s and g/t are alternate names for the same two slots.
 */
type Vec2[E Number] [2]E

/**
 * @brief A 3-component vector. Components are stored in x, y, z order;
 * r/s, g/t and b/p are alternate names for the same three slots.
 */
type Vec3[E Number] [3]E

/**
 * @brief A 4-component vector. Components are stored in x, y, z, w order;
 * r/s, g/t, b/p and a/q are alternate names for the same four slots.
 */
type Vec4[E Number] [4]E

type Vec2i = Vec2[int]
type Vec2f = Vec2[float32]
type Vec2d = Vec2[float64]

type Vec3i = Vec3[int]
type Vec3f = Vec3[float32]
type Vec3d = Vec3[float64]

type Vec4i = Vec4[int]
type Vec4f = Vec4[float32]
type Vec4d = Vec4[float64]

/**
 * @brief A column-major 4x4 transform matrix made of four column vectors.
 * Column 3 (W) carries the translation in rows 0-2. Use NewTransform or
 * Identity for the identity matrix; the zero value is the zero matrix.
 */
type Transform struct {
	X Vec4f
	Y Vec4f
	Z Vec4f
	W Vec4f
}
