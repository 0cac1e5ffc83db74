package metadata

import (
	"fmt"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/** @brief The backend handle of an uploaded geometry. Zero is no geometry. */
type GeometryID uint32

const InvalidGeometryID GeometryID = 0

/**
 * @brief Describes one vertex attribute inside an interleaved vertex buffer.
 * Sizes and offsets are counted in float32 components, not bytes.
 */
type VertexAttribute struct {
	/** @brief The layout location of the attribute in the shader. */
	Location uint32
	/** @brief The number of float32 components. */
	ComponentCount uint32
	/** @brief The offset of the first component inside a vertex. */
	Offset uint32
}

/**
 * @brief The layout of one interleaved vertex.
 */
type VertexLayout struct {
	Attributes []VertexAttribute
	/** @brief The number of float32 components per vertex. */
	Stride uint32
}

/**
 * @brief Builds a tightly packed layout. Attribute i gets location i and
 * starts right after attribute i-1.
 *
 * @param componentCounts The component count of each attribute, in order.
 * @return The layout.
 */
func NewVertexLayout(componentCounts ...uint32) VertexLayout {
	layout := VertexLayout{Attributes: make([]VertexAttribute, 0, len(componentCounts))}
	for i, count := range componentCounts {
		layout.Attributes = append(layout.Attributes, VertexAttribute{
			Location:       uint32(i),
			ComponentCount: count,
			Offset:         layout.Stride,
		})
		layout.Stride += count
	}
	return layout
}

/**
 * @brief Represents the configuration for a geometry: the interleaved vertex
 * data and, optionally, an index list.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name string
	/** @brief Interleaved vertex components, Layout.Stride per vertex. */
	Vertices []float32
	/** @brief Optional indices. Without them the vertices are drawn in order. */
	Indices []uint32
	Layout  VertexLayout
	/** @brief The name of the material used by the geometry. */
	MaterialName string
}

// VertexCount returns the number of whole vertices in Vertices.
func (gc *GeometryConfig) VertexCount() uint32 {
	if gc.Layout.Stride == 0 {
		return 0
	}
	return uint32(len(gc.Vertices)) / gc.Layout.Stride
}

// DrawCount returns the number of elements a draw call submits.
func (gc *GeometryConfig) DrawCount() uint32 {
	if len(gc.Indices) > 0 {
		return uint32(len(gc.Indices))
	}
	return gc.VertexCount()
}

// Validate checks the vertex data against the layout and the indices against
// the vertex count.
func (gc *GeometryConfig) Validate() error {
	if gc.Layout.Stride == 0 {
		return fmt.Errorf("geometry %q: empty vertex layout", gc.Name)
	}
	if len(gc.Vertices) == 0 {
		return fmt.Errorf("geometry %q: no vertices", gc.Name)
	}
	if uint32(len(gc.Vertices))%gc.Layout.Stride != 0 {
		return fmt.Errorf("geometry %q: %d components is not a multiple of the stride %d", gc.Name, len(gc.Vertices), gc.Layout.Stride)
	}
	count := gc.VertexCount()
	for i, index := range gc.Indices {
		if index >= count {
			return fmt.Errorf("geometry %q: index %d at %d out of range, %d vertices", gc.Name, index, i, count)
		}
	}
	return nil
}

/**
 * @brief Represents actual geometry in the world.
 * Typically (but not always, depending on use) paired with a material.
 */
type Geometry struct {
	/** @brief The backend identifier of the uploaded buffers. */
	ID GeometryID
	/** @brief The geometry name. */
	Name string
	/** @brief The number of elements submitted per draw. */
	DrawCount uint32
	Indexed   bool
	/** @brief A pointer to the material associated with this geometry. */
	Material *Material
}

/**
 * @brief Generates the textured unit cube used by the testbed: 36 vertices,
 * each a position followed by a texture coordinate.
 */
func GenerateCubeConfig(name, materialName string) *GeometryConfig {
	return &GeometryConfig{
		Name:         name,
		MaterialName: materialName,
		Layout:       NewVertexLayout(3, 2),
		Vertices: []float32{
			-0.5, -0.5, -0.5, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 0.0,

			-0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,

			-0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, 0.5, 1.0, 0.0,

			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,

			-0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 1.0, 1.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,

			-0.5, 0.5, -0.5, 0.0, 1.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
		},
	}
}
