package metadata

import (
	"github.com/spaghettifunk/lovely/engine/math"
)

/** @brief The backend handle of a linked shader program. Zero is no program. */
type ShaderID uint32

const InvalidShaderID ShaderID = 0

/** @brief The graphics API a backend is built on. */
type RendererType uint8

const (
	RENDERER_TYPE_OPENGL RendererType = iota
	// Records draw calls without touching a graphics API.
	RENDERER_TYPE_HEADLESS
)

func (rt RendererType) String() string {
	switch rt {
	case RENDERER_TYPE_OPENGL:
		return "opengl"
	case RENDERER_TYPE_HEADLESS:
		return "headless"
	}
	return "unknown"
}

/**
 * @brief One object to draw: a geometry, its model transform and the shader
 * program to draw it with. Material is optional.
 */
type RenderItem struct {
	Shader   ShaderID
	Geometry *Geometry
	Model    math.Transform
	Material *Material
}

/**
 * @brief A structure which is generated by the application and sent once
 * to the renderer to render a given frame. Consists of any data required,
 * such as delta time, the camera transforms and the objects to draw.
 */
type RenderPacket struct {
	DeltaTime  float32
	Projection math.Transform
	View       math.Transform
	/** @brief The world position of the camera, uploaded as viewPosition. */
	ViewPosition math.Vec3f
	Items        []RenderItem
}

/** @brief Uniform names written for every item of a RenderPacket. */
const (
	UNIFORM_PROJECTION    string = "projection"
	UNIFORM_VIEW          string = "view"
	UNIFORM_MODEL         string = "model"
	UNIFORM_VIEW_POSITION string = "viewPosition"
	UNIFORM_MATERIAL      string = "material"
)
