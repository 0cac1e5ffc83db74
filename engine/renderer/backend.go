package renderer

import "github.com/spaghettifunk/lovely/engine/renderer/metadata"

/**
 * @brief The graphics API specific half of the renderer. Every method is
 * called from the thread that owns the graphics context.
 */
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float32) error
	EndFrame(deltaTime float32) error
	SetClearColour(r, g, b float32)

	/**
	 * @brief Compiles and links a program. Compile and link failures are
	 * returned as *metadata.ShaderError.
	 */
	ShaderCreate(source *metadata.ShaderSource) (metadata.ShaderID, error)
	ShaderDestroy(shader metadata.ShaderID)
	/** @brief Makes shader current and returns the setter for its uniforms. */
	ShaderUse(shader metadata.ShaderID) (metadata.UniformSetter, error)

	TextureCreate(image *metadata.ImageResourceData) (metadata.TextureID, error)
	TextureDestroy(texture metadata.TextureID)
	TextureBind(unit metadata.TextureUnit, texture metadata.TextureID)

	GeometryCreate(config *metadata.GeometryConfig) (metadata.GeometryID, error)
	GeometryDestroy(geometry metadata.GeometryID)
	GeometryDraw(geometry *metadata.Geometry) error
}
