package renderer

import (
	"fmt"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

/**
 * @brief The renderer frontend. It owns a backend and turns render packets
 * into backend calls.
 */
type Renderer struct {
	backend RendererBackend
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.backend.Initialize(appName, appWidth, appHeight); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) SetClearColour(red, green, blue float32) {
	r.backend.SetClearColour(red, green, blue)
}

func (r *Renderer) CreateShader(source *metadata.ShaderSource) (metadata.ShaderID, error) {
	id, err := r.backend.ShaderCreate(source)
	if err != nil {
		return metadata.InvalidShaderID, fmt.Errorf("shader %q: %w", source.Name, err)
	}
	core.LogDebug("shader %q created with id %d", source.Name, id)
	return id, nil
}

func (r *Renderer) DestroyShader(shader metadata.ShaderID) {
	r.backend.ShaderDestroy(shader)
}

// UseShader makes shader current so uniforms can be set outside of DrawFrame.
func (r *Renderer) UseShader(shader metadata.ShaderID) (metadata.UniformSetter, error) {
	return r.backend.ShaderUse(shader)
}

func (r *Renderer) CreateTexture(image *metadata.ImageResourceData) (metadata.TextureID, error) {
	return r.backend.TextureCreate(image)
}

// LoadTexture reads an image from disk, flipped for the graphics API, and
// uploads it.
func (r *Renderer) LoadTexture(path string) (metadata.TextureID, error) {
	image, err := metadata.LoadImage(path, metadata.ImageResourceParams{FlipY: true})
	if err != nil {
		return metadata.InvalidTextureID, err
	}
	return r.backend.TextureCreate(image)
}

func (r *Renderer) DestroyTexture(texture metadata.TextureID) {
	r.backend.TextureDestroy(texture)
}

/**
 * @brief Validates config and uploads it.
 *
 * @return The geometry ready to be referenced by a RenderItem.
 */
func (r *Renderer) CreateGeometry(config *metadata.GeometryConfig, material *metadata.Material) (*metadata.Geometry, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	id, err := r.backend.GeometryCreate(config)
	if err != nil {
		return nil, fmt.Errorf("geometry %q: %w", config.Name, err)
	}
	return &metadata.Geometry{
		ID:        id,
		Name:      config.Name,
		DrawCount: config.DrawCount(),
		Indexed:   len(config.Indices) > 0,
		Material:  material,
	}, nil
}

func (r *Renderer) DestroyGeometry(geometry *metadata.Geometry) {
	r.backend.GeometryDestroy(geometry.ID)
}

/**
 * @brief Draws one frame. Every item gets the packet's projection, view and
 * view position plus its own model transform. When the item has a material
 * its uniforms are applied and its textures bound.
 */
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}

	drawErr := r.drawItems(packet)

	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return drawErr
}

func (r *Renderer) drawItems(packet *metadata.RenderPacket) error {
	for i := range packet.Items {
		item := &packet.Items[i]
		if item.Geometry == nil {
			continue
		}
		uniforms, err := r.backend.ShaderUse(item.Shader)
		if err != nil {
			return err
		}
		uniforms.SetUniformTransform(metadata.UNIFORM_PROJECTION, packet.Projection)
		uniforms.SetUniformTransform(metadata.UNIFORM_VIEW, packet.View)
		uniforms.SetUniformVector3(metadata.UNIFORM_VIEW_POSITION, packet.ViewPosition)
		uniforms.SetUniformTransform(metadata.UNIFORM_MODEL, item.Model)

		material := item.Material
		if material == nil {
			material = item.Geometry.Material
		}
		if material != nil {
			material.Apply(uniforms, metadata.UNIFORM_MATERIAL)
			for unit, texture := range material.Bindings() {
				if texture.IsValid() {
					r.backend.TextureBind(unit, texture)
				}
			}
		}

		if err := r.backend.GeometryDraw(item.Geometry); err != nil {
			return err
		}
	}
	return nil
}
