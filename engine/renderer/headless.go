package renderer

import (
	"fmt"

	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

// DrawCall is one GeometryDraw seen by the headless backend, with the
// uniforms of the program current at that time.
type DrawCall struct {
	Shader   metadata.ShaderID
	Geometry metadata.GeometryID
	Count    uint32
	Uniforms metadata.RecordingUniforms
	Textures map[metadata.TextureUnit]metadata.TextureID
}

/**
 * @brief A RendererBackend without a graphics API. It hands out ids and
 * records every frame's draw calls, which makes it usable in tests and on
 * machines without a display.
 */
type HeadlessBackend struct {
	Width, Height uint32
	ClearColour   [3]float32
	Frames        int
	// Draws holds the draw calls of the last completed frame.
	Draws []DrawCall

	pending  []DrawCall
	inFrame  bool
	nextID   uint32
	shaders  map[metadata.ShaderID]*metadata.RecordingUniforms
	textures map[metadata.TextureID]*metadata.ImageResourceData
	geometry map[metadata.GeometryID]*metadata.GeometryConfig
	bound    map[metadata.TextureUnit]metadata.TextureID
	current  metadata.ShaderID
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{
		shaders:  make(map[metadata.ShaderID]*metadata.RecordingUniforms),
		textures: make(map[metadata.TextureID]*metadata.ImageResourceData),
		geometry: make(map[metadata.GeometryID]*metadata.GeometryConfig),
		bound:    make(map[metadata.TextureUnit]metadata.TextureID),
	}
}

func (hb *HeadlessBackend) id() uint32 {
	hb.nextID++
	return hb.nextID
}

func (hb *HeadlessBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	hb.Width, hb.Height = appWidth, appHeight
	return nil
}

func (hb *HeadlessBackend) Shutdown() error {
	clear(hb.shaders)
	clear(hb.textures)
	clear(hb.geometry)
	return nil
}

func (hb *HeadlessBackend) Resized(width, height uint32) error {
	hb.Width, hb.Height = width, height
	return nil
}

func (hb *HeadlessBackend) BeginFrame(deltaTime float32) error {
	if hb.inFrame {
		return fmt.Errorf("BeginFrame called twice without EndFrame")
	}
	hb.inFrame = true
	hb.pending = hb.pending[:0]
	return nil
}

func (hb *HeadlessBackend) EndFrame(deltaTime float32) error {
	if !hb.inFrame {
		return fmt.Errorf("EndFrame called without BeginFrame")
	}
	hb.inFrame = false
	hb.Frames++
	hb.Draws = append([]DrawCall(nil), hb.pending...)
	return nil
}

func (hb *HeadlessBackend) SetClearColour(r, g, b float32) {
	hb.ClearColour = [3]float32{r, g, b}
}

func (hb *HeadlessBackend) ShaderCreate(source *metadata.ShaderSource) (metadata.ShaderID, error) {
	if source.Vertex == "" {
		return metadata.InvalidShaderID, &metadata.ShaderError{Stage: metadata.SHADER_STAGE_VERTEX, Log: "empty source"}
	}
	if source.Fragment == "" {
		return metadata.InvalidShaderID, &metadata.ShaderError{Stage: metadata.SHADER_STAGE_FRAGMENT, Log: "empty source"}
	}
	id := metadata.ShaderID(hb.id())
	hb.shaders[id] = metadata.NewRecordingUniforms()
	return id, nil
}

func (hb *HeadlessBackend) ShaderDestroy(shader metadata.ShaderID) {
	delete(hb.shaders, shader)
}

func (hb *HeadlessBackend) ShaderUse(shader metadata.ShaderID) (metadata.UniformSetter, error) {
	uniforms, ok := hb.shaders[shader]
	if !ok {
		return nil, fmt.Errorf("unknown shader %d", shader)
	}
	hb.current = shader
	return uniforms, nil
}

// Uniforms returns the values last written to shader's uniforms.
func (hb *HeadlessBackend) Uniforms(shader metadata.ShaderID) *metadata.RecordingUniforms {
	return hb.shaders[shader]
}

func (hb *HeadlessBackend) TextureCreate(image *metadata.ImageResourceData) (metadata.TextureID, error) {
	if image == nil || image.Width == 0 || image.Height == 0 {
		return metadata.InvalidTextureID, fmt.Errorf("cannot create a texture from an empty image")
	}
	id := metadata.TextureID(hb.id())
	hb.textures[id] = image
	return id, nil
}

func (hb *HeadlessBackend) TextureDestroy(texture metadata.TextureID) {
	delete(hb.textures, texture)
}

func (hb *HeadlessBackend) TextureBind(unit metadata.TextureUnit, texture metadata.TextureID) {
	hb.bound[unit] = texture
}

func (hb *HeadlessBackend) GeometryCreate(config *metadata.GeometryConfig) (metadata.GeometryID, error) {
	id := metadata.GeometryID(hb.id())
	hb.geometry[id] = config
	return id, nil
}

func (hb *HeadlessBackend) GeometryDestroy(geometry metadata.GeometryID) {
	delete(hb.geometry, geometry)
}

func (hb *HeadlessBackend) GeometryDraw(geometry *metadata.Geometry) error {
	if !hb.inFrame {
		return fmt.Errorf("GeometryDraw outside of a frame")
	}
	if _, ok := hb.geometry[geometry.ID]; !ok {
		return fmt.Errorf("unknown geometry %d", geometry.ID)
	}
	call := DrawCall{
		Shader:   hb.current,
		Geometry: geometry.ID,
		Count:    geometry.DrawCount,
		Textures: make(map[metadata.TextureUnit]metadata.TextureID, len(hb.bound)),
	}
	if uniforms := hb.shaders[hb.current]; uniforms != nil {
		call.Uniforms = snapshot(uniforms)
	}
	for unit, texture := range hb.bound {
		call.Textures[unit] = texture
	}
	hb.pending = append(hb.pending, call)
	return nil
}

func snapshot(r *metadata.RecordingUniforms) metadata.RecordingUniforms {
	c := *metadata.NewRecordingUniforms()
	for k, v := range r.Ints {
		c.Ints[k] = v
	}
	for k, v := range r.Floats {
		c.Floats[k] = v
	}
	for k, v := range r.Vectors {
		c.Vectors[k] = v
	}
	for k, v := range r.Transforms {
		c.Transforms[k] = v
	}
	c.Order = append(c.Order, r.Order...)
	return c
}
