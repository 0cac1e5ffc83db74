package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

/**
 * @brief RendererBackend on OpenGL 4.1 core. The context must be current on
 * the calling thread before Initialize; swap presents the back buffer at
 * EndFrame.
 */
type Backend struct {
	swap        func()
	clearColour [3]float32

	programs   map[metadata.ShaderID]*Program
	textures   map[metadata.TextureID]struct{}
	geometries map[metadata.GeometryID]*vertexArray
}

func New(swap func()) *Backend {
	return &Backend{
		swap:        swap,
		clearColour: [3]float32{0.2, 0.3, 0.3},
		programs:    make(map[metadata.ShaderID]*Program),
		textures:    make(map[metadata.TextureID]struct{}),
		geometries:  make(map[metadata.GeometryID]*vertexArray),
	}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	core.LogInfo("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(appWidth), int32(appHeight))
	return nil
}

func (b *Backend) Shutdown() error {
	for id := range b.geometries {
		b.GeometryDestroy(id)
	}
	for id := range b.textures {
		b.TextureDestroy(id)
	}
	for id := range b.programs {
		b.ShaderDestroy(id)
	}
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (b *Backend) SetClearColour(r, g, bl float32) {
	b.clearColour = [3]float32{r, g, bl}
}

func (b *Backend) BeginFrame(deltaTime float32) error {
	gl.ClearColor(b.clearColour[0], b.clearColour[1], b.clearColour[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (b *Backend) EndFrame(deltaTime float32) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x during frame", code)
	}
	if b.swap != nil {
		b.swap()
	}
	return nil
}

func (b *Backend) ShaderCreate(source *metadata.ShaderSource) (metadata.ShaderID, error) {
	program, err := NewProgram(source.Vertex, source.Fragment)
	if err != nil {
		return metadata.InvalidShaderID, err
	}
	id := metadata.ShaderID(program.id)
	b.programs[id] = program
	return id, nil
}

func (b *Backend) ShaderDestroy(shader metadata.ShaderID) {
	if program, ok := b.programs[shader]; ok {
		program.Delete()
		delete(b.programs, shader)
	}
}

func (b *Backend) ShaderUse(shader metadata.ShaderID) (metadata.UniformSetter, error) {
	program, ok := b.programs[shader]
	if !ok {
		return nil, fmt.Errorf("unknown shader %d", shader)
	}
	program.Bind()
	return program, nil
}

func (b *Backend) TextureCreate(image *metadata.ImageResourceData) (metadata.TextureID, error) {
	id, err := createTexture(image)
	if err != nil {
		return metadata.InvalidTextureID, err
	}
	b.textures[id] = struct{}{}
	return id, nil
}

func (b *Backend) TextureDestroy(texture metadata.TextureID) {
	if _, ok := b.textures[texture]; !ok {
		return
	}
	handle := uint32(texture)
	gl.DeleteTextures(1, &handle)
	delete(b.textures, texture)
}

func (b *Backend) TextureBind(unit metadata.TextureUnit, texture metadata.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(texture))
}

func (b *Backend) GeometryCreate(config *metadata.GeometryConfig) (metadata.GeometryID, error) {
	vao := newVertexArray(config)
	id := metadata.GeometryID(vao.vao)
	b.geometries[id] = vao
	return id, nil
}

func (b *Backend) GeometryDestroy(geometry metadata.GeometryID) {
	if vao, ok := b.geometries[geometry]; ok {
		vao.delete()
		delete(b.geometries, geometry)
	}
}

func (b *Backend) GeometryDraw(geometry *metadata.Geometry) error {
	vao, ok := b.geometries[geometry.ID]
	if !ok {
		return fmt.Errorf("unknown geometry %d", geometry.ID)
	}
	vao.draw()
	return nil
}
