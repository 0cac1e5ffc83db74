package systems

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

var ErrInvalidShaderConfig = errors.New("config.MaxShaderCount must be greater than 0")

/** @brief Configuration for the shader system. */
type ShaderSystemConfig struct {
	/** @brief The maximum number of shaders held in the system. */
	MaxShaderCount uint16
	/** @brief Directory holding <name>.vs and <name>.fs sources. */
	ShaderPath string
}

type ShaderSystem struct {
	// This system's configuration.
	Config *ShaderSystemConfig
	// A lookup table for shader name->id
	Lookup map[string]metadata.ShaderID
	// The identifier for the currently bound shader.
	CurrentShaderID metadata.ShaderID
	// sub systems
	renderer *renderer.Renderer
}

func NewShaderSystem(config *ShaderSystemConfig, r *renderer.Renderer) (*ShaderSystem, error) {
	if config.MaxShaderCount == 0 {
		err := fmt.Errorf("NewShaderSystem - %w", ErrInvalidShaderConfig)
		core.LogError(err.Error())
		return nil, err
	}
	return &ShaderSystem{
		Config:          config,
		Lookup:          make(map[string]metadata.ShaderID),
		CurrentShaderID: metadata.InvalidShaderID,
		renderer:        r,
	}, nil
}

/**
 * @brief Shuts down the shader system, destroying any shaders still in
 * existence.
 */
func (shaderSystem *ShaderSystem) Shutdown() error {
	for name, id := range shaderSystem.Lookup {
		shaderSystem.renderer.DestroyShader(id)
		delete(shaderSystem.Lookup, name)
	}
	shaderSystem.CurrentShaderID = metadata.InvalidShaderID
	return nil
}

/**
 * @brief Creates a new shader from source. Creating a name twice replaces
 * the old program.
 *
 * @param source The sources; source.Name becomes the lookup key.
 * @return The shader id, or the compile error.
 */
func (shaderSystem *ShaderSystem) CreateShader(source *metadata.ShaderSource) (metadata.ShaderID, error) {
	old, exists := shaderSystem.Lookup[source.Name]
	if !exists && len(shaderSystem.Lookup) >= int(shaderSystem.Config.MaxShaderCount) {
		return metadata.InvalidShaderID, fmt.Errorf("shader system cannot hold any more shaders, %d max", shaderSystem.Config.MaxShaderCount)
	}
	id, err := shaderSystem.renderer.CreateShader(source)
	if err != nil {
		core.LogError(err.Error())
		return metadata.InvalidShaderID, err
	}
	if exists {
		shaderSystem.renderer.DestroyShader(old)
		if shaderSystem.CurrentShaderID == old {
			shaderSystem.CurrentShaderID = metadata.InvalidShaderID
		}
	}
	shaderSystem.Lookup[source.Name] = id
	return id, nil
}

/**
 * @brief Reads <ShaderPath>/<name>.vs and <name>.fs and creates the shader.
 */
func (shaderSystem *ShaderSystem) LoadShader(name string) (metadata.ShaderID, error) {
	base := filepath.Join(shaderSystem.Config.ShaderPath, name)
	source, err := metadata.LoadShaderSource(name, base+".vs", base+".fs")
	if err != nil {
		return metadata.InvalidShaderID, err
	}
	return shaderSystem.CreateShader(source)
}

/**
 * @brief Returns the identifier of the shader with the given name.
 *
 * @param shaderName The name of the shader.
 * @return The shader id, if found; otherwise InvalidShaderID.
 */
func (shaderSystem *ShaderSystem) GetShaderID(shaderName string) metadata.ShaderID {
	id, ok := shaderSystem.Lookup[shaderName]
	if !ok {
		return metadata.InvalidShaderID
	}
	return id
}

/**
 * @brief Uses the shader with the given name.
 *
 * @param shaderName The name of the shader to use. Case sensitive.
 * @return The uniform setter of the shader.
 */
func (shaderSystem *ShaderSystem) UseShader(shaderName string) (metadata.UniformSetter, error) {
	id, ok := shaderSystem.Lookup[shaderName]
	if !ok {
		return nil, fmt.Errorf("shader with name `%s` not found", shaderName)
	}
	uniforms, err := shaderSystem.renderer.UseShader(id)
	if err != nil {
		return nil, err
	}
	shaderSystem.CurrentShaderID = id
	return uniforms, nil
}
