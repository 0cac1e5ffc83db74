package systems

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

var (
	ErrInvalidMaterialConfig = errors.New("config.MaxMaterialCount must be > 0")
	ErrMaterialRegistryFull  = errors.New("material system cannot hold any more materials, adjust the configuration to allow more")
)

/** @brief Default specular exponent of materials that do not set one. */
const DEFAULT_MATERIAL_SHININESS float32 = 32.0

/** @brief Source of material files, usually the asset manager. */
type MaterialSource interface {
	LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error)
}

type MaterialSystemConfig struct {
	/** @brief The maximum number of loaded materials, not counting the default. */
	MaxMaterialCount uint32
}

type MaterialReference struct {
	ReferenceCount uint64
	AutoRelease    bool
	Config         metadata.MaterialConfig
	Material       *metadata.Material
}

/**
 * @brief Loads material files and resolves their texture maps through the
 * texture system. Acquired materials are shared: reloading a material
 * updates the same *metadata.Material every holder points at.
 */
type MaterialSystem struct {
	Config          *MaterialSystemConfig
	DefaultMaterial *metadata.Material
	Lookup          map[string]*MaterialReference
	// sub systems
	source   MaterialSource
	textures *TextureSystem
}

func NewMaterialSystem(config *MaterialSystemConfig, source MaterialSource, textures *TextureSystem) (*MaterialSystem, error) {
	if config.MaxMaterialCount == 0 {
		err := fmt.Errorf("func NewMaterialSystem - %w", ErrInvalidMaterialConfig)
		core.LogError(err.Error())
		return nil, err
	}
	return &MaterialSystem{
		Config:   config,
		Lookup:   make(map[string]*MaterialReference),
		source:   source,
		textures: textures,
	}, nil
}

// Initialize builds the default material from the default texture. The
// texture system must be initialized first.
func (ms *MaterialSystem) Initialize() error {
	ms.DefaultMaterial = &metadata.Material{
		DiffuseMapID:  ms.textures.GetDefaultTexture(),
		SpecularMapID: ms.textures.GetDefaultTexture(),
		Shininess:     DEFAULT_MATERIAL_SHININESS,
	}
	return nil
}

func (ms *MaterialSystem) Shutdown() error {
	for name, ref := range ms.Lookup {
		ms.releaseMaps(&ref.Config)
		delete(ms.Lookup, name)
	}
	return nil
}

/**
 * @brief Acquires the material with the given name, loading
 * materials/<name>.toml on first use. The default name returns the default
 * material without counting.
 */
func (ms *MaterialSystem) Acquire(name string) (*metadata.Material, error) {
	if name == metadata.DefaultMaterialName {
		return ms.DefaultMaterial, nil
	}
	if ref, ok := ms.Lookup[name]; ok {
		ref.ReferenceCount++
		return ref.Material, nil
	}

	config, err := ms.load(name)
	if err != nil {
		core.LogError("Failed to load material '%s': %s", name, err)
		return nil, err
	}
	return ms.AcquireFromConfig(config)
}

/**
 * @brief Registers a material under config.Name without reading any file.
 * If the name is already registered the existing material is returned.
 */
func (ms *MaterialSystem) AcquireFromConfig(config *metadata.MaterialConfig) (*metadata.Material, error) {
	if config.Name == metadata.DefaultMaterialName {
		return ms.DefaultMaterial, nil
	}
	if ref, ok := ms.Lookup[config.Name]; ok {
		ref.ReferenceCount++
		return ref.Material, nil
	}
	if uint32(len(ms.Lookup)) >= ms.Config.MaxMaterialCount {
		err := fmt.Errorf("material '%s': %w", config.Name, ErrMaterialRegistryFull)
		core.LogError(err.Error())
		return nil, err
	}

	material := &metadata.Material{}
	ms.resolve(config, material)
	ms.Lookup[config.Name] = &MaterialReference{
		ReferenceCount: 1,
		AutoRelease:    config.AutoRelease,
		Config:         *config,
		Material:       material,
	}
	core.LogDebug("Material '%s' created with shader '%s'.", config.Name, config.ShaderName)
	return material, nil
}

/**
 * @brief Re-reads the file of a loaded material and updates it in place.
 * On error the material keeps its previous values.
 */
func (ms *MaterialSystem) Reload(name string) error {
	ref, ok := ms.Lookup[name]
	if !ok {
		return fmt.Errorf("material '%s' is not loaded", name)
	}
	config, err := ms.load(name)
	if err != nil {
		return err
	}
	previous := ref.Config
	ms.resolve(config, ref.Material)
	ms.releaseMaps(&previous)
	ref.Config = *config
	core.LogInfo("Material '%s' reloaded.", name)
	return nil
}

// Release drops one reference. The last reference of an auto-release
// material unloads it along with its texture references.
func (ms *MaterialSystem) Release(name string) {
	if name == metadata.DefaultMaterialName {
		return
	}
	ref, ok := ms.Lookup[name]
	if !ok {
		core.LogWarn("Tried to release non-existent material: '%s'", name)
		return
	}
	if ref.ReferenceCount == 0 {
		core.LogWarn("Tried to release material '%s' where autorelease=false, but references was already 0.", name)
		return
	}
	ref.ReferenceCount--
	if ref.ReferenceCount == 0 && ref.AutoRelease {
		ms.releaseMaps(&ref.Config)
		delete(ms.Lookup, name)
	}
}

// Get returns a loaded material without counting a reference.
func (ms *MaterialSystem) Get(name string) (*metadata.Material, bool) {
	if name == metadata.DefaultMaterialName {
		return ms.DefaultMaterial, true
	}
	ref, ok := ms.Lookup[name]
	if !ok {
		return nil, false
	}
	return ref.Material, true
}

// ShaderName returns the shader a loaded material is drawn with.
func (ms *MaterialSystem) ShaderName(name string) (string, bool) {
	ref, ok := ms.Lookup[name]
	if !ok {
		return "", false
	}
	return ref.Config.ShaderName, true
}

func (ms *MaterialSystem) GetDefault() *metadata.Material {
	return ms.DefaultMaterial
}

func (ms *MaterialSystem) load(name string) (*metadata.MaterialConfig, error) {
	res, err := ms.source.LoadAsset(name, metadata.ResourceTypeMaterial, nil)
	if err != nil {
		return nil, err
	}
	config, ok := res.Data.(*metadata.MaterialConfig)
	if !ok {
		return nil, fmt.Errorf("resource '%s' is not a material", name)
	}
	if config.Name != name {
		core.LogWarn("Material file '%s' declares name '%s', using '%s'.", name, config.Name, name)
		config.Name = name
	}
	return config, nil
}

func (ms *MaterialSystem) resolve(config *metadata.MaterialConfig, material *metadata.Material) {
	material.DiffuseMapID = ms.acquireMap(config.DiffuseMapName)
	material.SpecularMapID = ms.acquireMap(config.SpecularMapName)
	material.Shininess = config.Shininess
	if material.Shininess == 0 {
		material.Shininess = DEFAULT_MATERIAL_SHININESS
	}
}

func (ms *MaterialSystem) acquireMap(name string) metadata.TextureID {
	if name == "" {
		return ms.textures.GetDefaultTexture()
	}
	id, err := ms.textures.Acquire(name, true)
	if err != nil {
		core.LogWarn("Using the default texture in place of '%s': %s", name, err)
		return ms.textures.GetDefaultTexture()
	}
	return id
}

func (ms *MaterialSystem) releaseMaps(config *metadata.MaterialConfig) {
	for _, name := range []string{config.DiffuseMapName, config.SpecularMapName} {
		if name != "" {
			ms.textures.Release(name)
		}
	}
}
