package systems

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

var (
	ErrInvalidTextureConfig = errors.New("config.MaxTextureCount must be > 0")
	ErrTextureRegistryFull  = errors.New("texture system cannot hold any more textures, adjust the configuration to allow more")
)

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be loaded at once. */
	MaxTextureCount uint32
	/** @brief Directory texture names are resolved against. */
	AssetBasePath string
}

/** @brief Called once an asynchronous acquire has finished. */
type TextureLoaded func(texture metadata.TextureID, err error)

type TextureReference struct {
	ReferenceCount uint64
	Handle         metadata.TextureID
	AutoRelease    bool
	// set while an asynchronous load is in flight
	loading bool
	waiters []TextureLoaded
}

type TextureSystem struct {
	Config *TextureSystemConfig
	// The checkerboard handed out for the default name.
	DefaultTexture metadata.TextureID
	// Hashtable for texture lookups.
	RegisteredTextureTable map[string]*TextureReference
	// sub systems
	jobSystem *JobSystem
	renderer  *renderer.Renderer
}

func NewTextureSystem(config *TextureSystemConfig, js *JobSystem, r *renderer.Renderer) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - %w", ErrInvalidTextureConfig)
		core.LogError(err.Error())
		return nil, err
	}
	return &TextureSystem{
		Config:                 config,
		RegisteredTextureTable: make(map[string]*TextureReference),
		jobSystem:              js,
		renderer:               r,
	}, nil
}

// Initialize uploads the default texture. The renderer must be initialized.
func (ts *TextureSystem) Initialize() error {
	id, err := ts.renderer.CreateTexture(metadata.GenerateCheckerboard(256))
	if err != nil {
		return fmt.Errorf("creating the default texture: %w", err)
	}
	ts.DefaultTexture = id
	return nil
}

func (ts *TextureSystem) Shutdown() error {
	// Destroy all loaded textures.
	for name, ref := range ts.RegisteredTextureTable {
		if ref.Handle.IsValid() {
			ts.renderer.DestroyTexture(ref.Handle)
		}
		delete(ts.RegisteredTextureTable, name)
	}
	if ts.DefaultTexture.IsValid() {
		ts.renderer.DestroyTexture(ts.DefaultTexture)
		ts.DefaultTexture = metadata.InvalidTextureID
	}
	return nil
}

func (ts *TextureSystem) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ts.Config.AssetBasePath, name)
}

func (ts *TextureSystem) reserve(name string, autoRelease bool) (*TextureReference, error) {
	if uint32(len(ts.RegisteredTextureTable)) >= ts.Config.MaxTextureCount {
		err := fmt.Errorf("texture '%s': %w", name, ErrTextureRegistryFull)
		core.LogError(err.Error())
		return nil, err
	}
	// AutoRelease can only be set the first time a texture is loaded.
	ref := &TextureReference{AutoRelease: autoRelease}
	ts.RegisteredTextureTable[name] = ref
	return ref, nil
}

/**
 * @brief Acquires the texture with the given name, loading it from the asset
 * directory on first use. The reference count is incremented either way.
 * The default name returns the default texture without counting.
 *
 * @param name Path of the image, relative to the asset directory.
 * @param autoRelease Destroy the texture once its count drops to zero.
 */
func (ts *TextureSystem) Acquire(name string, autoRelease bool) (metadata.TextureID, error) {
	if name == metadata.DEFAULT_TEXTURE_NAME {
		core.LogWarn("func texture system Acquire called for default texture. Use GetDefaultTexture for texture 'default'")
		return ts.DefaultTexture, nil
	}
	if ref, ok := ts.RegisteredTextureTable[name]; ok {
		if ref.loading {
			return metadata.InvalidTextureID, fmt.Errorf("texture '%s' is still loading", name)
		}
		ref.ReferenceCount++
		return ref.Handle, nil
	}

	ref, err := ts.reserve(name, autoRelease)
	if err != nil {
		return metadata.InvalidTextureID, err
	}
	id, err := ts.renderer.LoadTexture(ts.path(name))
	if err != nil {
		delete(ts.RegisteredTextureTable, name)
		core.LogError("Failed to load texture '%s': %s", name, err)
		return metadata.InvalidTextureID, err
	}
	ref.Handle = id
	ref.ReferenceCount = 1
	core.LogDebug("Texture '%s' does not yet exist. Created with id %d.", name, id)
	return id, nil
}

/**
 * @brief Like Acquire, but decodes the image on the job system. The upload
 * and the done callback happen in the JobSystem.Update that picks up the
 * result. If the texture is already loaded done is called right away.
 */
func (ts *TextureSystem) AcquireAsync(name string, autoRelease bool, done TextureLoaded) error {
	if name == metadata.DEFAULT_TEXTURE_NAME {
		done(ts.DefaultTexture, nil)
		return nil
	}
	if ref, ok := ts.RegisteredTextureTable[name]; ok {
		ref.ReferenceCount++
		if ref.loading {
			ref.waiters = append(ref.waiters, done)
		} else {
			done(ref.Handle, nil)
		}
		return nil
	}

	ref, err := ts.reserve(name, autoRelease)
	if err != nil {
		return err
	}
	ref.loading = true
	ref.ReferenceCount = 1
	ref.waiters = []TextureLoaded{done}

	return ts.jobSystem.Submit(JobTask{
		InputParams: ts.path(name),
		OnStart: func(params interface{}) (interface{}, error) {
			return metadata.LoadImage(params.(string), metadata.ImageResourceParams{FlipY: true})
		},
		OnComplete: func(result interface{}) {
			id, err := ts.renderer.CreateTexture(result.(*metadata.ImageResourceData))
			ts.finishLoad(name, id, err)
		},
		OnFailure: func(err error) {
			ts.finishLoad(name, metadata.InvalidTextureID, err)
		},
	})
}

func (ts *TextureSystem) finishLoad(name string, id metadata.TextureID, err error) {
	ref, ok := ts.RegisteredTextureTable[name]
	if !ok {
		// shut down while loading
		if err == nil {
			ts.renderer.DestroyTexture(id)
		}
		return
	}
	waiters := ref.waiters
	ref.waiters = nil
	ref.loading = false

	if err != nil {
		core.LogError("Failed to load texture '%s': %s", name, err)
		delete(ts.RegisteredTextureTable, name)
	} else {
		core.LogDebug("Successfully loaded texture '%s'.", name)
		ref.Handle = id
		if ref.ReferenceCount == 0 && ref.AutoRelease {
			// every holder released it while it was loading
			ts.renderer.DestroyTexture(id)
			delete(ts.RegisteredTextureTable, name)
		}
	}
	for _, w := range waiters {
		w(id, err)
	}
}

/**
 * @brief Releases a texture with the given name. Releasing the last
 * reference of an auto-release texture destroys it.
 */
func (ts *TextureSystem) Release(name string) {
	if name == metadata.DEFAULT_TEXTURE_NAME {
		return
	}
	ref, ok := ts.RegisteredTextureTable[name]
	if !ok {
		core.LogWarn("Tried to release non-existent texture: '%s'", name)
		return
	}
	if ref.ReferenceCount == 0 {
		core.LogWarn("Tried to release texture '%s' where autorelease=false, but references was already 0.", name)
		return
	}
	ref.ReferenceCount--
	if ref.ReferenceCount == 0 && ref.AutoRelease && !ref.loading {
		ts.renderer.DestroyTexture(ref.Handle)
		delete(ts.RegisteredTextureTable, name)
		core.LogDebug("Released texture '%s'. Texture unloaded because reference count=0 and AutoRelease=true.", name)
	}
}

// Get returns the handle of a loaded texture without counting a reference.
func (ts *TextureSystem) Get(name string) (metadata.TextureID, bool) {
	ref, ok := ts.RegisteredTextureTable[name]
	if !ok || ref.loading {
		return metadata.InvalidTextureID, false
	}
	return ref.Handle, true
}

func (ts *TextureSystem) GetDefaultTexture() metadata.TextureID {
	return ts.DefaultTexture
}
