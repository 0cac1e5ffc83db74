package systems

import (
	"errors"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spaghettifunk/lovely/engine/assets"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

/** @brief Sizes and paths of the engine subsystems. */
type SystemManagerConfig struct {
	AssetBasePath    string
	MaxCameraCount   uint16
	MaxTextureCount  uint32
	MaxShaderCount   uint16
	MaxMaterialCount uint32
	// Zero picks one worker per CPU.
	JobWorkers int
	// Reload shaders and materials when their files change.
	HotReload bool
}

type SystemManager struct {
	AssetManager   *assets.AssetManager
	CameraSystem   *CameraSystem
	JobSystem      *JobSystem
	MaterialSystem *MaterialSystem
	ShaderSystem   *ShaderSystem
	TextureSystem  *TextureSystem

	hotReload bool
}

func NewSystemManager(config SystemManagerConfig, r *renderer.Renderer) (*SystemManager, error) {
	workers := config.JobWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	js, err := NewJobSystem(workers, 64)
	if err != nil {
		return nil, err
	}
	am, err := assets.NewAssetManager()
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	fail := func(err error) (*SystemManager, error) {
		js.Shutdown()
		am.Close()
		return nil, err
	}

	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: config.MaxCameraCount,
	})
	if err != nil {
		return fail(err)
	}
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: config.MaxTextureCount,
		AssetBasePath:   filepath.Join(config.AssetBasePath, "textures"),
	}, js, r)
	if err != nil {
		return fail(err)
	}
	ssys, err := NewShaderSystem(&ShaderSystemConfig{
		MaxShaderCount: config.MaxShaderCount,
		ShaderPath:     filepath.Join(config.AssetBasePath, "shaders"),
	}, r)
	if err != nil {
		return fail(err)
	}
	ms, err := NewMaterialSystem(&MaterialSystemConfig{
		MaxMaterialCount: config.MaxMaterialCount,
	}, am, ts)
	if err != nil {
		return fail(err)
	}
	if err := am.Initialize(config.AssetBasePath); err != nil {
		return fail(err)
	}
	return &SystemManager{
		AssetManager:   am,
		CameraSystem:   cs,
		JobSystem:      js,
		MaterialSystem: ms,
		ShaderSystem:   ssys,
		TextureSystem:  ts,
		hotReload:      config.HotReload,
	}, nil
}

// Initialize creates the GPU resources the systems own. The renderer must be
// initialized first.
func (sm *SystemManager) Initialize() error {
	if err := sm.TextureSystem.Initialize(); err != nil {
		return err
	}
	return sm.MaterialSystem.Initialize()
}

// Update dispatches finished jobs and applies asset changes. Call it once
// per frame on the thread that owns the graphics context.
func (sm *SystemManager) Update() {
	sm.JobSystem.Update()
	for {
		select {
		case e, ok := <-sm.AssetManager.Events():
			if !ok {
				return
			}
			if sm.hotReload {
				sm.onAssetChanged(e)
			}
		default:
			return
		}
	}
}

func (sm *SystemManager) onAssetChanged(e assets.AssetEvent) {
	if e.Removed {
		core.LogDebug("asset %s removed", e.Path)
		return
	}
	name := strings.TrimSuffix(path.Base(e.Path), path.Ext(e.Path))
	switch e.Type {
	case metadata.ResourceTypeShader:
		if _, ok := sm.ShaderSystem.Lookup[name]; !ok {
			return
		}
		// a failed compile keeps the running program
		if _, err := sm.ShaderSystem.LoadShader(name); err == nil {
			core.LogInfo("Shader '%s' reloaded.", name)
		}
	case metadata.ResourceTypeMaterial:
		if _, ok := sm.MaterialSystem.Lookup[name]; !ok {
			return
		}
		if err := sm.MaterialSystem.Reload(name); err != nil {
			core.LogError("Failed to reload material '%s': %s", name, err)
		}
	default:
		core.LogDebug("asset %s changed, %s assets are not reloaded", e.Path, e.Type)
	}
}

// Shutdown stops every subsystem even when one of them fails, so GPU
// handles are always released. The errors are joined.
func (sm *SystemManager) Shutdown() error {
	return errors.Join(
		sm.JobSystem.Shutdown(),
		sm.AssetManager.Close(),
		sm.MaterialSystem.Shutdown(),
		sm.ShaderSystem.Shutdown(),
		sm.TextureSystem.Shutdown(),
		sm.CameraSystem.Shutdown(),
	)
}
