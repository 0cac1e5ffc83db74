package engine

import (
	"fmt"

	"github.com/spaghettifunk/lovely/engine/config"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
	"github.com/spaghettifunk/lovely/engine/systems"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name         string
	LogLevel     core.LogLevel
	RendererType metadata.RendererType
	ClearColour  [3]float32
	// Zero disables frame limiting.
	FrameLimit uint32
	Systems    systems.SystemManagerConfig
}

// NewApplicationConfig maps a validated configuration file onto the engine.
func NewApplicationConfig(cfg *config.Config) (*ApplicationConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var rendererType metadata.RendererType
	switch cfg.Renderer.Backend {
	case "opengl":
		rendererType = metadata.RENDERER_TYPE_OPENGL
	case "headless":
		rendererType = metadata.RENDERER_TYPE_HEADLESS
	default:
		return nil, fmt.Errorf("unknown renderer backend %q", cfg.Renderer.Backend)
	}
	return &ApplicationConfig{
		StartPosX:    cfg.Window.X,
		StartPosY:    cfg.Window.Y,
		StartWidth:   cfg.Window.Width,
		StartHeight:  cfg.Window.Height,
		Name:         cfg.Window.Name,
		LogLevel:     cfg.LogLevel(),
		RendererType: rendererType,
		ClearColour:  cfg.Renderer.ClearColour,
		FrameLimit:   cfg.Renderer.FrameLimit,
		Systems: systems.SystemManagerConfig{
			AssetBasePath:    cfg.Assets.Path,
			MaxCameraCount:   cfg.Assets.MaxCameraCount,
			MaxTextureCount:  cfg.Assets.MaxTextureCount,
			MaxShaderCount:   cfg.Assets.MaxShaderCount,
			MaxMaterialCount: cfg.Assets.MaxMaterialCount,
			JobWorkers:       cfg.Assets.JobWorkers,
			HotReload:        cfg.Assets.HotReload,
		},
	}, nil
}
