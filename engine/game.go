package engine

import (
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
	"github.com/spaghettifunk/lovely/engine/systems"
)

/**
 * @brief The application driven by the engine. The engine fills in the
 * services below before FnInitialize is called.
 */
type Game struct {
	ApplicationConfig *ApplicationConfig
	SystemManager     *systems.SystemManager
	Renderer          *renderer.Renderer
	Events            *core.EventSystem
	Input             *core.InputState
	Platform          Platform
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	// Optional.
	FnShutdown Shutdown
}

type Initialize func() error
type Update func(deltaTime float32) error

// Render fills packet with the items to draw this frame.
type Render func(packet *metadata.RenderPacket, deltaTime float32) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
