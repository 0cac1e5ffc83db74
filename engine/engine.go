package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spaghettifunk/lovely/engine/config"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
	"github.com/spaghettifunk/lovely/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has released every subsystem
	EngineStageShutdown
)

var ErrEngineStage = errors.New("engine is in the wrong stage")

/** @brief The window and OS services the engine runs on. */
type Platform interface {
	Startup(applicationName string, x, y, width, height uint32) error
	// PumpMessages returns false once the window wants to close.
	PumpMessages() bool
	GetAbsoluteTime() float64
	SetCursorCaptured(captured bool)
	Shutdown() error
}

/**
 * @brief What the engine runs on. Platform and Backend are required; Events
 * and Input are created when nil, and must be the instances the platform
 * feeds otherwise. ConfigUpdates is optional.
 */
type Dependencies struct {
	Platform      Platform
	Backend       renderer.RendererBackend
	Events        *core.EventSystem
	Input         *core.InputState
	ConfigUpdates <-chan *config.Config
}

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	platform      Platform
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	events        *core.EventSystem
	input         *core.InputState
	configUpdates <-chan *config.Config
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.Metrics
}

func New(g *Game, deps Dependencies) (*Engine, error) {
	if g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game has no application config")
	}
	if deps.Platform == nil || deps.Backend == nil {
		return nil, fmt.Errorf("engine needs a platform and a renderer backend")
	}
	if deps.Events == nil {
		deps.Events = core.NewEventSystem()
	}
	if deps.Input == nil {
		deps.Input = core.NewInputState(deps.Events)
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	e := &Engine{
		currentStage:  EngineStageBooting,
		gameInstance:  g,
		platform:      deps.Platform,
		renderer:      renderer.New(deps.Backend),
		events:        deps.Events,
		input:         deps.Input,
		configUpdates: deps.ConfigUpdates,
		clock:         core.NewClock(),
		metrics:       core.NewMetrics(),
		width:         g.ApplicationConfig.StartWidth,
		height:        g.ApplicationConfig.StartHeight,
	}
	sm, err := systems.NewSystemManager(g.ApplicationConfig.Systems, e.renderer)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	e.systemManager = sm

	g.SystemManager = sm
	g.Renderer = e.renderer
	g.Events = e.events
	g.Input = e.input
	g.Platform = e.platform

	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("%w: Initialize called in stage %d", ErrEngineStage, e.currentStage)
	}
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.platform.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight); err != nil {
		return err
	}

	// initialize subsystems
	if err := e.renderer.Initialize(cfg.Name, cfg.StartWidth, cfg.StartHeight); err != nil {
		return err
	}
	e.renderer.SetClearColour(cfg.ClearColour[0], cfg.ClearColour[1], cfg.ClearColour[2])

	if err := e.systemManager.Initialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

/**
 * @brief Runs the frame loop until the window closes, the application quit
 * event fires, ctx is cancelled or the game returns an error.
 */
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: Run called in stage %d", ErrEngineStage, e.currentStage)
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	e.clock.Start()
	e.clock.Update()

	var targetFrameSeconds float64
	if limit := e.gameInstance.ApplicationConfig.FrameLimit; limit > 0 {
		targetFrameSeconds = 1.0 / float64(limit)
	}

	for e.isRunning {
		if ctx.Err() != nil {
			break
		}
		if !e.platform.PumpMessages() {
			e.isRunning = false
			break
		}
		e.applyConfigUpdates()

		if e.isSuspended {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		delta := e.clock.Delta()
		frameStartTime := e.platform.GetAbsoluteTime()

		e.systemManager.Update()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down: %s", err)
			return err
		}

		packet := &metadata.RenderPacket{DeltaTime: delta}
		// Call the game's render routine.
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			core.LogError("Game render failed, shutting down: %s", err)
			return err
		}
		if err := e.renderer.DrawFrame(packet); err != nil {
			core.LogError("Frame skipped: %s", err)
		}

		// Figure out how long the frame took and, if below the target,
		// give the rest back to the OS.
		frameElapsedTime := e.platform.GetAbsoluteTime() - frameStartTime
		if remaining := targetFrameSeconds - frameElapsedTime; remaining > 0 {
			time.Sleep(time.Duration(remaining * float64(time.Second)))
		}
		e.metrics.Update(frameElapsedTime)

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		e.input.Update()
	}
	e.isRunning = false
	return nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown || e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	var errs []error
	if fn := e.gameInstance.FnShutdown; fn != nil {
		errs = append(errs, fn())
	}
	errs = append(errs,
		e.systemManager.Shutdown(),
		e.renderer.Shutdown(),
		e.events.Shutdown(),
		e.platform.Shutdown(),
	)
	e.currentStage = EngineStageShutdown
	return errors.Join(errs...)
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// Metrics returns the frames per second and the average frame time in
// milliseconds.
func (e *Engine) Metrics() (float64, float64) {
	return e.metrics.Frame()
}

func (e *Engine) applyConfigUpdates() {
	if e.configUpdates == nil {
		return
	}
	select {
	case cfg, ok := <-e.configUpdates:
		if !ok {
			e.configUpdates = nil
			return
		}
		core.SetLogLevel(cfg.LogLevel())
		c := cfg.Renderer.ClearColour
		e.renderer.SetClearColour(c[0], c[1], c[2])
		e.events.Fire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})
	default:
	}
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		e.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return false
}
