package testbed

import (
	"github.com/spaghettifunk/lovely/engine"
	"github.com/spaghettifunk/lovely/engine/config"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/math"
	"github.com/spaghettifunk/lovely/engine/renderer/components"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

const (
	SHADER_NAME   = "basic"
	MATERIAL_NAME = "crate"
	// Degrees per second the cube spins.
	CUBE_SPIN_SPEED float32 = 50.0
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	WorldCamera *components.Camera
	CameraCfg   config.CameraConfig

	width  uint32
	height uint32
	// Seconds since the first update.
	time float32

	shader   metadata.ShaderID
	cube     *metadata.Geometry
	material *metadata.Material

	mouseLook bool
}

func NewTestGame(cfg *config.Config) (*TestGame, error) {
	appConfig, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		return nil, err
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: appConfig,
			State: &gameState{
				CameraCfg: cfg.Camera,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("initializing testbed...")
	state := g.State.(*gameState)

	state.WorldCamera = g.SystemManager.CameraSystem.GetDefault()
	state.CameraCfg.Apply(state.WorldCamera)

	shader, err := g.SystemManager.ShaderSystem.LoadShader(SHADER_NAME)
	if err != nil {
		return err
	}
	state.shader = shader

	material, err := g.SystemManager.MaterialSystem.Acquire(MATERIAL_NAME)
	if err != nil {
		core.LogWarn("Using the default material: %s", err)
		material = g.SystemManager.MaterialSystem.GetDefault()
	}
	state.material = material

	cube, err := g.Renderer.CreateGeometry(metadata.GenerateCubeConfig("cube", MATERIAL_NAME), material)
	if err != nil {
		return err
	}
	state.cube = cube

	g.Events.Register(core.EVENT_CODE_KEY_PRESSED, g, g.onKey)
	g.Events.Register(core.EVENT_CODE_CONFIG_RELOADED, g, g.onConfigReloaded)

	return nil
}

func (g *TestGame) Update(deltaTime float32) error {
	state := g.State.(*gameState)
	state.time += deltaTime

	camera := state.WorldCamera
	velocity := state.CameraCfg.Speed * deltaTime

	if g.Input.IsKeyDown(core.KEY_W) || g.Input.IsKeyDown(core.KEY_UP) {
		camera.MoveForward(velocity)
	}
	if g.Input.IsKeyDown(core.KEY_S) || g.Input.IsKeyDown(core.KEY_DOWN) {
		camera.MoveBackward(velocity)
	}
	if g.Input.IsKeyDown(core.KEY_A) || g.Input.IsKeyDown(core.KEY_LEFT) {
		camera.MoveLeft(velocity)
	}
	if g.Input.IsKeyDown(core.KEY_D) || g.Input.IsKeyDown(core.KEY_RIGHT) {
		camera.MoveRight(velocity)
	}
	if g.Input.IsKeyDown(core.KEY_SPACE) {
		camera.MoveUp(velocity)
	}
	if g.Input.IsKeyDown(core.KEY_LSHIFT) {
		camera.MoveDown(velocity)
	}

	if state.mouseLook {
		offset := g.Input.CursorOffset()
		if offset.X() != 0 || offset.Y() != 0 {
			camera.Rotate(offset.X(), offset.Y(), state.CameraCfg.Sensitivity)
		}
	}

	if g.Input.IsKeyPressed(core.KEY_P) {
		pos := camera.GetPosition()
		core.LogDebug("Camera pos=[%.2f, %.2f, %.2f] yaw=%.2f pitch=%.2f locked=%v",
			pos.X(), pos.Y(), pos.Z(), camera.GetYaw(), camera.GetPitch(), camera.IsTargetLocked())
	}
	return nil
}

func (g *TestGame) Render(packet *metadata.RenderPacket, deltaTime float32) error {
	state := g.State.(*gameState)

	aspect := float32(1)
	if state.height > 0 {
		aspect = float32(state.width) / float32(state.height)
	}
	packet.Projection = state.CameraCfg.Projection(aspect)
	packet.View = state.WorldCamera.GetView()
	packet.ViewPosition = state.WorldCamera.GetPosition()

	packet.Items = append(packet.Items, metadata.RenderItem{
		Shader:   state.shader,
		Geometry: state.cube,
		Model:    CubeModel(state.time),
		Material: state.material,
	})
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	if state.cube != nil {
		g.Renderer.DestroyGeometry(state.cube)
		state.cube = nil
	}
	g.SystemManager.MaterialSystem.Release(MATERIAL_NAME)
	return nil
}

// CubeModel returns the model transform of the spinning cube at time t
// seconds.
func CubeModel(t float32) math.Transform {
	return math.Identity().RotateXYZ(0.5, 1.0, 0.0, t*math.ToRadians(CUBE_SPIN_SPEED))
}

func (g *TestGame) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	state := g.State.(*gameState)

	switch ke.KeyCode {
	case core.KEY_L:
		// keep looking at the cube, or go back to yaw/pitch
		locked := !state.WorldCamera.IsTargetLocked()
		state.WorldCamera.SetTarget(math.NewVec3Zero[float32]())
		state.WorldCamera.ShouldLockTarget(locked)
		core.LogInfo("Camera target lock: %v", locked)
		return true
	case core.KEY_M:
		state.mouseLook = !state.mouseLook
		g.Platform.SetCursorCaptured(state.mouseLook)
		return true
	case core.KEY_R:
		state.CameraCfg.Apply(state.WorldCamera)
		return true
	}
	return false
}

func (g *TestGame) onConfigReloaded(context core.EventContext) bool {
	cfg, ok := context.Data.(*config.Config)
	if !ok {
		return false
	}
	state := g.State.(*gameState)
	state.CameraCfg = cfg.Camera
	state.CameraCfg.Apply(state.WorldCamera)
	return false
}
