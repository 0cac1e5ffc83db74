package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/math"
	"github.com/spaghettifunk/lovely/engine/renderer/components"
)

var ErrInvalidConfig = errors.New("invalid configuration")

/**
 * @brief The engine configuration, usually read from lovely.toml. Every
 * field has a default, so a file only needs the keys it changes.
 */
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Log      LogConfig      `toml:"log"`
	Renderer RendererConfig `toml:"renderer"`
	Assets   AssetsConfig   `toml:"assets"`
	Camera   CameraConfig   `toml:"camera"`
}

type WindowConfig struct {
	// The application name used in windowing.
	Name string `toml:"name"`
	// Window starting position.
	X uint32 `toml:"x"`
	Y uint32 `toml:"y"`
	// Window starting size.
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type LogConfig struct {
	// One of debug, info, warn, error, fatal.
	Level string `toml:"level"`
}

type RendererConfig struct {
	// "opengl" or "headless".
	Backend     string     `toml:"backend"`
	ClearColour [3]float32 `toml:"clear_colour"`
	// Upper bound on frames per second. Zero runs unbounded.
	FrameLimit uint32 `toml:"frame_limit"`
}

type AssetsConfig struct {
	Path             string `toml:"path"`
	HotReload        bool   `toml:"hot_reload"`
	MaxCameraCount   uint16 `toml:"max_camera_count"`
	MaxTextureCount  uint32 `toml:"max_texture_count"`
	MaxShaderCount   uint16 `toml:"max_shader_count"`
	MaxMaterialCount uint32 `toml:"max_material_count"`
	// Zero picks one worker per CPU.
	JobWorkers int `toml:"job_workers"`
}

/**
 * @brief The starting state of the world camera and the projection it is
 * rendered with. Angles are in degrees.
 */
type CameraConfig struct {
	Position    [3]float32   `toml:"position"`
	WorldUp     [3]float32   `toml:"world_up"`
	Yaw         float32      `toml:"yaw"`
	Pitch       float32      `toml:"pitch"`
	FOV         float32      `toml:"fov"`
	Near        float32      `toml:"near"`
	Far         float32      `toml:"far"`
	Speed       float32      `toml:"speed"`
	Sensitivity float32      `toml:"sensitivity"`
	ClampPitch  bool         `toml:"clamp_pitch"`
	PitchLow    float32      `toml:"pitch_low"`
	PitchHigh   float32      `toml:"pitch_high"`
	Target      TargetConfig `toml:"target"`
}

type TargetConfig struct {
	Enabled  bool       `toml:"enabled"`
	Position [3]float32 `toml:"position"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Name:   "Lovely",
			X:      100,
			Y:      100,
			Width:  800,
			Height: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
		Renderer: RendererConfig{
			Backend:     "opengl",
			ClearColour: [3]float32{0.2, 0.3, 0.3},
			FrameLimit:  60,
		},
		Assets: AssetsConfig{
			Path:             "assets",
			HotReload:        true,
			MaxCameraCount:   61,
			MaxTextureCount:  65536,
			MaxShaderCount:   1024,
			MaxMaterialCount: 4096,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			WorldUp:     [3]float32{0, 1, 0},
			Yaw:         components.DEFAULT_CAMERA_YAW,
			Pitch:       0,
			FOV:         45,
			Near:        0.1,
			Far:         100,
			Speed:       2.5,
			Sensitivity: 0.1,
			ClampPitch:  true,
			PitchLow:    components.DEFAULT_PITCH_LOW,
			PitchHigh:   components.DEFAULT_PITCH_HIGH,
		},
	}
}

// Parse decodes a TOML document on top of the defaults and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width == 0 || c.Window.Height == 0 {
		invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := core.ParseLogLevel(c.Log.Level); err != nil {
		invalid("log.level %q", c.Log.Level)
	}
	switch c.Renderer.Backend {
	case "opengl", "headless":
	default:
		invalid("renderer.backend must be opengl or headless, got %q", c.Renderer.Backend)
	}
	if c.Assets.MaxCameraCount == 0 || c.Assets.MaxTextureCount == 0 ||
		c.Assets.MaxShaderCount == 0 || c.Assets.MaxMaterialCount == 0 {
		invalid("asset capacities must be positive")
	}
	if c.Assets.JobWorkers < 0 {
		invalid("assets.job_workers must not be negative")
	}

	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		invalid("camera.fov must be in (0, 180), got %g", cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		invalid("camera planes need 0 < near < far, got near=%g far=%g", cam.Near, cam.Far)
	}
	if cam.PitchLow > cam.PitchHigh {
		invalid("camera.pitch_low %g is above pitch_high %g", cam.PitchLow, cam.PitchHigh)
	}
	if cam.WorldUp == [3]float32{} {
		invalid("camera.world_up must not be zero")
	}
	if cam.Target.Enabled && cam.Target.Position == cam.Position {
		invalid("camera.target.position must differ from camera.position")
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() core.LogLevel {
	level, err := core.ParseLogLevel(c.Log.Level)
	if err != nil {
		return core.LogLevelInfo
	}
	return level
}

/**
 * @brief Creates a camera with the configured state: target locked when the
 * target is enabled, Euler otherwise. Pitch clamping is applied as well.
 */
func (cc CameraConfig) NewCamera() *components.Camera {
	c := components.NewCamera()
	cc.Apply(c)
	return c
}

/**
 * @brief Moves an existing camera to the configured state. Used when the
 * configuration is reloaded, so holders of the camera keep their pointer.
 */
func (cc CameraConfig) Apply(c *components.Camera) {
	c.ClampPitch(cc.ClampPitch, cc.PitchLow, cc.PitchHigh)
	c.SetWorldUp(math.Vec3f(cc.WorldUp))
	c.SetPosition(math.Vec3f(cc.Position))
	c.SetRotation(cc.Yaw, cc.Pitch)
	c.SetTarget(math.Vec3f(cc.Target.Position))
	c.ShouldLockTarget(cc.Target.Enabled)
}

// Projection returns the perspective transform for the given aspect ratio.
func (cc CameraConfig) Projection(aspect float32) math.Transform {
	return math.Perspective(math.ToRadians(cc.FOV), aspect, cc.Near, cc.Far)
}
