package systems

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer/components"
)

var (
	ErrInvalidCameraConfig = errors.New("config.MaxCameraCount must be > 0")
	ErrCameraRegistryFull  = errors.New("camera system cannot hold any more cameras, adjust the configuration to allow more")
)

/** @brief A registered camera and the number of holders. */
type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *components.Camera
}

type CameraSystem struct {
	Config *CameraSystemConfig
	Lookup map[string]*CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
	nextID        uint16
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system, not counting the default camera.
	 */
	MaxCameraCount uint16
	/** @brief Builds newly registered cameras. Defaults to components.NewCamera. */
	NewCamera func() *components.Camera
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @return The system, or ErrInvalidCameraConfig.
 */
func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - %w", ErrInvalidCameraConfig)
		core.LogError(err.Error())
		return nil, err
	}
	if config.NewCamera == nil {
		config.NewCamera = components.NewCamera
	}
	return &CameraSystem{
		Config:        config,
		Lookup:        make(map[string]*CameraLookup, config.MaxCameraCount),
		DefaultCamera: config.NewCamera(),
	}, nil
}

/**
 * @brief Shuts down the camera system. Every registered camera is dropped.
 */
func (cs *CameraSystem) Shutdown() error {
	clear(cs.Lookup)
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and retuned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return A pointer to a camera, or ErrCameraRegistryFull.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		if len(cs.Lookup) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystemAcquire '%s': %w", name, ErrCameraRegistryFull)
			core.LogError(err.Error())
			return nil, err
		}
		core.LogDebug("Creating new camera named '%s'...", name)
		lookup = &CameraLookup{ID: cs.nextID, Camera: cs.Config.NewCamera()}
		cs.nextID++
		cs.Lookup[name] = lookup
	}
	lookup.ReferenceCount++
	return lookup.Camera, nil
}

/**
 * @brief Registers a camera under a fresh random name.
 *
 * @return The generated name, to be passed to Release, and the camera.
 */
func (cs *CameraSystem) AcquireAnonymous() (string, *components.Camera, error) {
	name := uuid.NewString()
	camera, err := cs.Acquire(name)
	if err != nil {
		return "", nil, err
	}
	return name, camera, nil
}

/**
 * @brief Releases a camera with the given name. Intenral reference
 * counter is decremented. If this reaches 0, the camera is reset,
 * and the name is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup for '%s'. Nothing was done.", name)
		return
	}
	// Decrement the reference count, and reset the camera if the counter reaches 0.
	lookup.ReferenceCount--
	if lookup.ReferenceCount < 1 {
		lookup.Camera.Reset()
		delete(cs.Lookup, name)
	}
}

// Get returns the camera registered under name without touching its
// reference count.
func (cs *CameraSystem) Get(name string) (*components.Camera, bool) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, true
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		return nil, false
	}
	return lookup.Camera, true
}

/**
 * @brief Gets a pointer to the default camera.
 *
 * @return A pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}

// Count returns the number of registered cameras, not counting the default.
func (cs *CameraSystem) Count() int {
	return len(cs.Lookup)
}
