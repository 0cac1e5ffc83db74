package components

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/lovely/engine/math"
)

const (
	/** @brief The name of the default camera. */
	DEFAULT_CAMERA_NAME string = "default"
	/** @brief Yaw of a reset camera; looks down -z. */
	DEFAULT_CAMERA_YAW float32 = -90.0
	/** @brief Default lower pitch bound, in degrees. */
	DEFAULT_PITCH_LOW float32 = -89.0
	/** @brief Default upper pitch bound, in degrees. */
	DEFAULT_PITCH_HIGH float32 = 89.0
)

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. Ideally,
 * these are created and managed by the camera system.
 *
 * A camera either derives its direction from yaw and pitch (Euler mode) or
 * keeps looking at a target point (target lock). The front, right and up
 * vectors are rebuilt at the end of every mutator, so the getters never
 * return stale values.
 */
type Camera struct {
	/** @brief The position of this camera. */
	position math.Vec3f
	/** @brief The up direction of the world, used to build the basis. */
	worldUp math.Vec3f
	/** @brief Derived: the direction the camera is facing. */
	front math.Vec3f
	/** @brief Derived: the camera's right direction. */
	right math.Vec3f
	/** @brief Derived: the camera's up direction. */
	up math.Vec3f

	/** @brief Yaw in degrees. */
	yaw float32
	/** @brief Pitch in degrees. */
	pitch float32

	clampPitch bool
	pitchLow   float32
	pitchHigh  float32

	/** @brief The point looked at while lockTarget is set. */
	target     math.Vec3f
	lockTarget bool
}

/**
 * @brief Creates a camera that looks in the direction given by yaw and
 * pitch (degrees). Target lock is off.
 *
 * @param position The position of the camera.
 * @param worldUp The up direction of the world.
 * @param pitch The initial pitch in degrees.
 * @param yaw The initial yaw in degrees.
 * @return A new camera.
 */
func NewEulerCamera(position, worldUp math.Vec3f, pitch, yaw float32) *Camera {
	c := &Camera{
		position:  position,
		worldUp:   worldUp,
		pitch:     pitch,
		yaw:       yaw,
		pitchLow:  DEFAULT_PITCH_LOW,
		pitchHigh: DEFAULT_PITCH_HIGH,
	}
	c.recalculate()
	return c
}

/**
 * @brief Creates a camera locked on target. Yaw and pitch start at zero and
 * only take effect once the lock is released.
 *
 * @param position The position of the camera.
 * @param worldUp The up direction of the world.
 * @param target The point to look at.
 * @return A new camera.
 */
func NewTargetCamera(position, worldUp, target math.Vec3f) *Camera {
	c := &Camera{
		position:   position,
		worldUp:    worldUp,
		target:     target,
		lockTarget: true,
		pitchLow:   DEFAULT_PITCH_LOW,
		pitchHigh:  DEFAULT_PITCH_HIGH,
	}
	c.recalculate()
	return c
}

// NewCamera returns a camera at the origin facing -z with +y as world up.
func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset puts the camera back at the origin in Euler mode facing -z, with
// pitch clamping disabled and the default bounds.
func (c *Camera) Reset() {
	*c = Camera{
		position:  math.NewVec3Zero[float32](),
		worldUp:   math.NewVec3Up[float32](),
		yaw:       DEFAULT_CAMERA_YAW,
		pitchLow:  DEFAULT_PITCH_LOW,
		pitchHigh: DEFAULT_PITCH_HIGH,
	}
	c.recalculate()
}

/**
 * @brief Computes the camera basis for the given state. With lock set the
 * front vector points from position to target, otherwise it is the
 * spherical direction of yaw and pitch (degrees). Right and up are
 * completed against worldUp.
 *
 * Degenerate input (target equal to position, front parallel to worldUp)
 * yields NaN components.
 *
 * @return front, right and up, each normalized.
 */
func DeriveBasis(lock bool, position, worldUp math.Vec3f, yaw, pitch float32, target math.Vec3f) (front, right, up math.Vec3f) {
	if lock {
		front = target.Sub(position).Normalize()
	} else {
		yawRad := math.ToRadians(yaw)
		pitchRad := math.ToRadians(pitch)
		front = math.NewVec3(
			math32.Cos(yawRad)*math32.Cos(pitchRad),
			math32.Sin(pitchRad),
			math32.Sin(yawRad)*math32.Cos(pitchRad),
		).Normalize()
	}
	right = front.Cross(worldUp).Normalize()
	up = right.Cross(front).Normalize()
	return front, right, up
}

func (c *Camera) recalculate() {
	c.front, c.right, c.up = DeriveBasis(c.lockTarget, c.position, c.worldUp, c.yaw, c.pitch, c.target)
}

func (c *Camera) applyPitchClamp() {
	if c.clampPitch {
		c.pitch = math.Clamp(c.pitch, c.pitchLow, c.pitchHigh)
	}
}

/**
 * @brief Moves the camera along the direction of offset. The offset is
 * normalized, so velocity alone sets the distance travelled.
 */
func (c *Camera) Move(offset math.Vec3f, velocity float32) {
	c.position.AddAssign(offset.Normalize().MulScalar(velocity))
	c.recalculate()
}

func (c *Camera) MoveXYZ(x, y, z, velocity float32) {
	c.Move(math.NewVec3(x, y, z), velocity)
}

func (c *Camera) MoveForward(amount float32) {
	c.Move(c.front, amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.Move(c.front.Neg(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.Move(c.right.Neg(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.Move(c.right, amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.Move(c.worldUp, amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.Move(c.worldUp.Neg(), amount)
}

/**
 * @brief Adds the scaled offsets to yaw and pitch, clamps pitch when enabled
 * and rebuilds the basis. While the target is locked the angles still
 * accumulate; they take effect once the lock is released.
 *
 * @param yawOffset Degrees added to yaw before scaling.
 * @param pitchOffset Degrees added to pitch before scaling.
 * @param sensitivity Multiplier applied to both offsets.
 */
func (c *Camera) Rotate(yawOffset, pitchOffset, sensitivity float32) {
	c.yaw += yawOffset * sensitivity
	c.pitch += pitchOffset * sensitivity
	c.applyPitchClamp()
	c.recalculate()
}

func (c *Camera) Yaw(amount float32) {
	c.Rotate(amount, 0, 1)
}

func (c *Camera) Pitch(amount float32) {
	c.Rotate(0, amount, 1)
}

func (c *Camera) SetPosition(position math.Vec3f) {
	c.position = position
	c.recalculate()
}

func (c *Camera) SetPositionXYZ(x, y, z float32) {
	c.SetPosition(math.NewVec3(x, y, z))
}

func (c *Camera) SetWorldUp(up math.Vec3f) {
	c.worldUp = up
	c.recalculate()
}

func (c *Camera) SetWorldUpXYZ(x, y, z float32) {
	c.SetWorldUp(math.NewVec3(x, y, z))
}

// SetRotation replaces yaw and pitch (degrees). Pitch is clamped when
// clamping is enabled.
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
	c.applyPitchClamp()
	c.recalculate()
}

func (c *Camera) SetTarget(target math.Vec3f) {
	c.target = target
	c.recalculate()
}

func (c *Camera) SetTargetXYZ(x, y, z float32) {
	c.SetTarget(math.NewVec3(x, y, z))
}

// ShouldLockTarget switches between target lock and Euler mode.
func (c *Camera) ShouldLockTarget(lock bool) {
	c.lockTarget = lock
	c.recalculate()
}

/**
 * @brief Enables or disables pitch clamping and sets its bounds. The stored
 * pitch is left as is; the bounds apply from the next Rotate or SetRotation.
 */
func (c *Camera) ClampPitch(enable bool, low, high float32) {
	c.clampPitch = enable
	c.pitchLow = low
	c.pitchHigh = high
}

func (c *Camera) GetPosition() math.Vec3f {
	return c.position
}

func (c *Camera) GetFront() math.Vec3f {
	return c.front
}

func (c *Camera) GetRight() math.Vec3f {
	return c.right
}

func (c *Camera) GetUp() math.Vec3f {
	return c.up
}

func (c *Camera) GetWorldUp() math.Vec3f {
	return c.worldUp
}

func (c *Camera) GetPitch() float32 {
	return c.pitch
}

func (c *Camera) GetYaw() float32 {
	return c.yaw
}

func (c *Camera) GetTarget() math.Vec3f {
	return c.target
}

func (c *Camera) IsTargetLocked() bool {
	return c.lockTarget
}

// IsPitchClamped returns the clamp flag and the current bounds.
func (c *Camera) IsPitchClamped() (enabled bool, low, high float32) {
	return c.clampPitch, c.pitchLow, c.pitchHigh
}

// GetView returns the view transform looking from the position along front.
func (c *Camera) GetView() math.Transform {
	return math.LookAt(c.position, c.position.Add(c.front), c.up)
}
