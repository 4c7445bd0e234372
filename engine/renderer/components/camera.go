package components

import (
	"github.com/Kargisa/newtons/engine/math"
)

type ProjectionKind uint8

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

/**
 * @brief Represents a camera looking at a target point. The view matrix is
 * rebuilt lazily whenever the position, target or up vector change.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/** @brief The point the camera looks at. Use SetTarget(). */
	Target math.Vec3
	/** @brief The world up direction used to build the view basis. */
	Up math.Vec3

	/** @brief Vertical field of view in radians. */
	FovRadians float32
	/** @brief Width divided by height of the target framebuffer. */
	AspectRatio float32
	/** @brief The near clipping plane distance. */
	Near float32
	/** @brief The far clipping plane distance. */
	Far float32
	/** @brief Perspective or orthographic projection. */
	Projection ProjectionKind
	/** @brief Half height of the orthographic view volume. */
	OrthoSize float32
	/** @brief Negate the projection Y axis, Vulkan clip space points Y down. */
	FlipY bool

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	isDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use View() instead
	 * so the view matrix is recalculated when needed.
	 */
	viewMatrix math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset places the camera at (0, 0, -10) looking at the origin with a
// 60 degree perspective projection.
func (c *Camera) Reset() {
	c.Position = math.NewVec3(0, 0, -10)
	c.Target = math.NewVec3Zero()
	c.Up = math.NewVec3Up()
	c.FovRadians = math.DegToRad(60)
	c.AspectRatio = 16.0 / 9.0
	c.Near = 0.01
	c.Far = 100.0
	c.Projection = ProjectionPerspective
	c.OrthoSize = 5.0
	c.FlipY = true
	c.isDirty = true
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.isDirty = true
}

func (c *Camera) SetTarget(target math.Vec3) {
	c.Target = target
	c.isDirty = true
}

func (c *Camera) SetUp(up math.Vec3) {
	c.Up = up
	c.isDirty = true
}

// SetAspect updates the aspect ratio from a framebuffer size. A zero height is ignored.
func (c *Camera) SetAspect(width, height uint32) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// View returns the world to camera matrix.
func (c *Camera) View() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = math.NewMat4LookAtUp(c.Position, c.Target, c.Up)
		c.isDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the camera to clip matrix, Y flipped if FlipY is set.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	var proj math.Mat4
	switch c.Projection {
	case ProjectionOrthographic:
		halfH := c.OrthoSize
		halfW := halfH * c.AspectRatio
		proj = math.NewMat4Orthographic(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	default:
		proj = math.NewMat4Perspective(c.FovRadians, c.AspectRatio, c.Near, c.Far)
	}
	if c.FlipY {
		proj = proj.FlipY()
	}
	return proj
}

// Forward returns the normalized view direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalized()
}

// Orbit rotates the camera position about the target around the up axis.
func (c *Camera) Orbit(yaw float32) {
	q := math.NewQuatFromAxisAngle(c.Up.Normalized(), yaw, true)
	offset := c.Position.Sub(c.Target)
	c.SetPosition(c.Target.Add(q.RotateVector(offset)))
}

func (c *Camera) MoveForward(amount float32) {
	direction := c.Forward().MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.Target = c.Target.Add(direction)
	c.isDirty = true
}

func (c *Camera) MoveUp(amount float32) {
	direction := c.Up.Normalized().MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.Target = c.Target.Add(direction)
	c.isDirty = true
}
