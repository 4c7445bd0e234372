package testbed

import (
	"github.com/Kargisa/newtons/engine"
	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/math"
	"github.com/Kargisa/newtons/engine/renderer/components"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
)

type gameState struct {
	// Camera orbit speed around its target, in radians per second.
	orbitSpeed float32
	elapsed    float64
	width      uint32
	height     uint32
}

/**
 * @brief A game that slowly orbits the scene camera around its target,
 * useful to check a scene from every side.
 *
 * @param scene The scene to drive.
 * @param orbitDegrees Orbit speed in degrees per second. Zero keeps the camera still.
 */
func NewTestGame(scene *metadata.SceneConfig, orbitDegrees float32) *engine.Game {
	g := engine.NewGame(scene)
	state := &gameState{
		orbitSpeed: math.DegToRad(orbitDegrees),
		width:      g.ApplicationConfig.StartWidth,
		height:     g.ApplicationConfig.StartHeight,
	}
	g.State = state

	g.FnInitialize = func() error {
		core.LogInfo("testbed running '%s' (%dx%d)", g.ApplicationConfig.Name, state.width, state.height)
		return nil
	}
	g.FnUpdate = state.update
	g.FnOnResize = func(width, height uint32) error {
		state.width = width
		state.height = height
		return nil
	}
	return g
}

func (s *gameState) update(camera *components.Camera, deltaTime float64) error {
	s.elapsed += deltaTime
	if s.orbitSpeed != 0 {
		camera.Orbit(s.orbitSpeed * float32(deltaTime))
		core.LogDebug("t=%.2f Pos:[%.2f, %.2f, %.2f]", s.elapsed, camera.Position.X, camera.Position.Y, camera.Position.Z)
	}
	return nil
}
