package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/Kargisa/newtons/engine/assets"
	"github.com/Kargisa/newtons/engine/assets/loaders"
	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/math"
	"github.com/Kargisa/newtons/engine/renderer"
	"github.com/Kargisa/newtons/engine/renderer/components"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
	"github.com/Kargisa/newtons/engine/systems"
	"golang.org/x/sync/errgroup"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine scene is built and ready to run
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *ApplicationConfig
	assetManager *assets.AssetManager
	geometry     *systems.GeometrySystem
	camera       *components.Camera
	meshes       []*metadata.Mesh
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	frame        uint64
}

/**
 * @brief Builds the camera and the mesh hierarchy described by the game scene.
 *
 * @param g The game. Its scene is defaulted and validated.
 * @return The engine, or an error wrapping core.ErrInvalidScene.
 */
func New(g *Game) (*Engine, error) {
	if g == nil {
		g = NewGame(nil)
	}
	if g.Scene == nil {
		g.Scene = &metadata.SceneConfig{}
	}
	loaders.ApplySceneDefaults(g.Scene)
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = NewApplicationConfig(g.Scene.Application)
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)
	if g.Scene.Application.Seed != 0 {
		math.SeedRandom(g.Scene.Application.Seed)
	}

	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       g.ApplicationConfig,
		geometry:     systems.NewGeometrySystem(),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
	}
	if err := e.loadScene(g.Scene); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	e.currentStage = EngineStageInitialized
	return e, nil
}

// Camera returns the scene camera.
func (e *Engine) Camera() *components.Camera {
	return e.camera
}

// Meshes returns the scene meshes in scene file order.
func (e *Engine) Meshes() []*metadata.Mesh {
	return e.meshes
}

// Mesh looks up a mesh by name.
func (e *Engine) Mesh(name string) (*metadata.Mesh, bool) {
	for _, m := range e.meshes {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func newCamera(config metadata.CameraConfig, width, height uint32) *components.Camera {
	camera := components.NewCamera()
	camera.SetPosition(config.Eye.ToVec3())
	camera.SetTarget(config.Target.ToVec3())
	if config.Up != nil {
		camera.SetUp(config.Up.ToVec3())
	}
	camera.FovRadians = math.DegToRad(config.FovDegrees)
	camera.Near = config.Near
	camera.Far = config.Far
	camera.OrthoSize = config.OrthoSize
	if config.Projection == metadata.ProjectionOrthographic {
		camera.Projection = components.ProjectionOrthographic
	}
	if config.FlipY != nil {
		camera.FlipY = *config.FlipY
	}
	camera.SetAspect(width, height)
	return camera
}

func degreesToRadians(v metadata.Vec3Config) math.Vec3 {
	return math.NewVec3(math.DegToRad(v[0]), math.DegToRad(v[1]), math.DegToRad(v[2]))
}

// acquireGeometry shares one geometry between every mesh of the same shape and size.
func (e *Engine) acquireGeometry(config metadata.MeshConfig) (*metadata.GeometryConfig, error) {
	size := config.Size
	var name string
	switch config.Shape {
	case metadata.ShapeEmpty:
		return nil, nil
	case metadata.ShapeCube:
		name = fmt.Sprintf("cube_%gx%gx%g_%gx%g", size[0], size[1], size[2], config.Tiling[0], config.Tiling[1])
	case metadata.ShapePlane:
		name = fmt.Sprintf("plane_%gx%g_%dx%d_%gx%g", size[0], size[1], config.Segments[0], config.Segments[1], config.Tiling[0], config.Tiling[1])
	default:
		return nil, fmt.Errorf("mesh %q: %w", config.Name, core.ErrUnknownShape)
	}

	geometry, err := e.geometry.Acquire(name)
	if err == nil {
		return geometry, nil
	}
	if !errors.Is(err, core.ErrGeometryNotFound) {
		return nil, err
	}

	if config.Shape == metadata.ShapeCube {
		geometry = systems.GenerateCubeConfig(size[0], size[1], size[2], config.Tiling[0], config.Tiling[1], name)
	} else {
		geometry = systems.GeneratePlaneConfig(size[0], size[1], config.Segments[0], config.Segments[1], config.Tiling[0], config.Tiling[1], name)
	}
	return e.geometry.AcquireFromConfig(geometry), nil
}

/**
 * @brief Replaces the camera and meshes with the ones described by scene.
 * On error the current scene is kept.
 */
func (e *Engine) loadScene(scene *metadata.SceneConfig) error {
	if err := loaders.ValidateScene(scene); err != nil {
		return err
	}

	meshes := make([]*metadata.Mesh, 0, len(scene.Meshes))
	byName := make(map[string]*metadata.Mesh, len(scene.Meshes))
	release := func(list []*metadata.Mesh) {
		for _, m := range list {
			if m.Geometry != nil {
				e.geometry.Release(m.Geometry.Name)
			}
		}
	}

	for _, config := range scene.Meshes {
		geometry, err := e.acquireGeometry(config)
		if err != nil {
			release(meshes)
			return err
		}
		position := config.Position.ToVec3()
		if config.Jitter > 0 {
			j := config.Jitter
			position = position.Add(math.NewVec3(
				math.RandomInRange(-j, j),
				math.RandomInRange(-j, j),
				math.RandomInRange(-j, j),
			))
		}
		angles := degreesToRadians(config.Rotation)
		transform := math.NewTransformFrom(
			position,
			math.NewQuatFromEuler(angles.X, angles.Y, angles.Z),
			config.Scale.ToVec3(),
		)
		mesh := metadata.NewMesh(config.Name, geometry, transform)
		mesh.Spin = degreesToRadians(config.Spin)
		meshes = append(meshes, mesh)
		byName[mesh.Name] = mesh
	}
	for i, config := range scene.Meshes {
		if config.Parent != "" {
			meshes[i].Parent = byName[config.Parent]
		}
	}

	release(e.meshes)
	e.meshes = meshes
	e.camera = newCamera(scene.Camera, e.width, e.height)
	core.LogInfo("scene '%s' loaded: %d meshes, %d geometries", scene.Application.Name, len(meshes), e.geometry.Count())
	return nil
}

// ReloadScene swaps in a new scene, keeping the framebuffer size and frame counter.
func (e *Engine) ReloadScene(scene *metadata.SceneConfig) error {
	loaders.ApplySceneDefaults(scene)
	if err := e.loadScene(scene); err != nil {
		core.LogError("scene reload rejected: %s", err)
		return err
	}
	e.gameInstance.Scene = scene
	return nil
}

// OnResize updates the framebuffer size and the camera aspect ratio.
func (e *Engine) OnResize(width, height uint32) error {
	if width == 0 || height == 0 {
		core.LogInfo("Framebuffer minimized, keeping %dx%d.", e.width, e.height)
		return nil
	}
	e.width = width
	e.height = height
	e.camera.SetAspect(width, height)
	if e.gameInstance.FnOnResize != nil {
		return e.gameInstance.FnOnResize(width, height)
	}
	return nil
}

// frameTime returns the simulated time of frame in seconds.
func (e *Engine) frameTime(frame uint64) float32 {
	return float32(frame) * e.config.FrameStep
}

func (e *Engine) buildPacket(frame uint64, view, proj math.Mat4) *metadata.RenderPacket {
	t := e.frameTime(frame)
	packet := &metadata.RenderPacket{
		Frame:     frame,
		Time:      t,
		DeltaTime: e.config.FrameStep,
		Uniforms:  make([]metadata.UniformBufferObject, 0, len(e.meshes)),
	}
	for _, mesh := range e.meshes {
		if mesh.Geometry == nil {
			continue
		}
		packet.Uniforms = append(packet.Uniforms, metadata.UniformBufferObject{
			Model: mesh.WorldMatrix(t),
			View:  view,
			Proj:  proj,
		})
	}
	return packet
}

/**
 * @brief Computes the packet of a frame: one uniform block per mesh that has
 * geometry, model from the mesh world matrix at the frame time, view and
 * projection from the camera.
 */
func (e *Engine) Frame(frame uint64) *metadata.RenderPacket {
	return e.buildPacket(frame, e.camera.View(), e.camera.ProjectionMatrix())
}

/**
 * @brief Computes frames [0, count) concurrently. Meshes and camera are only
 * read, so the frames are identical to calling Frame sequentially. Game hooks
 * are not called.
 */
func (e *Engine) Bake(ctx context.Context, count int) ([]*metadata.RenderPacket, error) {
	if count < 0 {
		return nil, fmt.Errorf("cannot bake %d frames", count)
	}
	packets := make([]*metadata.RenderPacket, count)
	view := e.camera.View()
	proj := e.camera.ProjectionMatrix()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < count; i++ {
		frame := uint64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			packets[frame] = e.buildPacket(frame, view, proj)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	core.LogDebug("baked %d frames", count)
	return packets, nil
}

// Watch reloads the scene from path whenever the file changes while Run is active.
func (e *Engine) Watch(path string) error {
	if e.assetManager == nil {
		am, err := assets.NewAssetManager()
		if err != nil {
			return err
		}
		e.assetManager = am
	}
	return e.assetManager.Watch(path)
}

func (e *Engine) sceneUpdates() <-chan *metadata.SceneConfig {
	if e.assetManager == nil {
		return nil
	}
	return e.assetManager.Scenes()
}

/**
 * @brief Drives the frame loop: every frame runs the game update hook, builds
 * the packet and hands it to r. Stops after FrameCount frames, or when ctx is
 * cancelled if FrameCount is zero. Frames still in flight are flushed before
 * returning.
 */
func (e *Engine) Run(ctx context.Context, r *renderer.Renderer) error {
	if err := r.Initialize(metadata.RendererBackendConfig{
		ApplicationName: e.config.Name,
		Width:           e.width,
		Height:          e.height,
	}); err != nil {
		return err
	}
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if err := r.OnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageRunning
	e.clock.Start()
	updates := e.sceneUpdates()

	var runErr error
loop:
	for e.config.FrameCount == 0 || e.frame < uint64(e.config.FrameCount) {
		select {
		case <-ctx.Done():
			core.LogInfo("frame loop cancelled after %d frames", e.frame)
			break loop
		case scene, ok := <-updates:
			if ok {
				_ = e.ReloadScene(scene)
			} else {
				updates = nil
			}
		default:
		}

		e.clock.Update()
		frameStartTime := e.clock.ElapsedSeconds()

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(e.camera, float64(e.config.FrameStep)); err != nil {
				core.LogError("Game update failed, shutting down.")
				runErr = err
				break loop
			}
		}

		if err := r.DrawFrame(e.Frame(e.frame)); err != nil {
			runErr = err
			break loop
		}
		e.frame++

		// Figure out how long the frame took.
		e.clock.Update()
		e.metrics.Update(e.clock.ElapsedSeconds() - frameStartTime)
	}

	e.currentStage = EngineStageShuttingDown
	if err := r.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	fps, frameTime := e.metrics.Frame()
	core.LogInfo("%d frames produced (%.1f fps, %.3f ms avg)", e.metrics.TotalFrames(), fps, frameTime)
	e.currentStage = EngineStageInitialized
	return runErr
}

// Shutdown stops watching the scene file.
func (e *Engine) Shutdown() error {
	if e.assetManager != nil {
		err := e.assetManager.Close()
		e.assetManager = nil
		return err
	}
	return nil
}
