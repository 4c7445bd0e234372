package metadata

import "github.com/Kargisa/newtons/engine/math"

/** @brief Projection kinds understood by the camera. */
const (
	ProjectionPerspective  string = "perspective"
	ProjectionOrthographic string = "orthographic"
)

/** @brief Procedural shapes a mesh can be generated from. */
const (
	ShapeCube  string = "cube"
	ShapePlane string = "plane"
	ShapeEmpty string = "empty"
)

// Vec3Config is a three component vector as written in scene files: [x, y, z].
type Vec3Config [3]float32

func (v Vec3Config) ToVec3() math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

/**
 * @brief The application section of a scene file.
 */
type ApplicationSettings struct {
	/** @brief The application name, used in logs. */
	Name string `toml:"name" yaml:"name"`
	/** @brief Framebuffer width in pixels, used for the aspect ratio. */
	Width uint32 `toml:"width" yaml:"width"`
	/** @brief Framebuffer height in pixels, used for the aspect ratio. */
	Height uint32 `toml:"height" yaml:"height"`
	/** @brief One of debug, info, warn, error, fatal. */
	LogLevel string `toml:"log_level" yaml:"log_level"`
	/** @brief Number of frames to produce. Zero means run until cancelled. */
	FrameCount int `toml:"frame_count" yaml:"frame_count"`
	/** @brief Simulated seconds between two frames. */
	FrameStep float32 `toml:"frame_step" yaml:"frame_step"`
	/** @brief Seed of the random source used for mesh jitter. Zero seeds from the clock. */
	Seed uint64 `toml:"seed" yaml:"seed"`
}

/**
 * @brief The camera section of a scene file.
 */
type CameraConfig struct {
	Eye    Vec3Config  `toml:"eye" yaml:"eye"`
	Target Vec3Config  `toml:"target" yaml:"target"`
	Up     *Vec3Config `toml:"up" yaml:"up"`
	/** @brief Vertical field of view in degrees. */
	FovDegrees float32 `toml:"fov" yaml:"fov"`
	Near       float32 `toml:"near" yaml:"near"`
	Far        float32 `toml:"far" yaml:"far"`
	/** @brief perspective (default) or orthographic. */
	Projection string `toml:"projection" yaml:"projection"`
	/** @brief Half height of the orthographic view volume. */
	OrthoSize float32 `toml:"ortho_size" yaml:"ortho_size"`
	/** @brief Negate the projection Y axis for Vulkan clip space. Defaults to true. */
	FlipY *bool `toml:"flip_y" yaml:"flip_y"`
}

/**
 * @brief A mesh entry of a scene file.
 */
type MeshConfig struct {
	Name string `toml:"name" yaml:"name"`
	/** @brief cube, plane or empty. */
	Shape string `toml:"shape" yaml:"shape"`
	/** @brief Width, height and depth of the generated geometry. */
	Size Vec3Config `toml:"size" yaml:"size"`
	/** @brief Plane subdivisions along x and y. */
	Segments [2]uint32 `toml:"segments" yaml:"segments"`
	/** @brief Texture tiling along x and y. */
	Tiling   [2]float32  `toml:"tiling" yaml:"tiling"`
	Position Vec3Config  `toml:"position" yaml:"position"`
	/** @brief Euler rotation in degrees. */
	Rotation Vec3Config  `toml:"rotation" yaml:"rotation"`
	Scale    *Vec3Config `toml:"scale" yaml:"scale"`
	/** @brief Euler angular velocity in degrees per second. */
	Spin Vec3Config `toml:"spin" yaml:"spin"`
	/** @brief Name of the parent mesh, empty for root meshes. */
	Parent string `toml:"parent" yaml:"parent"`
	/** @brief Random offset of up to this much added to each position component on load. */
	Jitter float32 `toml:"jitter" yaml:"jitter"`
}

/**
 * @brief The complete description of a scene: application settings,
 * camera and meshes. Loaded from TOML or YAML.
 */
type SceneConfig struct {
	Application ApplicationSettings `toml:"application" yaml:"application"`
	Camera      CameraConfig        `toml:"camera" yaml:"camera"`
	Meshes      []MeshConfig        `toml:"meshes" yaml:"meshes"`
}
