package loaders

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/math"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SceneFormat is the serialization used by a scene file.
type SceneFormat string

const (
	SceneFormatTOML SceneFormat = "toml"
	SceneFormatYAML SceneFormat = "yaml"
)

const (
	DEFAULT_APPLICATION_NAME string  = "newtons"
	DEFAULT_WIDTH            uint32  = 1280
	DEFAULT_HEIGHT           uint32  = 720
	DEFAULT_FRAME_STEP       float32 = 1.0 / 60.0
	DEFAULT_FOV_DEGREES      float32 = 60.0
	DEFAULT_NEAR             float32 = 0.01
	DEFAULT_FAR              float32 = 100.0
	DEFAULT_ORTHO_SIZE       float32 = 5.0
)

// SceneLoader reads scene descriptions from TOML or YAML files.
type SceneLoader struct{}

// FormatFromPath picks the scene format from the file extension.
func FormatFromPath(path string) (SceneFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SceneFormatTOML, nil
	case ".yaml", ".yml":
		return SceneFormatYAML, nil
	default:
		return "", errors.Wrapf(core.ErrUnknownFormat, "scene file %q", path)
	}
}

// IsSceneFile reports whether path has an extension the loader understands.
func IsSceneFile(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

/**
 * @brief Loads, defaults and validates the scene at path.
 *
 * @param path A .toml, .yaml or .yml file.
 * @return The scene configuration, or an error wrapping core.ErrUnknownFormat
 * or core.ErrInvalidScene.
 */
func (sl *SceneLoader) Load(path string) (*metadata.SceneConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scene file")
	}

	scene, err := DecodeScene(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load scene %q", path)
	}
	core.LogDebug("scene '%s' loaded from %s (%d meshes)", scene.Application.Name, path, len(scene.Meshes))
	return scene, nil
}

// DecodeScene parses a scene from r, then applies defaults and validates it.
// Unknown keys are rejected.
func DecodeScene(r io.Reader, format SceneFormat) (*metadata.SceneConfig, error) {
	scene := &metadata.SceneConfig{}

	switch format {
	case SceneFormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(scene); err != nil {
			return nil, errors.Wrap(err, "toml")
		}
	case SceneFormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(scene); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "yaml")
		}
	default:
		return nil, errors.Wrapf(core.ErrUnknownFormat, "format %q", format)
	}

	ApplySceneDefaults(scene)
	if err := ValidateScene(scene); err != nil {
		return nil, err
	}
	return scene, nil
}

// ApplySceneDefaults fills every zero value a scene file may omit.
func ApplySceneDefaults(scene *metadata.SceneConfig) {
	app := &scene.Application
	if app.Name == "" {
		app.Name = DEFAULT_APPLICATION_NAME
	}
	if app.Width == 0 {
		app.Width = DEFAULT_WIDTH
	}
	if app.Height == 0 {
		app.Height = DEFAULT_HEIGHT
	}
	if app.LogLevel == "" {
		app.LogLevel = "info"
	}
	if app.FrameStep == 0 {
		app.FrameStep = DEFAULT_FRAME_STEP
	}

	cam := &scene.Camera
	if cam.Eye == cam.Target {
		cam.Eye = metadata.Vec3Config{cam.Target[0], cam.Target[1], cam.Target[2] - 10}
	}
	if cam.Up == nil {
		cam.Up = &metadata.Vec3Config{0, 1, 0}
	}
	if cam.FovDegrees == 0 {
		cam.FovDegrees = DEFAULT_FOV_DEGREES
	}
	if cam.Near == 0 {
		cam.Near = DEFAULT_NEAR
	}
	if cam.Far == 0 {
		cam.Far = DEFAULT_FAR
	}
	if cam.Projection == "" {
		cam.Projection = metadata.ProjectionPerspective
	}
	if cam.OrthoSize == 0 {
		cam.OrthoSize = DEFAULT_ORTHO_SIZE
	}
	if cam.FlipY == nil {
		flip := true
		cam.FlipY = &flip
	}

	for i := range scene.Meshes {
		mesh := &scene.Meshes[i]
		if mesh.Shape == "" {
			mesh.Shape = metadata.ShapeCube
		}
		for j := range mesh.Size {
			if mesh.Size[j] == 0 {
				mesh.Size[j] = 1
			}
		}
		for j := range mesh.Segments {
			if mesh.Segments[j] == 0 {
				mesh.Segments[j] = 1
			}
		}
		for j := range mesh.Tiling {
			if mesh.Tiling[j] == 0 {
				mesh.Tiling[j] = 1
			}
		}
		if mesh.Scale == nil {
			mesh.Scale = &metadata.Vec3Config{1, 1, 1}
		}
	}
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(core.ErrInvalidScene, format, args...)
}

/**
 * @brief Checks a defaulted scene for values the math core cannot handle:
 * zero scales, an empty or inverted depth range, a degenerate view basis,
 * duplicate mesh names and broken or cyclic parent links.
 */
func ValidateScene(scene *metadata.SceneConfig) error {
	app := scene.Application
	if app.Width == 0 || app.Height == 0 {
		return invalid("framebuffer size %dx%d", app.Width, app.Height)
	}
	if app.FrameCount < 0 {
		return invalid("frame_count %d is negative", app.FrameCount)
	}
	if !(app.FrameStep > 0) {
		return invalid("frame_step %v must be positive", app.FrameStep)
	}

	cam := scene.Camera
	switch cam.Projection {
	case metadata.ProjectionPerspective:
		if !(cam.FovDegrees > 0 && cam.FovDegrees < 180) {
			return invalid("camera fov %v must be within (0, 180)", cam.FovDegrees)
		}
		if !(cam.Near > 0) {
			return invalid("camera near %v must be positive for a perspective projection", cam.Near)
		}
	case metadata.ProjectionOrthographic:
		if !(cam.OrthoSize > 0) {
			return invalid("camera ortho_size %v must be positive", cam.OrthoSize)
		}
	default:
		return invalid("unknown camera projection %q", cam.Projection)
	}
	if !(cam.Near < cam.Far) {
		return invalid("camera near %v must be less than far %v", cam.Near, cam.Far)
	}
	forward := cam.Target.ToVec3().Sub(cam.Eye.ToVec3())
	if forward.LengthSquared() == 0 {
		return invalid("camera eye and target coincide")
	}
	if cam.Up == nil || cam.Up.ToVec3().LengthSquared() == 0 {
		return invalid("camera up is zero")
	}
	// sine of the angle between the unit vectors, independent of scene scale
	if forward.Normalized().Cross(cam.Up.ToVec3().Normalized()).Length() <= math.K_FLOAT_EPSILON {
		return invalid("camera up is parallel to the view direction")
	}

	byName := make(map[string]*metadata.MeshConfig, len(scene.Meshes))
	for i := range scene.Meshes {
		mesh := &scene.Meshes[i]
		if mesh.Name == "" {
			return invalid("mesh #%d has no name", i)
		}
		if _, ok := byName[mesh.Name]; ok {
			return invalid("duplicate mesh name %q", mesh.Name)
		}
		byName[mesh.Name] = mesh

		switch mesh.Shape {
		case metadata.ShapeCube, metadata.ShapePlane, metadata.ShapeEmpty:
		default:
			return errors.Wrapf(core.ErrUnknownShape, "mesh %q: shape %q", mesh.Name, mesh.Shape)
		}
		if mesh.Scale == nil || mesh.Scale[0] == 0 || mesh.Scale[1] == 0 || mesh.Scale[2] == 0 {
			return invalid("mesh %q: scale components must be nonzero", mesh.Name)
		}
		if !(mesh.Jitter >= 0) {
			return invalid("mesh %q: jitter %v must not be negative", mesh.Name, mesh.Jitter)
		}
	}

	for _, mesh := range scene.Meshes {
		if mesh.Parent == "" {
			continue
		}
		// Walking more links than there are meshes means the chain loops.
		steps := 0
		for p := mesh.Parent; p != ""; steps++ {
			parent, ok := byName[p]
			if !ok {
				return invalid("mesh %q: unknown parent %q", mesh.Name, p)
			}
			if p == mesh.Name || steps > len(scene.Meshes) {
				return invalid("mesh %q: parent chain forms a cycle", mesh.Name)
			}
			p = parent.Parent
		}
	}

	return nil
}
