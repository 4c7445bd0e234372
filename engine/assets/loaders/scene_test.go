package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneTOML = `
[application]
name = "demo"
width = 800
height = 600
frame_count = 3

[camera]
eye = [4.0, 4.0, -5.0]
target = [0.0, 0.0, 0.0]
fov = 60.0

[[meshes]]
name = "cube"
shape = "cube"
rotation = [0.0, 90.0, -90.0]
scale = [1.0, 1.0, -1.0]

[[meshes]]
name = "moon"
size = [0.5, 0.5, 0.5]
position = [0.0, 2.0, 0.0]
spin = [0.0, 45.0, 0.0]
parent = "cube"
`

const sceneYAML = `
application:
  name: demo
  width: 800
  height: 600
  frame_count: 3
camera:
  eye: [4, 4, -5]
  target: [0, 0, 0]
  fov: 60
meshes:
  - name: cube
    shape: cube
    rotation: [0, 90, -90]
    scale: [1, 1, -1]
  - name: moon
    size: [0.5, 0.5, 0.5]
    position: [0, 2, 0]
    spin: [0, 45, 0]
    parent: cube
`

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func assertDemoScene(t *testing.T, scene *metadata.SceneConfig) {
	t.Helper()
	assert.Equal(t, "demo", scene.Application.Name)
	assert.EqualValues(t, 800, scene.Application.Width)
	assert.EqualValues(t, 600, scene.Application.Height)
	assert.Equal(t, 3, scene.Application.FrameCount)
	assert.Equal(t, DEFAULT_FRAME_STEP, scene.Application.FrameStep)
	assert.Equal(t, "info", scene.Application.LogLevel)

	cam := scene.Camera
	assert.Equal(t, metadata.Vec3Config{4, 4, -5}, cam.Eye)
	assert.Equal(t, metadata.Vec3Config{0, 1, 0}, *cam.Up)
	assert.Equal(t, float32(60), cam.FovDegrees)
	assert.Equal(t, DEFAULT_NEAR, cam.Near)
	assert.Equal(t, DEFAULT_FAR, cam.Far)
	assert.Equal(t, metadata.ProjectionPerspective, cam.Projection)
	require.NotNil(t, cam.FlipY)
	assert.True(t, *cam.FlipY)

	require.Len(t, scene.Meshes, 2)
	cube := scene.Meshes[0]
	assert.Equal(t, metadata.Vec3Config{0, 90, -90}, cube.Rotation)
	assert.Equal(t, metadata.Vec3Config{1, 1, -1}, *cube.Scale)
	assert.Equal(t, metadata.Vec3Config{1, 1, 1}, cube.Size)

	moon := scene.Meshes[1]
	assert.Equal(t, metadata.ShapeCube, moon.Shape)
	assert.Equal(t, "cube", moon.Parent)
	assert.Equal(t, metadata.Vec3Config{1, 1, 1}, *moon.Scale)
	assert.Equal(t, [2]float32{1, 1}, moon.Tiling)
	assert.Equal(t, [2]uint32{1, 1}, moon.Segments)
	assert.Equal(t, metadata.Vec3Config{0, 45, 0}, moon.Spin)
}

func TestSceneLoaderTOML(t *testing.T) {
	loader := &SceneLoader{}
	scene, err := loader.Load(writeScene(t, "scene.toml", sceneTOML))
	require.NoError(t, err)
	assertDemoScene(t, scene)
}

func TestSceneLoaderYAML(t *testing.T) {
	loader := &SceneLoader{}
	for _, name := range []string{"scene.yaml", "scene.yml"} {
		t.Run(name, func(t *testing.T) {
			scene, err := loader.Load(writeScene(t, name, sceneYAML))
			require.NoError(t, err)
			assertDemoScene(t, scene)
		})
	}
}

func TestSceneLoaderFormats(t *testing.T) {
	loader := &SceneLoader{}
	_, err := loader.Load(writeScene(t, "scene.json", "{}"))
	assert.ErrorIs(t, err, core.ErrUnknownFormat)

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	assert.True(t, IsSceneFile("a/b/c.TOML"))
	assert.False(t, IsSceneFile("c.txt"))
}

func TestSceneLoaderEmptyDocumentUsesDefaults(t *testing.T) {
	scene, err := DecodeScene(strings.NewReader(""), SceneFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_APPLICATION_NAME, scene.Application.Name)
	assert.Equal(t, metadata.Vec3Config{0, 0, -10}, scene.Camera.Eye)
	assert.Empty(t, scene.Meshes)
}

func TestSceneLoaderRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeScene(strings.NewReader("[camera]\nzoom = 2.0\n"), SceneFormatTOML)
	assert.Error(t, err)

	_, err = DecodeScene(strings.NewReader("camera:\n  zoom: 2\n"), SceneFormatYAML)
	assert.Error(t, err)
}

func TestValidateScene(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		target error
	}{
		{
			name:   "near after far",
			yaml:   "camera:\n  near: 10\n  far: 1\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "fov out of range",
			yaml:   "camera:\n  fov: 180\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "up parallel to view",
			yaml:   "camera:\n  eye: [0, 5, 0]\n  target: [0, 0, 0]\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "zero up",
			yaml:   "camera:\n  up: [0, 0, 0]\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "large scene nearly parallel up",
			yaml:   "camera:\n  eye: [0, 0, -10000]\n  target: [0, 0, 0]\n  up: [0, 0.0000001, 1]\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "unknown projection",
			yaml:   "camera:\n  projection: fisheye\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "zero scale",
			yaml:   "meshes:\n  - name: a\n    scale: [1, 0, 1]\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "duplicate names",
			yaml:   "meshes:\n  - name: a\n  - name: a\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "missing name",
			yaml:   "meshes:\n  - shape: plane\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "unknown parent",
			yaml:   "meshes:\n  - name: a\n    parent: b\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "self parent",
			yaml:   "meshes:\n  - name: a\n    parent: a\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "parent cycle",
			yaml:   "meshes:\n  - name: a\n    parent: c\n  - name: b\n    parent: a\n  - name: c\n    parent: b\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "unknown shape",
			yaml:   "meshes:\n  - name: a\n    shape: teapot\n",
			target: core.ErrUnknownShape,
		},
		{
			name:   "negative jitter",
			yaml:   "meshes:\n  - name: a\n    jitter: -1\n",
			target: core.ErrInvalidScene,
		},
		{
			name:   "negative frame count",
			yaml:   "application:\n  frame_count: -1\n",
			target: core.ErrInvalidScene,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeScene(strings.NewReader(tt.yaml), SceneFormatYAML)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestValidateSceneAcceptsSmallScale(t *testing.T) {
	yaml := "camera:\n  eye: [0, 0, -0.00001]\n  target: [0, 0, 0]\n  up: [0, 0.00001, 0]\n  near: 0.000001\n  far: 0.001\n"
	scene, err := DecodeScene(strings.NewReader(yaml), SceneFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, metadata.Vec3Config{0, 0.00001, 0}, *scene.Camera.Up)
}

func TestValidateSceneOrthographic(t *testing.T) {
	scene, err := DecodeScene(strings.NewReader("camera:\n  projection: orthographic\n  ortho_size: 3\n"), SceneFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, metadata.ProjectionOrthographic, scene.Camera.Projection)
	assert.Equal(t, float32(3), scene.Camera.OrthoSize)
}
