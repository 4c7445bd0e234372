package engine

import (
	"github.com/Kargisa/newtons/engine/assets/loaders"
	"github.com/Kargisa/newtons/engine/renderer/components"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
)

/**
 * @brief The application driven by the engine: a scene plus optional hooks
 * called by Run. Any hook may be nil.
 */
type Game struct {
	ApplicationConfig *ApplicationConfig
	Scene             *metadata.SceneConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnResize        OnResize
}

type Initialize func() error
type Update func(camera *components.Camera, deltaTime float64) error
type OnResize func(width uint32, height uint32) error

// NewGame wraps a scene without any hooks. A nil scene means the default,
// empty scene.
func NewGame(scene *metadata.SceneConfig) *Game {
	if scene == nil {
		scene = &metadata.SceneConfig{}
	}
	loaders.ApplySceneDefaults(scene)
	return &Game{
		ApplicationConfig: NewApplicationConfig(scene.Application),
		Scene:             scene,
	}
}
