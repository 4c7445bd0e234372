package assets

import "github.com/Kargisa/newtons/engine/renderer/metadata"

// Loader turns a scene file into a validated scene configuration.
type Loader interface {
	Load(path string) (*metadata.SceneConfig, error)
}
