package assets

import (
	"path/filepath"
	"sync"

	"github.com/Kargisa/newtons/engine/assets/loaders"
	"github.com/Kargisa/newtons/engine/core"
	"github.com/Kargisa/newtons/engine/renderer/metadata"
	"github.com/fsnotify/fsnotify"
)

/**
 * @brief Loads scene files and, once asked to watch one, reloads it whenever
 * it changes on disk. Reloaded scenes are delivered on Scenes(); a scene that
 * fails to load or validate is reported on Errors() and the last good scene
 * stays in use.
 */
type AssetManager struct {
	loader Loader

	mutex    sync.Mutex
	watched  map[string]struct{}
	isClosed bool

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	stopped  chan struct{}
	scenes   chan *metadata.SceneConfig
	errors   chan error
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		loader:   &loaders.SceneLoader{},
		watched:  make(map[string]struct{}),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		scenes:   make(chan *metadata.SceneConfig, 1),
		errors:   make(chan error, 1),
	}
	go am.start()
	return am, nil
}

// LoadScene loads a scene file once, without watching it.
func (am *AssetManager) LoadScene(path string) (*metadata.SceneConfig, error) {
	return am.loader.Load(path)
}

/**
 * @brief Starts watching the scene file at path. The parent directory is
 * watched rather than the file so that editors replacing the file through a
 * rename are still noticed.
 */
func (am *AssetManager) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return core.ErrWatcherClosed
	}
	if err := am.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	am.watched[abs] = struct{}{}
	core.LogInfo("watching scene %s for changes", abs)
	return nil
}

// Scenes delivers every successfully reloaded scene. Only the latest pending scene is kept.
func (am *AssetManager) Scenes() <-chan *metadata.SceneConfig {
	return am.scenes
}

// Errors delivers reload failures. Failures are dropped when nobody reads them.
func (am *AssetManager) Errors() <-chan error {
	return am.errors
}

// Close stops the watcher and closes the Scenes and Errors channels.
func (am *AssetManager) Close() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	am.isClosed = true
	am.mutex.Unlock()

	close(am.done)
	<-am.stopped
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			am.publishError(err)

		case <-am.done:
			am.fsnotify.Close()
			close(am.scenes)
			close(am.errors)
			return
		}
	}
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	am.mutex.Lock()
	_, watched := am.watched[abs]
	am.mutex.Unlock()
	if !watched {
		return
	}

	scene, err := am.loader.Load(abs)
	if err != nil {
		core.LogError("scene reload failed: %s", err)
		am.publishError(err)
		return
	}
	core.LogInfo("scene %s reloaded", abs)

	// Latest wins: replace a scene nobody has picked up yet.
	select {
	case am.scenes <- scene:
	default:
		select {
		case <-am.scenes:
		default:
		}
		am.scenes <- scene
	}
}

func (am *AssetManager) publishError(err error) {
	select {
	case am.errors <- err:
	default:
	}
}
