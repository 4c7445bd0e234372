//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo scene and writes its uniform blocks to bin/frames.bin.
func (Run) Demo() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run demo scene...")
	if _, err := executeCmd("bin/newtons", withArgs("-scene", "testbed/scene.toml", "-out", "bin/frames.bin"), withStream()); err != nil {
		return err
	}
	return nil
}

// Bakes the demo scene concurrently.
func (Run) Bake() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/newtons", withArgs("-scene", "testbed/scene.toml", "-bake", "-out", "bin/baked.bin"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the demo scene until interrupted, reloading it on every save.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/newtons", withArgs("-scene", "testbed/scene.toml", "-frames", "0", "-watch", "-orbit", "30"), withStream()); err != nil {
		return err
	}
	return nil
}
