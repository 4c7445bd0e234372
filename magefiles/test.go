//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every unit test.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the tests with the math assertions enabled.
func (Test) Debug() error {
	_, err := executeCmd("go", withArgs("test", "-tags", "debug", "./engine/math/..."), withStream())
	return err
}

// Runs the tests with the race detector, the concurrent bake and the scene watcher included.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}
