//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the headless frame driver into bin/newtons.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/newtons", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the frame driver with the math assertions compiled in.
func (Build) Debug() error {
	if _, err := executeCmd("go", withArgs("build", "-tags", "debug", "-o", "bin/newtons-debug", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Tidies go.mod and go.sum.
func (Build) Tidy() error {
	return goModTidy()
}
