//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed with lovely.toml.
func (Run) Testbed() error {
	mg.Deps(Build.Shaders)
	return goCmd(nil, "run", ".", "-config", "lovely.toml")
}

type Test mg.Namespace

// Runs every package's tests.
func (Test) All() error {
	return goCmd(nil, "test", "./...")
}

// Runs the tests that need neither a window nor an OpenGL context.
func (Test) Headless() error {
	pkgs, err := headlessPackages()
	if err != nil {
		return err
	}
	return goCmd(map[string]string{"CGO_ENABLED": "0"}, append([]string{"test"}, pkgs...)...)
}
