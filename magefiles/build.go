//go:build mage

package main

import (
	"fmt"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds the testbed binary into bin/lovely.
func (Build) Engine() error {
	return goCmd(nil, "build", "-o", "bin/lovely", ".")
}

// Checks the GLSL sources with glslangValidator, when it is installed.
func (Build) Shaders() error {
	if _, err := exec.LookPath("glslangValidator"); err != nil {
		fmt.Println("glslangValidator not found, skipping shader validation")
		return nil
	}
	stages, err := shaderSources()
	if err != nil {
		return err
	}
	for file, stage := range stages {
		if err := sh.RunV("glslangValidator", "-S", stage, file); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}
