//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/magefile/mage/sh"
)

const modulePath = "github.com/spaghettifunk/lovely"

// Packages that link against GLFW or OpenGL and need a display to test.
var displayPackages = []string{
	modulePath,
	modulePath + "/engine/platform",
	modulePath + "/engine/renderer/opengl",
}

// goCmd runs the go tool with its output streamed to the terminal.
func goCmd(env map[string]string, args ...string) error {
	fmt.Printf("Executing: go %s\n", strings.Join(args, " "))
	return sh.RunWithV(env, "go", args...)
}

// headlessPackages lists every package of the module except displayPackages.
func headlessPackages() ([]string, error) {
	out, err := sh.Output("go", "list", "./...")
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	var pkgs []string
	for _, pkg := range strings.Fields(out) {
		if !slices.Contains(displayPackages, pkg) {
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs, nil
}

// shaderSources returns the GLSL files with the glslangValidator stage of each.
func shaderSources() (map[string]string, error) {
	files, err := filepath.Glob(filepath.Join("assets", "shaders", "*.[vf]s"))
	if err != nil {
		return nil, err
	}
	stages := make(map[string]string, len(files))
	for _, file := range files {
		if filepath.Ext(file) == ".vs" {
			stages[file] = "vert"
		} else {
			stages[file] = "frag"
		}
	}
	return stages, nil
}
