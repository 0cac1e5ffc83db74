package systems

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/lovely/engine/assets"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

func writeAsset(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newSystemManager(t *testing.T) (*SystemManager, *renderer.HeadlessBackend, string) {
	t.Helper()
	dir := t.TempDir()
	writeAsset(t, filepath.Join(dir, "shaders", "basic.vs"), "void main() {}")
	writeAsset(t, filepath.Join(dir, "shaders", "basic.fs"), "void main() {}")
	writeAsset(t, filepath.Join(dir, "materials", "crate.toml"), "name = \"crate\"\nshader = \"basic\"\nshininess = 8.0\n")
	if err := os.MkdirAll(filepath.Join(dir, "textures"), 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(dir, "textures", "container.png"))

	backend := renderer.NewHeadlessBackend()
	r := renderer.New(backend)
	if err := r.Initialize("test", 1, 1); err != nil {
		t.Fatal(err)
	}
	sm, err := NewSystemManager(SystemManagerConfig{
		AssetBasePath:    dir,
		MaxCameraCount:   2,
		MaxTextureCount:  4,
		MaxShaderCount:   2,
		MaxMaterialCount: 2,
		JobWorkers:       1,
		HotReload:        true,
	}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := sm.Initialize(); err != nil {
		t.Fatal(err)
	}
	return sm, backend, dir
}

func TestSystemManagerInvalidConfig(t *testing.T) {
	if _, err := NewSystemManager(SystemManagerConfig{AssetBasePath: t.TempDir()}, nil); err == nil {
		t.Fatal("expected an error for zero capacities")
	}
}

func TestSystemManagerHotReloadMaterial(t *testing.T) {
	sm, _, dir := newSystemManager(t)
	defer sm.Shutdown()

	m, err := sm.MaterialSystem.Acquire("crate")
	if err != nil {
		t.Fatal(err)
	}
	if m.Shininess != 8 {
		t.Fatalf("have %f\nwant 8", m.Shininess)
	}

	writeAsset(t, filepath.Join(dir, "materials", "crate.toml"),
		"name = \"crate\"\nshader = \"basic\"\ndiffuse_map_name = \"container.png\"\nshininess = 64.0\n")

	deadline := time.Now().Add(5 * time.Second)
	for m.Shininess != 64 {
		if time.Now().After(deadline) {
			t.Fatalf("material was not reloaded, shininess %f", m.Shininess)
		}
		sm.Update()
		time.Sleep(10 * time.Millisecond)
	}
	if m.DiffuseMapID == sm.TextureSystem.GetDefaultTexture() {
		t.Fatal("reloaded diffuse map was not resolved")
	}
}

func TestSystemManagerHotReloadShader(t *testing.T) {
	sm, _, dir := newSystemManager(t)
	defer sm.Shutdown()

	first, err := sm.ShaderSystem.LoadShader("basic")
	if err != nil {
		t.Fatal(err)
	}
	writeAsset(t, filepath.Join(dir, "shaders", "basic.fs"), "void main() { }")

	deadline := time.Now().Add(5 * time.Second)
	for sm.ShaderSystem.GetShaderID("basic") == first {
		if time.Now().After(deadline) {
			t.Fatal("shader was not reloaded")
		}
		sm.Update()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSystemManagerShutdownReleasesAfterFailure(t *testing.T) {
	sm, _, _ := newSystemManager(t)
	if _, err := sm.ShaderSystem.LoadShader("basic"); err != nil {
		t.Fatal(err)
	}
	// a second Close inside Shutdown fails with ErrClosed
	if err := sm.AssetManager.Close(); err != nil {
		t.Fatal(err)
	}

	err := sm.Shutdown()
	if !errors.Is(err, assets.ErrClosed) {
		t.Fatalf("have %v\nwant %v", err, assets.ErrClosed)
	}
	if n := len(sm.ShaderSystem.Lookup); n != 0 {
		t.Fatalf("shaders left after Shutdown\nhave %d\nwant 0", n)
	}
	if sm.TextureSystem.DefaultTexture != metadata.InvalidTextureID {
		t.Fatalf("default texture left after Shutdown\nhave %d", sm.TextureSystem.DefaultTexture)
	}
}
