package loaders

import (
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

type ShaderLoader struct{}

// Load reads the sources of the program at path, which is either the
// vertex or fragment file or the common name without extension.
func (sl *ShaderLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(path, ".vs"), ".fs")
	name := filepath.Base(base)
	source, err := metadata.LoadShaderSource(name, base+".vs", base+".fs")
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Name:     name,
		Type:     assetType,
		FullPath: base,
		DataSize: uint64(len(source.Vertex) + len(source.Fragment)),
		Data:     source,
	}, nil
}

func (sl *ShaderLoader) Unload(*metadata.Resource) error {
	return nil
}
