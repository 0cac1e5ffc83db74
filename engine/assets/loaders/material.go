package loaders

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

type MaterialLoader struct{}

func (ml *MaterialLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mCfg, err := ParseMaterial(data)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", path, err)
	}
	return &metadata.Resource{
		Name:     mCfg.Name,
		Type:     assetType,
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     mCfg,
	}, nil
}

/**
 * @brief Parses a material file:
 *
 *   name = "crate"
 *   shader = "basic"
 *   diffuse_map_name = "container.jpg"
 *   specular_map_name = "container_specular.png"
 *   shininess = 32.0
 *
 * Unknown keys are rejected.
 */
func ParseMaterial(data []byte) (*metadata.MaterialConfig, error) {
	materialConfig := &metadata.MaterialConfig{}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(materialConfig); err != nil {
		return nil, err
	}
	// Perform validation
	if err := validateMaterial(materialConfig); err != nil {
		return nil, err
	}
	return materialConfig, nil
}

func validateMaterial(material *metadata.MaterialConfig) error {
	if material.Name == "" {
		return fmt.Errorf("material name is required")
	}
	if material.ShaderName == "" {
		return fmt.Errorf("shader name is required")
	}
	// Check shininess for a non-negative value
	if material.Shininess < 0 {
		return fmt.Errorf("shininess must be a non-negative value")
	}
	return nil
}

func (ml *MaterialLoader) Unload(*metadata.Resource) error {
	return nil
}
