package loaders

import (
	"path/filepath"

	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

type ImageLoader struct{}

// Load decodes the image at path. params may be *metadata.ImageResourceParams.
func (il *ImageLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	var imageParams metadata.ImageResourceParams
	if p, ok := params.(*metadata.ImageResourceParams); ok && p != nil {
		imageParams = *p
	}
	data, err := metadata.LoadImage(path, imageParams)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Name:     filepath.Base(path),
		Type:     assetType,
		FullPath: path,
		DataSize: uint64(len(data.Pixels)),
		Data:     data,
	}, nil
}

func (il *ImageLoader) Unload(*metadata.Resource) error {
	return nil
}
