package metadata

// ResourceType tells the asset manager which loader handles a file.
type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeImage
	ResourceTypeMaterial
	// A vertex and fragment source pair sharing one base name.
	ResourceTypeShader
)

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeImage:
		return "image"
	case ResourceTypeMaterial:
		return "material"
	case ResourceTypeShader:
		return "shader"
	}
	return "none"
}

/**
 * @brief What an asset loader hands back. Data holds *ImageResourceData,
 * *MaterialConfig or *ShaderSource depending on Type; DataSize is the
 * number of bytes read from disk or decoded.
 */
type Resource struct {
	Name     string
	Type     ResourceType
	FullPath string
	DataSize uint64
	Data     interface{}
}
