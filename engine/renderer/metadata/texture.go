package metadata

/** @brief The graphics API handle of a loaded texture. Zero is no texture. */
type TextureID uint32

const InvalidTextureID TextureID = 0

/** @brief A texture unit index, as passed to glActiveTexture. */
type TextureUnit uint32

const (
	TEXTURE_UNIT_DIFFUSE TextureUnit = iota
	TEXTURE_UNIT_SPECULAR
)

func (id TextureID) IsValid() bool {
	return id != InvalidTextureID
}

/** @brief The name of the built-in fallback texture. */
const DEFAULT_TEXTURE_NAME string = "default"

/**
 * @brief Creates the default texture, a blue/white checkerboard. This is
 * done in code to eliminate asset dependencies.
 *
 * @param dimension Width and height in pixels.
 */
func GenerateCheckerboard(dimension uint32) *ImageResourceData {
	const channels = 4
	pixels := make([]uint8, dimension*dimension*channels)
	for i := range pixels {
		pixels[i] = 255
	}
	for row := uint32(0); row < dimension; row++ {
		for col := uint32(0); col < dimension; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			index := (row*dimension + col) * channels
			// blue: clear red and green
			pixels[index+0] = 0
			pixels[index+1] = 0
		}
	}
	return &ImageResourceData{
		ChannelCount: channels,
		Width:        dimension,
		Height:       dimension,
		Pixels:       pixels,
	}
}
