package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

// createTexture uploads RGBA pixels as a repeating, mipmapped 2D texture.
func createTexture(image *metadata.ImageResourceData) (metadata.TextureID, error) {
	if image == nil || image.Width == 0 || image.Height == 0 {
		return metadata.InvalidTextureID, fmt.Errorf("cannot create a texture from an empty image")
	}
	if image.ChannelCount != 4 || len(image.Pixels) != int(image.Width*image.Height*4) {
		return metadata.InvalidTextureID, fmt.Errorf("expected %dx%d RGBA pixels, have %d bytes with %d channels",
			image.Width, image.Height, len(image.Pixels), image.ChannelCount)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(image.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return metadata.TextureID(id), nil
}
