package metadata

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

/**
 * @brief A structure to hold image resource data. Pixels are always RGBA,
 * 8 bits per channel, rows tightly packed.
 */
type ImageResourceData struct {
	/** @brief The number of channels. */
	ChannelCount uint8
	/** @brief The width of the image. */
	Width uint32
	/** @brief The height of the image. */
	Height uint32
	/** @brief The pixel data of the image. */
	Pixels []uint8
}

/** @brief Parameters used when loading an image. */
type ImageResourceParams struct {
	/** @brief Indicates if the image should be flipped on the y-axis when loaded. */
	FlipY bool
}

/**
 * @brief Decodes a PNG, JPEG, BMP or WebP image and converts it to RGBA.
 * With FlipY set the first row of Pixels is the bottom row of the image,
 * which is where OpenGL expects texture coordinate v = 0.
 */
func DecodeImage(r io.Reader, params ImageResourceParams) (*ImageResourceData, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	if params.FlipY {
		flipRows(rgba.Pix, rgba.Stride, bounds.Dy())
	}

	return &ImageResourceData{
		ChannelCount: 4,
		Width:        uint32(bounds.Dx()),
		Height:       uint32(bounds.Dy()),
		Pixels:       rgba.Pix,
	}, nil
}

// LoadImage opens path and decodes it with DecodeImage.
func LoadImage(path string, params ImageResourceParams) (*ImageResourceData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := DecodeImage(f, params)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", path, err)
	}
	return img, nil
}

func flipRows(pix []uint8, stride, height int) {
	row := make([]uint8, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}
}
